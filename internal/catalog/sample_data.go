package catalog

import "nexus.regintel.org/internal/models"

// Store keys the seed is written under.
const (
	FeedsKey       = "regulatory_feeds"
	VendorsKey     = "marketplace_vendors"
	ConsultantsKey = "marketplace_consultants"
	CROsKey        = "marketplace_cros"
)

// SampleFeeds returns a fresh copy of the built-in regulatory feeds.
func SampleFeeds() []models.RegulatoryFeed {
	return []models.RegulatoryFeed{
		{
			ID:       "feed-1",
			Title:    "FDA Announces New Drug Approval Pathway for Rare Diseases",
			Category: "Drug Approval",
			Region:   "United States",
			Agency:   "FDA",
			Date:     "2024-01-15",
			Urgency:  models.UrgencyHigh,
			Summary:  "The FDA has introduced an expedited approval pathway for drugs treating rare diseases affecting fewer than 200,000 patients in the US.",
			Content:  "The Food and Drug Administration announced a significant policy change that will accelerate the approval process for treatments targeting rare diseases. This new pathway, called the Rare Disease Expedited Review (RDER), aims to reduce approval timelines from an average of 12 months to 6-8 months for qualifying therapies.",
			Tags:     []string{"FDA", "Rare Diseases", "Drug Approval", "Expedited Review"},
			Source:   "FDA.gov",
			Impact:   "Pharmaceutical companies developing rare disease therapies can expect faster market access, potentially reducing development costs and improving patient outcomes.",
			Consultants: []string{
				"Dr. Sarah Chen - FDA Regulatory Specialist",
				"Michael Rodriguez - Rare Disease Expert",
			},
		},
		{
			ID:       "feed-2",
			Title:    "EMA Updates Guidelines for AI-Driven Medical Devices",
			Category: "Medical Devices",
			Region:   "European Union",
			Agency:   "EMA",
			Date:     "2024-01-12",
			Urgency:  models.UrgencyMedium,
			Summary:  "The European Medicines Agency has released updated guidelines for artificial intelligence and machine learning applications in medical devices.",
			Content:  "The European Medicines Agency has published comprehensive guidelines addressing the regulatory framework for AI-powered medical devices. These guidelines establish clear requirements for algorithm validation, data quality standards, and post-market surveillance obligations.",
			Tags:     []string{"EMA", "AI/ML", "Medical Devices", "Guidelines"},
			Source:   "EMA.europa.eu",
			Impact:   "MedTech companies developing AI solutions must now comply with stricter validation requirements, potentially extending development timelines but improving device reliability.",
			Consultants: []string{
				"Dr. Emma Thompson - AI Regulatory Affairs",
				"Lars Nielsen - EMA Compliance Specialist",
			},
		},
		{
			ID:       "feed-3",
			Title:    "PMDA Introduces Digital Submission Platform for Clinical Trials",
			Category: "Clinical Trials",
			Region:   "Japan",
			Agency:   "PMDA",
			Date:     "2024-01-10",
			Urgency:  models.UrgencyLow,
			Summary:  "Japan's PMDA launches a new digital platform for clinical trial submissions, aiming to streamline the approval process.",
			Content:  "The Pharmaceuticals and Medical Devices Agency of Japan has launched a comprehensive digital submission platform designed to modernize clinical trial applications. The platform supports electronic submission of protocols, investigator brochures, and safety reports.",
			Tags:     []string{"PMDA", "Digital Submission", "Clinical Trials", "Japan"},
			Source:   "PMDA.go.jp",
			Impact:   "Clinical research organizations and pharmaceutical companies conducting trials in Japan will benefit from faster submission processing and reduced administrative burden.",
			Consultants: []string{
				"Hiroshi Tanaka - PMDA Regulatory Expert",
				"Dr. Yuki Sato - Clinical Trials Specialist",
			},
		},
		{
			ID:       "feed-4",
			Title:    "Health Canada Publishes Cannabis Medical Research Framework",
			Category: "Cannabis Regulation",
			Region:   "Canada",
			Agency:   "Health Canada",
			Date:     "2024-01-08",
			Urgency:  models.UrgencyMedium,
			Summary:  "Health Canada releases new framework for conducting clinical research with cannabis-based medical products.",
			Content:  "Health Canada has established a comprehensive regulatory framework governing clinical research involving cannabis-derived medical products. The framework addresses study design requirements, patient safety protocols, and quality standards for cannabis research.",
			Tags:     []string{"Health Canada", "Cannabis", "Clinical Research", "Medical Cannabis"},
			Source:   "Canada.ca",
			Impact:   "Researchers and pharmaceutical companies can now conduct cannabis-based medical research with clearer regulatory guidance.",
			Consultants: []string{
				"Dr. Jennifer Walsh - Cannabis Research Specialist",
				"Robert Kim - Health Canada Liaison",
			},
		},
		{
			ID:       "feed-5",
			Title:    "WHO Issues New Guidelines for Global Vaccine Distribution",
			Category: "Vaccines",
			Region:   "Global",
			Agency:   "WHO",
			Date:     "2024-01-05",
			Urgency:  models.UrgencyHigh,
			Summary:  "World Health Organization publishes updated guidelines for international vaccine distribution and emergency use authorization.",
			Content:  "The World Health Organization has released updated guidelines for global vaccine distribution, focusing on emergency use authorization procedures and international coordination protocols.",
			Tags:     []string{"WHO", "Vaccines", "Global Health", "Emergency Use"},
			Source:   "WHO.int",
			Impact:   "Vaccine manufacturers will need to align with new international standards, potentially simplifying multi-country approval processes but requiring additional documentation.",
			Consultants: []string{
				"Dr. Maria Rodriguez - WHO Policy Expert",
				"David Chen - Global Regulatory Affairs",
			},
		},
	}
}

// SampleVendors returns a fresh copy of the built-in vendor listings.
func SampleVendors() []models.Vendor {
	return []models.Vendor{
		{
			ID:                "vendor-1",
			Name:              "RegTech Solutions Inc.",
			Category:          "Software",
			Specialties:       []string{"Regulatory Intelligence", "Compliance Management", "Document Management"},
			Location:          "Boston, MA",
			Employees:         "250-500",
			Founded:           "2015",
			Description:       "Leading provider of AI-powered regulatory intelligence and compliance management solutions for life sciences companies.",
			Services:          []string{"Regulatory Intelligence Platform", "Submission Management", "Compliance Monitoring", "Risk Assessment"},
			VendorFitScore:    94,
			CustomerRating:    4.7,
			NPSScore:          68,
			ContactEmail:      "partnerships@regtech-solutions.com",
			Website:           "www.regtech-solutions.com",
			Certifications:    []string{"ISO 27001", "SOC 2 Type II", "FDA 21 CFR Part 11"},
			ClientTestimonial: "RegTech Solutions transformed our regulatory processes, reducing submission times by 60% while improving compliance accuracy.",
			Pricing:           "Starting at $50,000/year for enterprise platform",
			KeyPersonnel:      []string{"Sarah Johnson - CEO", "Dr. Michael Chen - Chief Scientific Officer"},
			RecentProjects:    []string{"Global pharma company - EU MDR compliance", "Biotech startup - FDA submission management"},
			PastClients:       []string{"Novartis", "Moderna"},
		},
		{
			ID:                "vendor-2",
			Name:              "Compliance Analytics Pro",
			Category:          "Analytics",
			Specialties:       []string{"Data Analytics", "Regulatory Reporting", "Risk Management"},
			Location:          "San Francisco, CA",
			Employees:         "100-250",
			Founded:           "2018",
			Description:       "Advanced analytics platform specializing in regulatory data analysis and predictive compliance modeling.",
			Services:          []string{"Predictive Analytics", "Regulatory Dashboards", "Risk Modeling", "Automated Reporting"},
			VendorFitScore:    89,
			CustomerRating:    4.5,
			NPSScore:          61,
			ContactEmail:      "sales@compliance-analytics.com",
			Website:           "www.compliance-analytics.com",
			Certifications:    []string{"GDPR Compliant", "HIPAA Compliant", "ISO 9001"},
			ClientTestimonial: "Their predictive analytics helped us identify compliance risks 3 months before they materialized.",
			Pricing:           "Custom pricing based on data volume",
			KeyPersonnel:      []string{"Alex Rivera - Founder & CTO", "Dr. Lisa Park - Head of Analytics"},
			RecentProjects:    []string{"Fortune 500 pharma - Risk prediction model", "MedDevice company - Regulatory dashboard"},
		},
		{
			ID:                "vendor-3",
			Name:              "Global Regulatory Services",
			Category:          "Consulting",
			Specialties:       []string{"FDA Submissions", "EMA Compliance", "Global Strategy"},
			Location:          "London, UK",
			Employees:         "500-1000",
			Founded:           "2008",
			Description:       "Full-service regulatory consulting firm with expertise across global markets and therapeutic areas.",
			Services:          []string{"Regulatory Strategy", "Submission Preparation", "Agency Interactions", "Training & Education"},
			VendorFitScore:    92,
			CustomerRating:    4.6,
			NPSScore:          64,
			ContactEmail:      "info@global-regulatory.com",
			Website:           "www.global-regulatory.com",
			Certifications:    []string{"Good Clinical Practice", "ISO 13485", "RAPS Certified"},
			ClientTestimonial: "Their global expertise helped us navigate complex multi-regional submissions successfully.",
			Pricing:           "Hourly rates: $300-$800 depending on expertise level",
			KeyPersonnel:      []string{"Dr. Elizabeth Thomson - Managing Director", "James Wilson - VP Global Affairs"},
			RecentProjects:    []string{"Novel gene therapy - FDA/EMA approval", "Digital therapeutics - Global regulatory strategy"},
		},
		{
			ID:                "vendor-4",
			Name:              "MedDevice Regulatory Partners",
			Category:          "Medical Devices",
			Specialties:       []string{"510(k) Submissions", "CE Marking", "Quality Systems"},
			Location:          "Minneapolis, MN",
			Employees:         "50-100",
			Founded:           "2012",
			Description:       "Specialized regulatory consulting firm focused exclusively on medical device approvals and compliance.",
			Services:          []string{"510(k) Preparation", "CE Marking Support", "QSR/ISO 13485 Implementation", "Post-market Surveillance"},
			VendorFitScore:    87,
			CustomerRating:    4.4,
			NPSScore:          57,
			ContactEmail:      "contact@meddevice-regulatory.com",
			Website:           "www.meddevice-regulatory.com",
			Certifications:    []string{"ISO 13485 Lead Auditor", "FDA QSR Expert", "EU MDR Certified"},
			ClientTestimonial: "They guided us through our first 510(k) submission with exceptional expertise and attention to detail.",
			Pricing:           "Project-based: $25,000-$150,000 depending on complexity",
			KeyPersonnel:      []string{"Dr. Robert Kim - Principal Consultant", "Maria Santos - Quality Systems Expert"},
			RecentProjects:    []string{"AI-powered diagnostic device - 510(k) clearance", "Surgical robot - CE marking"},
		},
	}
}

// SampleConsultants returns a fresh copy of the built-in consultant profiles.
func SampleConsultants() []models.Consultant {
	return []models.Consultant{
		{
			ID:             "consultant-1",
			Name:           "Dr. Sarah Mitchell",
			Specialty:      "FDA Drug Approvals",
			Experience:     "15 years",
			Location:       "Washington, DC",
			Education:      "PharmD, Harvard; MBA, Wharton",
			Certifications: []string{"RAC (Regulatory Affairs Certified)", "Project Management Professional"},
			Description:    "Former FDA reviewer with extensive experience in NDA and BLA submissions across multiple therapeutic areas.",
			Expertise:      []string{"New Drug Applications", "Biologics License Applications", "FDA Meetings", "Regulatory Strategy"},
			Rate:           "$450/hour",
			Availability:   "Available for new projects",
			VendorFitScore: 96,
			Languages:      []string{"English", "Spanish"},
			RecentProjects: []string{"Oncology drug NDA approval", "Orphan drug designation", "Type B meeting preparation"},
			ClientReview:   "Dr. Mitchell's FDA insider knowledge was invaluable for our successful drug approval.",
			ContactEmail:   "sarah.mitchell@regconsulting.com",
		},
		{
			ID:             "consultant-2",
			Name:           "James Chen, PhD",
			Specialty:      "EMA Regulatory Affairs",
			Experience:     "12 years",
			Location:       "Amsterdam, Netherlands",
			Education:      "PhD Pharmacology, Oxford; MSc Regulatory Science, Kings College",
			Certifications: []string{"European Regulatory Affairs Certified", "GCP Certified"},
			Description:    "European regulatory expert specializing in centralized and national procedures for innovative therapies.",
			Expertise:      []string{"Centralized Procedure", "PRIME Designation", "Scientific Advice", "Pediatric Investigation Plans"},
			Rate:           "€380/hour",
			Availability:   "Limited availability",
			VendorFitScore: 93,
			Languages:      []string{"English", "Dutch", "Mandarin"},
			RecentProjects: []string{"Gene therapy PRIME designation", "Biosimilar centralized approval", "Pediatric development plan"},
			ClientReview:   "James provided exceptional guidance through our complex EMA submission process.",
			ContactEmail:   "j.chen@euroregs.eu",
		},
		{
			ID:             "consultant-3",
			Name:           "Dr. Maria Rodriguez",
			Specialty:      "Medical Device Regulation",
			Experience:     "18 years",
			Location:       "Barcelona, Spain",
			Education:      "MD, University of Barcelona; MSc Biomedical Engineering, MIT",
			Certifications: []string{"EU MDR Expert", "ISO 13485 Lead Auditor", "Notified Body Assessor"},
			Description:    "Medical device regulatory specialist with deep expertise in EU MDR transition and global market access.",
			Expertise:      []string{"EU MDR Compliance", "Clinical Evaluation", "Risk Management", "Global Harmonization"},
			Rate:           "€420/hour",
			Availability:   "Available immediately",
			VendorFitScore: 91,
			Languages:      []string{"Spanish", "English", "French", "Portuguese"},
			RecentProjects: []string{"Class III device EU MDR compliance", "Clinical evaluation report", "Risk management file"},
			ClientReview:   "Maria's expertise in EU MDR helped us achieve compliance ahead of schedule.",
			ContactEmail:   "maria.rodriguez@meddeviceexpert.es",
		},
	}
}

// SampleCROs returns a fresh copy of the built-in CRO listings.
func SampleCROs() []models.CRO {
	return []models.CRO{
		{
			ID:                "cro-1",
			Name:              "Precision Clinical Research",
			Category:          "Full Service CRO",
			Specialties:       []string{"Phase I-III Trials", "Oncology", "Rare Diseases"},
			Location:          "Multiple Global Locations",
			Employees:         "2,000-5,000",
			Founded:           "2005",
			Description:       "Global CRO specializing in complex clinical trials with expertise in oncology and rare disease research.",
			Services:          []string{"Protocol Development", "Site Management", "Data Management", "Biostatistics", "Regulatory Affairs"},
			VendorFitScore:    95,
			ContactEmail:      "business.development@precision-clinical.com",
			Website:           "www.precision-clinical.com",
			Accreditations:    []string{"AAHRPP Accredited", "ISO 9001", "GCP Compliant"},
			TherapeuticAreas:  []string{"Oncology", "Neurology", "Rare Diseases", "Immunology"},
			GeographicReach:   []string{"North America", "Europe", "Asia-Pacific", "Latin America"},
			RecentTrials:      []string{"Global Phase III oncology study (1,200 patients)", "Rare disease natural history study"},
			ClientTestimonial: "Precision Clinical delivered our Phase III trial on time and under budget with exceptional data quality.",
			KeyCapabilities:   []string{"Patient recruitment", "Regulatory submissions", "Data analytics", "Risk-based monitoring"},
		},
		{
			ID:                "cro-2",
			Name:              "BioTrials Excellence",
			Category:          "Specialized CRO",
			Specialties:       []string{"Biomarker Studies", "Digital Health", "Decentralized Trials"},
			Location:          "Boston, MA",
			Employees:         "500-1,000",
			Founded:           "2010",
			Description:       "Innovative CRO focused on biomarker-driven trials and digital health technologies.",
			Services:          []string{"Biomarker Strategy", "Digital Endpoints", "Remote Monitoring", "Real-World Evidence"},
			VendorFitScore:    88,
			ContactEmail:      "partnerships@biotrials-excellence.com",
			Website:           "www.biotrials-excellence.com",
			Accreditations:    []string{"CAP Accredited", "CLIA Certified", "Digital Medicine Society Member"},
			TherapeuticAreas:  []string{"Precision Medicine", "Digital Therapeutics", "Biomarker Development"},
			GeographicReach:   []string{"North America", "Europe"},
			RecentTrials:      []string{"Digital biomarker validation study", "Decentralized Phase II trial"},
			ClientTestimonial: "Their expertise in digital endpoints was crucial for our innovative trial design.",
			KeyCapabilities:   []string{"Digital health integration", "Biomarker analytics", "Patient-centric design"},
		},
	}
}

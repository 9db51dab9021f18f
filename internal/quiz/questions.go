package quiz

// Question is one multiple-choice question. CorrectAnswer indexes Options and
// is never serialized.
type Question struct {
	ID            int      `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"-"`
}

// Questions returns the regulatory affairs quiz in presentation order.
func Questions() []Question {
	return []Question{
		{
			ID:       1,
			Question: "What is the primary purpose of a 510(k) submission to the FDA?",
			Options: []string{
				"To register a new pharmaceutical company",
				"To demonstrate substantial equivalence to a predicate device",
				"To apply for orphan drug designation",
				"To request a pre-market approval for Class III devices",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       2,
			Question: "Which ICH guideline covers Good Clinical Practice (GCP)?",
			Options: []string{
				"ICH E6",
				"ICH E2A",
				"ICH Q7",
				"ICH M4",
			},
			CorrectAnswer: 0,
		},
		{
			ID:       3,
			Question: "What is the maximum duration for a clinical trial under the FDA's IND regulations?",
			Options: []string{
				"1 year",
				"2 years",
				"5 years",
				"No specific limit if annual reports are submitted",
			},
			CorrectAnswer: 3,
		},
		{
			ID:       4,
			Question: "EMA's PRIME designation is designed for:",
			Options: []string{
				"Generic drug applications",
				"Medicines addressing unmet medical needs",
				"Medical device submissions",
				"Cosmetic product approvals",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       5,
			Question: "What does REMS stand for in FDA terminology?",
			Options: []string{
				"Regulatory Evaluation and Monitoring System",
				"Risk Evaluation and Mitigation Strategies",
				"Research and Ethics Management Standards",
				"Rapid Emergency Medical Services",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       6,
			Question: "Which document is required for initial marketing authorization in the EU?",
			Options: []string{
				"Common Technical Document (CTD)",
				"Investigational New Drug (IND) application",
				"510(k) submission",
				"New Drug Application (NDA)",
			},
			CorrectAnswer: 0,
		},
		{
			ID:       7,
			Question: "The FDA's Breakthrough Therapy designation requires:",
			Options: []string{
				"Completion of Phase III trials",
				"Preliminary clinical evidence of substantial improvement",
				"Prior approval in another country",
				"Orphan drug status",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       8,
			Question: "What is the primary purpose of pharmacovigilance?",
			Options: []string{
				"To monitor drug manufacturing processes",
				"To detect, assess, and prevent adverse drug reactions",
				"To conduct clinical trials",
				"To register pharmaceutical companies",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       9,
			Question: "Which FDA center regulates biological products?",
			Options: []string{
				"CDER (Center for Drug Evaluation and Research)",
				"CDRH (Center for Devices and Radiological Health)",
				"CBER (Center for Biologics Evaluation and Research)",
				"CFSAN (Center for Food Safety and Applied Nutrition)",
			},
			CorrectAnswer: 2,
		},
		{
			ID:       10,
			Question: "The EU Clinical Trials Regulation came into effect in:",
			Options: []string{
				"2019",
				"2020",
				"2021",
				"2022",
			},
			CorrectAnswer: 2,
		},
		{
			ID:       11,
			Question: "What is required for an Investigational Medicinal Product Dossier (IMPD)?",
			Options: []string{
				"Marketing authorization",
				"Quality, non-clinical and clinical data",
				"Commercial pricing information",
				"Distribution network details",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       12,
			Question: "FDA's Real-World Evidence (RWE) can be used for:",
			Options: []string{
				"Initial drug approval only",
				"Post-market studies only",
				"Both regulatory decisions and post-market requirements",
				"Manufacturing inspections only",
			},
			CorrectAnswer: 2,
		},
		{
			ID:       13,
			Question: "The PMDA (Japan) requires which type of clinical data for global development?",
			Options: []string{
				"Only Japanese clinical data",
				"Bridge studies connecting foreign and Japanese data",
				"Only Western clinical data",
				"No clinical data required",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       14,
			Question: "Which ICH region includes regulatory authorities from emerging markets?",
			Options: []string{
				"ICH E region",
				"ICH J region",
				"ICH M region",
				"ICH does not include emerging markets",
			},
			CorrectAnswer: 2,
		},
		{
			ID:       15,
			Question: "The FDA's Orange Book lists:",
			Options: []string{
				"Approved medical devices",
				"Therapeutic equivalence evaluations for prescription drugs",
				"Clinical trial protocols",
				"Adverse event reports",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       16,
			Question: "What is the purpose of a Risk Management Plan (RMP) in the EU?",
			Options: []string{
				"To plan clinical trials",
				"To identify and minimize product risks throughout its lifecycle",
				"To schedule regulatory inspections",
				"To manage supply chain logistics",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       17,
			Question: "Health Canada's Notice of Compliance (NOC) is equivalent to:",
			Options: []string{
				"FDA's IND approval",
				"FDA's NDA approval",
				"EMA's PRIME designation",
				"FDA's 510(k) clearance",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       18,
			Question: "The Clinical Data Interchange Standards Consortium (CDISC) develops:",
			Options: []string{
				"Regulatory guidelines",
				"Data standards for clinical research",
				"Manufacturing standards",
				"Marketing authorization procedures",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       19,
			Question: "What triggers a Type C meeting with the FDA?",
			Options: []string{
				"Routine development questions",
				"Emergency safety issues or critical path decisions",
				"Post-market commitments",
				"Annual report submissions",
			},
			CorrectAnswer: 1,
		},
		{
			ID:       20,
			Question: "The EU's Falsified Medicines Directive aims to:",
			Options: []string{
				"Reduce drug development costs",
				"Prevent counterfeit medicines from entering the supply chain",
				"Accelerate drug approvals",
				"Harmonize clinical trial requirements",
			},
			CorrectAnswer: 1,
		},
	}
}

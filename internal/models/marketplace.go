package models

// Vendor is a software or services provider listed in the marketplace.
type Vendor struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Specialties       []string `json:"specialties"`
	Location          string   `json:"location"`
	Employees         string   `json:"employees"`
	Founded           string   `json:"founded"`
	Description       string   `json:"description"`
	Services          []string `json:"services"`
	VendorFitScore    float64  `json:"vendorFitScore"`
	CustomerRating    float64  `json:"customerRating,omitempty"`
	NPSScore          int      `json:"npsScore,omitempty"`
	ContactEmail      string   `json:"contactEmail"`
	Website           string   `json:"website"`
	Certifications    []string `json:"certifications"`
	ClientTestimonial string   `json:"clientTestimonial"`
	Pricing           string   `json:"pricing"`
	KeyPersonnel      []string `json:"keyPersonnel"`
	RecentProjects    []string `json:"recentProjects"`
	PastClients       []string `json:"pastClients,omitempty"`
}

// Consultant is an individual regulatory expert.
type Consultant struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Experience     string   `json:"experience"`
	Location       string   `json:"location"`
	Education      string   `json:"education"`
	Certifications []string `json:"certifications"`
	Description    string   `json:"description"`
	Expertise      []string `json:"expertise"`
	Rate           string   `json:"rate"`
	Availability   string   `json:"availability"`
	VendorFitScore float64  `json:"vendorFitScore"`
	Languages      []string `json:"languages"`
	RecentProjects []string `json:"recentProjects"`
	ClientReview   string   `json:"clientReview"`
	ContactEmail   string   `json:"contactEmail"`
}

// CRO is a contract research organization.
type CRO struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          string   `json:"category"`
	Specialties       []string `json:"specialties"`
	Location          string   `json:"location"`
	Employees         string   `json:"employees"`
	Founded           string   `json:"founded"`
	Description       string   `json:"description"`
	Services          []string `json:"services"`
	VendorFitScore    float64  `json:"vendorFitScore"`
	ContactEmail      string   `json:"contactEmail"`
	Website           string   `json:"website"`
	Accreditations    []string `json:"accreditations"`
	TherapeuticAreas  []string `json:"therapeuticAreas"`
	GeographicReach   []string `json:"geographicReach"`
	RecentTrials      []string `json:"recentTrials"`
	ClientTestimonial string   `json:"clientTestimonial"`
	KeyCapabilities   []string `json:"keyCapabilities"`
}

// GlobalSearchResult groups the top matches of each entity kind.
type GlobalSearchResult struct {
	Feeds       []RegulatoryFeed `json:"feeds"`
	Vendors     []Vendor         `json:"vendors"`
	Consultants []Consultant     `json:"consultants"`
	CROs        []CRO            `json:"cros"`
}

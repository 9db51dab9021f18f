package rfp

// Categories an RFP can be filed under.
var Categories = []string{"RIMS", "IDMP", "Web Apps", "CRO", "Consulting"}

// DirectoryVendor is a vendor that can be invited to an RFP.
type DirectoryVendor struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Logo           string   `json:"logo" yaml:"logo"`
	VendorFitScore float64  `json:"vendorFitScore" yaml:"vendorFitScore"`
	Capabilities   []string `json:"capabilities" yaml:"capabilities"`
	Clients        string   `json:"clients" yaml:"clients"`
}

// Directory returns the invitable vendors.
func Directory() []DirectoryVendor {
	return []DirectoryVendor{
		{ID: "veeva", Name: "Veeva Systems", Logo: "🟢", VendorFitScore: 4.5, Capabilities: []string{"RIMS", "Submissions"}, Clients: "500+"},
		{ID: "arisglobal", Name: "ArisGlobal", Logo: "🔵", VendorFitScore: 4.3, Capabilities: []string{"AI Platform", "Regulatory"}, Clients: "200+"},
		{ID: "iqvia", Name: "IQVIA", Logo: "🟣", VendorFitScore: 4.2, Capabilities: []string{"CRO", "Data"}, Clients: "1000+"},
		{ID: "oracle", Name: "Oracle", Logo: "🔴", VendorFitScore: 4.0, Capabilities: []string{"Cloud", "Database"}, Clients: "300+"},
		{ID: "extedo", Name: "Extedo", Logo: "🟡", VendorFitScore: 4.1, Capabilities: []string{"IDMP", "Submissions"}, Clients: "150+"},
		{ID: "freyr", Name: "Freyr", Logo: "🟠", VendorFitScore: 3.9, Capabilities: []string{"Regulatory", "Consulting"}, Clients: "100+"},
	}
}

func lookupVendor(id string) (DirectoryVendor, bool) {
	for _, v := range Directory() {
		if v.ID == id {
			return v, true
		}
	}
	return DirectoryVendor{}, false
}

func validCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// CannedResponses are the vendor proposals every RFP receives once it reaches the responses step.
func CannedResponses() []VendorResponse {
	return []VendorResponse{
		{
			VendorID:       "veeva",
			VendorName:     "Veeva Systems",
			Logo:           "🟢",
			Timeline:       "8-12 months",
			CostEstimate:   "$850K - $1.2M",
			ProofPoints:    []string{"25+ RIM implementations", "Fortune 500 client base", "Avg 6 month go-live"},
			VendorFitScore: 4.5,
			SubmittedAt:    "2 days ago",
			Documents:      []string{"Technical Proposal.pdf", "Cost Breakdown.xlsx", "Case Studies.pdf"},
		},
		{
			VendorID:       "arisglobal",
			VendorName:     "ArisGlobal",
			Logo:           "🔵",
			Timeline:       "6-10 months",
			CostEstimate:   "$750K - $950K",
			ProofPoints:    []string{"AI-powered platform", "Regulatory expertise", "Cloud-native solution"},
			VendorFitScore: 4.3,
			SubmittedAt:    "1 day ago",
			Documents:      []string{"Proposal_ArisGlobal.pdf", "Pricing.pdf", "References.pdf"},
		},
	}
}

func seedComments() []Comment {
	return []Comment{
		{Author: "Sarah Johnson", Text: "Please clarify the timeline requirements", Timestamp: "2 hours ago"},
		{Author: "Mike Chen", Text: "Budget seems reasonable for this scope", Timestamp: "1 day ago"},
	}
}

// seedWorkflows are the RFPs listed before anything is created.
func seedWorkflows() []*Workflow {
	rims := newWorkflow("1", "John Smith", "2024-01-15")
	rims.RFP.Title = "RIMS Implementation - Global Pharma"
	rims.RFP.Category = "RIMS"
	rims.RFP.SelectedVendors = []string{"veeva", "arisglobal"}
	rims.RFP.Responses = CannedResponses()
	rims.Step = StepResponses

	idmp := newWorkflow("2", "Sarah Johnson", "2024-01-10")
	idmp.RFP.Title = "IDMP Compliance Solution"
	idmp.RFP.Category = "IDMP"
	idmp.RFP.PublishType = PublishPublic
	idmp.RFP.Responses = CannedResponses()
	idmp.RFP.AwardedTo = "Veeva Systems"
	idmp.Step = StepAward

	cro := newWorkflow("3", "Mike Chen", "2024-01-20")
	cro.RFP.Title = "Phase III CRO Services"
	cro.RFP.Category = "CRO"

	out := []*Workflow{rims, idmp, cro}
	for _, w := range out {
		w.sync()
	}
	return out
}

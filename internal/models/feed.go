package models

// Urgency levels a regulatory feed can carry.
const (
	UrgencyHigh   = "High"
	UrgencyMedium = "Medium"
	UrgencyLow    = "Low"
)

// RegulatoryFeed is a regulatory news or guidance update from an agency.
type RegulatoryFeed struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Summary      string   `json:"summary"`
	Content      string   `json:"content"`
	Agency       string   `json:"agency"`
	Region       string   `json:"region"`
	Category     string   `json:"category"`
	Urgency      string   `json:"urgency"`
	Date         string   `json:"date"`
	Tags         []string `json:"tags"`
	Source       string   `json:"source,omitempty"`
	Impact       string   `json:"impact,omitempty"`
	Consultants  []string `json:"consultants,omitempty"`
	URL          string   `json:"url,omitempty"`
	DocumentType string   `json:"document_type,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// ValidUrgency reports whether u is one of High, Medium or Low.
func ValidUrgency(u string) bool {
	switch u {
	case UrgencyHigh, UrgencyMedium, UrgencyLow:
		return true
	}
	return false
}

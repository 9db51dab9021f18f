// Package bookmarks serves the saved-items panel.
package bookmarks

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	ErrInvalidCategory = errors.New("bookmarks: invalid category")
	ErrInvalidSort     = errors.New("bookmarks: invalid sort")
)

const CategoryAll = "all"

// Categories a bookmark can belong to, excluding CategoryAll.
var Categories = []string{"regulatory", "marketplace", "meetings"}

type Sort string

const (
	SortRecent       Sort = "recent"
	SortViewed       Sort = "viewed"
	SortPopular      Sort = "popular"
	SortAlphabetical Sort = "alphabetical"
)

type Bookmark struct {
	ID             int      `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	URL            string   `json:"url"`
	Category       string   `json:"category"`
	Tags           []string `json:"tags"`
	DateBookmarked string   `json:"dateBookmarked"`
	LastViewed     string   `json:"lastViewed"`
	Views          int      `json:"views"`
	Source         string   `json:"source"`
	Priority       string   `json:"priority"`
	Rating         float64  `json:"rating,omitempty"`
	VendorFitScore float64  `json:"vendorFitScore,omitempty"`
	MeetingDate    string   `json:"meetingDate,omitempty"`
}

// Query selects and orders bookmarks. Zero values mean all categories, no text
// filter and most recently bookmarked first.
type Query struct {
	Category string
	Text     string
	Sort     Sort
}

func (q Query) normalize() (Query, error) {
	if q.Category == "" {
		q.Category = CategoryAll
	}
	if q.Category != CategoryAll && !slices.Contains(Categories, q.Category) {
		return q, fmt.Errorf("%w: %q", ErrInvalidCategory, q.Category)
	}
	switch q.Sort {
	case "":
		q.Sort = SortRecent
	case SortRecent, SortViewed, SortPopular, SortAlphabetical:
	default:
		return q, fmt.Errorf("%w: %q", ErrInvalidSort, q.Sort)
	}
	return q, nil
}

func (b Bookmark) matches(lowerText string) bool {
	if lowerText == "" {
		return true
	}
	if strings.Contains(strings.ToLower(b.Title), lowerText) ||
		strings.Contains(strings.ToLower(b.Description), lowerText) {
		return true
	}
	return slices.ContainsFunc(b.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), lowerText)
	})
}

// List filters the bookmarks by q and sorts them stably.
func List(q Query) ([]Bookmark, error) {
	q, err := q.normalize()
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(q.Text)
	out := []Bookmark{}
	for _, b := range Items() {
		if q.Category != CategoryAll && b.Category != q.Category {
			continue
		}
		if b.matches(text) {
			out = append(out, b)
		}
	}

	slices.SortStableFunc(out, func(a, b Bookmark) int {
		switch q.Sort {
		case SortViewed:
			return strings.Compare(b.LastViewed, a.LastViewed)
		case SortPopular:
			return cmp.Compare(b.Views, a.Views)
		case SortAlphabetical:
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		default:
			return strings.Compare(b.DateBookmarked, a.DateBookmarked)
		}
	})
	return out, nil
}

// CategoryStats counts bookmarks per category, with the grand total under CategoryAll.
func CategoryStats() map[string]int {
	stats := map[string]int{CategoryAll: 0}
	for _, c := range Categories {
		stats[c] = 0
	}
	for _, b := range Items() {
		stats[CategoryAll]++
		stats[b.Category]++
	}
	return stats
}

// Items returns every saved item.
func Items() []Bookmark {
	return []Bookmark{
		{
			ID: 1, Type: "feed", Category: "regulatory", Priority: "high", Source: "FDA",
			Title:          "FDA Updates Drug Approval Guidelines for Novel Therapeutics",
			Description:    "Comprehensive guidance on MAA submissions with enhanced clinical data requirements",
			URL:            "/feeds/fda-drug-approval-guidelines-2024",
			Tags:           []string{"FDA", "Drug Approval", "MAA", "Clinical Data"},
			DateBookmarked: "2024-12-20", LastViewed: "2024-12-22", Views: 15,
		},
		{
			ID: 2, Type: "consultant", Category: "marketplace", Priority: "medium", Source: "Independent", Rating: 4.8,
			Title:          "Dr. David Williams - Veeva RIM Implementation Expert",
			Description:    "Independent consultant with 16+ years in regulatory technology and 25+ Veeva implementations",
			URL:            "/consultants/david-williams",
			Tags:           []string{"Veeva", "RIM", "IDMP", "Implementation"},
			DateBookmarked: "2024-12-18", LastViewed: "2024-12-21", Views: 8,
		},
		{
			ID: 3, Type: "document", Category: "regulatory", Priority: "high", Source: "EMA",
			Title:          "EMA Digital Transformation Strategy 2025-2027",
			Description:    "Strategic roadmap for digital submission processes and AI integration in regulatory review",
			URL:            "/documents/ema-digital-strategy-2025",
			Tags:           []string{"EMA", "Digital Transformation", "AI", "eCTD"},
			DateBookmarked: "2024-12-15", LastViewed: "2024-12-22", Views: 22,
		},
		{
			ID: 4, Type: "rfp", Category: "marketplace", Priority: "medium", Source: "PharmaCorp",
			Title:          "RFP-2024-003: Global Pharmacovigilance System Implementation",
			Description:    "Multi-region PV system implementation with Argus Safety and automated case processing",
			URL:            "/rfp/rfp-2024-003",
			Tags:           []string{"Pharmacovigilance", "Argus Safety", "Global", "Automation"},
			DateBookmarked: "2024-12-12", LastViewed: "2024-12-20", Views: 12,
		},
		{
			ID: 5, Type: "vendor", Category: "marketplace", Priority: "medium", Source: "Veeva Systems", VendorFitScore: 4.5,
			Title:          "Veeva Systems - Regulatory Cloud Platform",
			Description:    "Comprehensive regulatory information management with IDMP compliance and AI capabilities",
			URL:            "/vendors/veeva-systems",
			Tags:           []string{"Veeva", "RIM", "Cloud", "IDMP", "AI"},
			DateBookmarked: "2024-12-10", LastViewed: "2024-12-19", Views: 18,
		},
		{
			ID: 6, Type: "feed", Category: "regulatory", Priority: "medium", Source: "PMDA",
			Title:          "PMDA Fast-Track Designation for Regenerative Medicine",
			Description:    "New expedited pathway for cell and gene therapy products in Japan regulatory framework",
			URL:            "/feeds/pmda-regen-med-fast-track",
			Tags:           []string{"PMDA", "Regenerative Medicine", "Fast-Track", "Japan"},
			DateBookmarked: "2024-12-08", LastViewed: "2024-12-21", Views: 9,
		},
		{
			ID: 7, Type: "meeting", Category: "meetings", Priority: "high", Source: "Accenture", MeetingDate: "2024-12-28",
			Title:          "Regulatory Strategy Session with Accenture Team",
			Description:    "Upcoming consultation on CTIS implementation and EU regulatory harmonization",
			URL:            "/meetings/accenture-consultation-dec28",
			Tags:           []string{"Accenture", "CTIS", "EU", "Strategy"},
			DateBookmarked: "2024-12-05", LastViewed: "2024-12-22", Views: 5,
		},
		{
			ID: 8, Type: "document", Category: "regulatory", Priority: "medium", Source: "ICH",
			Title:          "ICH M10: Bioanalytical Method Validation Guidelines",
			Description:    "Updated harmonized guidelines for bioanalytical method validation across regions",
			URL:            "/documents/ich-m10-bioanalytical",
			Tags:           []string{"ICH", "Bioanalytical", "Validation", "Harmonization"},
			DateBookmarked: "2024-12-02", LastViewed: "2024-12-18", Views: 14,
		},
	}
}

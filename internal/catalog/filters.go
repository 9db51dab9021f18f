package catalog

import (
	"strings"
	"time"

	"nexus.regintel.org/internal/models"
)

// GlobalSearchLimit caps the matches returned per entity kind.
const GlobalSearchLimit = 3

// FeedFilter selects regulatory feeds. Empty fields match everything.
type FeedFilter struct {
	Query    string
	Category string
	Region   string
	Urgency  string
	Agency   string
	DateFrom string // inclusive, YYYY-MM-DD
	DateTo   string // inclusive, YYYY-MM-DD
}

// Matches reports whether feed satisfies every set field of f.
func (f FeedFilter) Matches(feed models.RegulatoryFeed) bool {
	if q := strings.ToLower(f.Query); q != "" {
		if !containsFold(feed.Title, q) &&
			!containsFold(feed.Summary, q) &&
			!containsFold(feed.Content, q) &&
			!anyContainsFold(feed.Tags, q) {
			return false
		}
	}
	if f.Category != "" && feed.Category != f.Category {
		return false
	}
	if f.Region != "" && feed.Region != f.Region {
		return false
	}
	if f.Urgency != "" && feed.Urgency != f.Urgency {
		return false
	}
	if f.Agency != "" && feed.Agency != f.Agency {
		return false
	}
	// ISO dates order lexically
	if f.DateFrom != "" && feed.Date < f.DateFrom {
		return false
	}
	if f.DateTo != "" && feed.Date > f.DateTo {
		return false
	}
	return true
}

// FilterFeeds returns the feeds matching f in their original order. The result is never nil.
func FilterFeeds(feeds []models.RegulatoryFeed, f FeedFilter) []models.RegulatoryFeed {
	out := make([]models.RegulatoryFeed, 0, len(feeds))
	for _, feed := range feeds {
		if f.Matches(feed) {
			out = append(out, feed)
		}
	}
	return out
}

// MarketplaceFilter selects vendors, consultants or CROs.
type MarketplaceFilter struct {
	Query    string
	Category string
	MinScore float64
}

func (f MarketplaceFilter) matches(name, description, category string, score float64, lists ...[]string) bool {
	if f.Category != "" && category != f.Category {
		return false
	}
	if score < f.MinScore {
		return false
	}
	q := strings.ToLower(f.Query)
	if q == "" {
		return true
	}
	if containsFold(name, q) || containsFold(description, q) {
		return true
	}
	for _, list := range lists {
		if anyContainsFold(list, q) {
			return true
		}
	}
	return false
}

func FilterVendors(vendors []models.Vendor, f MarketplaceFilter) []models.Vendor {
	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if f.matches(v.Name, v.Description, v.Category, v.VendorFitScore, v.Specialties, v.Services) {
			out = append(out, v)
		}
	}
	return out
}

// FilterConsultants matches Category against the consultant's specialty.
func FilterConsultants(consultants []models.Consultant, f MarketplaceFilter) []models.Consultant {
	out := make([]models.Consultant, 0, len(consultants))
	for _, c := range consultants {
		if f.matches(c.Name, c.Description, c.Specialty, c.VendorFitScore, c.Expertise, []string{c.Specialty}) {
			out = append(out, c)
		}
	}
	return out
}

func FilterCROs(cros []models.CRO, f MarketplaceFilter) []models.CRO {
	out := make([]models.CRO, 0, len(cros))
	for _, c := range cros {
		if f.matches(c.Name, c.Description, c.Category, c.VendorFitScore, c.Specialties, c.TherapeuticAreas) {
			out = append(out, c)
		}
	}
	return out
}

// SearchAll runs the dashboard's global search: each kind is matched on its name or
// headline plus one list field, and truncated to GlobalSearchLimit.
func SearchAll(feeds []models.RegulatoryFeed, vendors []models.Vendor, consultants []models.Consultant, cros []models.CRO, query string) models.GlobalSearchResult {
	q := strings.ToLower(query)
	result := models.GlobalSearchResult{
		Feeds:       []models.RegulatoryFeed{},
		Vendors:     []models.Vendor{},
		Consultants: []models.Consultant{},
		CROs:        []models.CRO{},
	}

	for _, f := range feeds {
		if len(result.Feeds) == GlobalSearchLimit {
			break
		}
		if containsFold(f.Title, q) || containsFold(f.Summary, q) {
			result.Feeds = append(result.Feeds, f)
		}
	}
	for _, v := range vendors {
		if len(result.Vendors) == GlobalSearchLimit {
			break
		}
		if containsFold(v.Name, q) || anyContainsFold(v.Specialties, q) {
			result.Vendors = append(result.Vendors, v)
		}
	}
	for _, c := range consultants {
		if len(result.Consultants) == GlobalSearchLimit {
			break
		}
		if containsFold(c.Name, q) || anyContainsFold(c.Expertise, q) {
			result.Consultants = append(result.Consultants, c)
		}
	}
	for _, c := range cros {
		if len(result.CROs) == GlobalSearchLimit {
			break
		}
		if containsFold(c.Name, q) || anyContainsFold(c.TherapeuticAreas, q) {
			result.CROs = append(result.CROs, c)
		}
	}
	return result
}

// FeedStats summarizes the feeds panel header.
type FeedStats struct {
	Total    int `json:"total"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
	ThisWeek int `json:"thisWeek"`
}

// ComputeFeedStats counts feeds by urgency and those dated within the 7 days before now.
func ComputeFeedStats(feeds []models.RegulatoryFeed, now time.Time) FeedStats {
	stats := FeedStats{Total: len(feeds)}
	weekAgo := now.AddDate(0, 0, -7)

	for _, f := range feeds {
		switch f.Urgency {
		case models.UrgencyHigh:
			stats.High++
		case models.UrgencyMedium:
			stats.Medium++
		case models.UrgencyLow:
			stats.Low++
		}

		date, err := time.ParseInLocation("2006-01-02", f.Date, now.Location())
		if err != nil {
			continue
		}
		if !date.Before(weekAgo) && !date.After(now) {
			stats.ThisWeek++
		}
	}
	return stats
}

// containsFold expects lowerNeedle to be lower-cased already.
func containsFold(haystack, lowerNeedle string) bool {
	return strings.Contains(strings.ToLower(haystack), lowerNeedle)
}

func anyContainsFold(values []string, lowerNeedle string) bool {
	for _, v := range values {
		if containsFold(v, lowerNeedle) {
			return true
		}
	}
	return false
}

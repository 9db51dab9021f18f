package analytics

import (
	"errors"
	"fmt"
)

var ErrInvalidRange = errors.New("analytics: invalid range")

// DefaultRange is used when no range is requested.
const DefaultRange = "7d"

// Ranges accepted by Report, in selector order.
var Ranges = []string{"1d", "7d", "30d", "90d"}

type RevenuePoint struct {
	Month   string `json:"month"`
	Revenue int    `json:"revenue"`
	Growth  int    `json:"growth"`
}

type ActivityPoint struct {
	Time   string `json:"time"`
	Active int    `json:"active"`
}

type DeviceShare struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// PageStat is one row of the top pages table. Performance is 100 minus the bounce rate.
type PageStat struct {
	Page        string `json:"page"`
	Views       int    `json:"views"`
	Bounce      int    `json:"bounce"`
	Performance int    `json:"performance"`
	Rating      string `json:"rating"`
}

type KPI struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Delta string `json:"delta"`
	Trend string `json:"trend"`
}

type QuickStat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Activity struct {
	Message string `json:"message"`
	When    string `json:"when"`
}

// Report is everything the analytics panel draws.
type Report struct {
	Range          string          `json:"range"`
	KPIs           []KPI           `json:"kpis"`
	Revenue        []RevenuePoint  `json:"revenue"`
	UserActivity   []ActivityPoint `json:"userActivity"`
	Devices        []DeviceShare   `json:"devices"`
	TopPages       []PageStat      `json:"topPages"`
	QuickStats     []QuickStat     `json:"quickStats"`
	RecentActivity []Activity      `json:"recentActivity"`
}

// ValidRange reports whether r is a selectable range.
func ValidRange(r string) bool {
	for _, v := range Ranges {
		if v == r {
			return true
		}
	}
	return false
}

// BuildReport returns the panel data for timeRange. The series do not vary by
// range; the range is echoed back.
func BuildReport(timeRange string) (Report, error) {
	if timeRange == "" {
		timeRange = DefaultRange
	}
	if !ValidRange(timeRange) {
		return Report{}, fmt.Errorf("%w: %q", ErrInvalidRange, timeRange)
	}

	return Report{
		Range: timeRange,
		KPIs: []KPI{
			{Title: "Total Revenue", Value: "$45,231", Delta: "+20.1%", Trend: "up"},
			{Title: "Active Users", Value: "2,350", Delta: "+180", Trend: "up"},
			{Title: "Page Views", Value: "50,720", Delta: "-2.5%", Trend: "down"},
			{Title: "Conversion Rate", Value: "3.24%", Delta: "+0.8%", Trend: "up"},
		},
		Revenue: []RevenuePoint{
			{Month: "Jan", Revenue: 4200, Growth: 12},
			{Month: "Feb", Revenue: 4800, Growth: 18},
			{Month: "Mar", Revenue: 5200, Growth: 15},
			{Month: "Apr", Revenue: 4900, Growth: 8},
			{Month: "May", Revenue: 5800, Growth: 22},
			{Month: "Jun", Revenue: 6200, Growth: 25},
		},
		UserActivity: []ActivityPoint{
			{Time: "00:00", Active: 120},
			{Time: "04:00", Active: 80},
			{Time: "08:00", Active: 350},
			{Time: "12:00", Active: 420},
			{Time: "16:00", Active: 380},
			{Time: "20:00", Active: 250},
		},
		Devices: []DeviceShare{
			{Name: "Desktop", Value: 65, Color: "#0ea5e9"},
			{Name: "Mobile", Value: 28, Color: "#22c55e"},
			{Name: "Tablet", Value: 7, Color: "#f59e0b"},
		},
		TopPages: []PageStat{
			pageStat("/dashboard", 15420, 32),
			pageStat("/analytics", 12890, 28),
			pageStat("/reports", 9340, 45),
			pageStat("/settings", 7650, 38),
			pageStat("/profile", 5420, 42),
		},
		QuickStats: []QuickStat{
			{Label: "Avg. Session Duration", Value: "4m 32s"},
			{Label: "Bounce Rate", Value: "34.2%"},
			{Label: "New Visitors", Value: "68.1%"},
			{Label: "Return Visitors", Value: "31.9%"},
		},
		RecentActivity: []Activity{
			{Message: "New user registration completed", When: "2 minutes ago"},
			{Message: "Report generated successfully", When: "5 minutes ago"},
			{Message: "System maintenance scheduled", When: "1 hour ago"},
		},
	}, nil
}

// pageStat rates a page good below 35% bounce, fair below 45% and poor otherwise.
func pageStat(page string, views, bounce int) PageStat {
	rating := "poor"
	switch {
	case bounce < 35:
		rating = "good"
	case bounce < 45:
		rating = "fair"
	}
	return PageStat{Page: page, Views: views, Bounce: bounce, Performance: 100 - bounce, Rating: rating}
}

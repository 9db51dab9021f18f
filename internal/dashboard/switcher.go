// Package dashboard resolves sidebar selections into the panel they display.
package dashboard

import (
	"context"
	"time"

	"nexus.regintel.org/internal/analytics"
	"nexus.regintel.org/internal/bookmarks"
	"nexus.regintel.org/internal/catalog"
	"nexus.regintel.org/internal/models"
	"nexus.regintel.org/internal/notifications"
	"nexus.regintel.org/internal/quiz"
	"nexus.regintel.org/internal/rfp"
)

// Panel keys.
const (
	KeyDashboard     = "dashboard"
	KeyAnalytics     = "analytics"
	KeyNotifications = "notifications"
	KeyBookmarks     = "bookmarks"
	KeyFeeds         = "feeds"
	KeyDocComparison = "doc-comparison"
	KeyQuiz          = "quiz"
	KeyVendors       = "vendors"
	KeyConsultants   = "consultants"
	KeyCROs          = "cros"
	KeyRFP           = "rfp"
	KeySettings      = "settings"
	KeyHelp          = "help"
	KeyFeedDetail    = "feed-detail"
)

// Panel is what the main content area shows for one key.
type Panel struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Section string `json:"section,omitempty"`
	Data    any    `json:"data"`
}

// Sources feed the panels that show live data.
type Sources struct {
	Catalog       *catalog.Catalog
	RFPs          *rfp.Registry
	Notifications *notifications.Center
}

type Overview struct {
	QuickStats    []QuickStat          `json:"quickStats"`
	Activity      []ActivityItem       `json:"recentActivity"`
	Deadlines     []Deadline           `json:"upcomingDeadlines"`
	Consultants   []FeaturedConsultant `json:"topConsultants"`
	FeedStats     catalog.FeedStats    `json:"feedStats"`
	Notifications notifications.Counts `json:"notifications"`
}

type FeedsPanel struct {
	Feeds []models.RegulatoryFeed `json:"feeds"`
	Stats catalog.FeedStats       `json:"stats"`
}

type NotificationsPanel struct {
	Items  []notifications.Notification `json:"items"`
	Counts notifications.Counts         `json:"counts"`
}

type BookmarksPanel struct {
	Items []bookmarks.Bookmark `json:"items"`
	Stats map[string]int       `json:"stats"`
}

type QuizPanel struct {
	Meta      quiz.Meta       `json:"meta"`
	Stats     quiz.UserStats  `json:"stats"`
	Questions []quiz.Question `json:"questions"`
}

type RFPPanel struct {
	RFPs       []rfp.Workflow        `json:"rfps"`
	Categories []string              `json:"categories"`
	Vendors    []rfp.DirectoryVendor `json:"vendors"`
}

type panelDef struct {
	title string
	build func(ctx context.Context) (any, error)
}

// Switcher maps panel keys to their builders.
type Switcher struct {
	src    Sources
	panels map[string]panelDef
	now    func() time.Time
}

func NewSwitcher(src Sources) *Switcher {
	s := &Switcher{src: src, now: time.Now}
	s.panels = map[string]panelDef{
		KeyDashboard:     {"Dashboard", s.overview},
		KeyAnalytics:     {"Analytics", staticData(mustReport)},
		KeyNotifications: {"Notifications", s.notifications},
		KeyBookmarks:     {"Bookmarks", s.bookmarks},
		KeyFeeds:         {"Feeds", s.feeds},
		KeyDocComparison: {"Doc Comparison", staticData(docComparison)},
		KeyQuiz:          {"Quiz", staticData(quizPanel)},
		KeyVendors:       {"Vendors", func(ctx context.Context) (any, error) { return s.src.Catalog.Vendors(ctx) }},
		KeyConsultants:   {"Consultants", func(ctx context.Context) (any, error) { return s.src.Catalog.Consultants(ctx) }},
		KeyCROs:          {"CROs", func(ctx context.Context) (any, error) { return s.src.Catalog.CROs(ctx) }},
		KeyRFP:           {"RFP", s.rfps},
		KeySettings:      {"Settings", staticData(settings)},
		KeyHelp:          {"Help & Support", staticData(help)},
		KeyFeedDetail:    {"Feed Detail", s.feeds},
	}
	return s
}

// Resolve builds the panel for key. An unknown key resolves to the dashboard.
func (s *Switcher) Resolve(ctx context.Context, key string) (Panel, error) {
	def, ok := s.panels[key]
	if !ok {
		key = KeyDashboard
		def = s.panels[KeyDashboard]
	}

	data, err := def.build(ctx)
	if err != nil {
		return Panel{}, err
	}
	return Panel{Key: key, Title: def.title, Section: sectionOf(key), Data: data}, nil
}

// FeedDetail builds the detail panel for one feed.
func (s *Switcher) FeedDetail(ctx context.Context, id string) (Panel, error) {
	feed, err := s.src.Catalog.Feed(ctx, id)
	if err != nil {
		return Panel{}, err
	}
	return Panel{Key: KeyFeedDetail, Title: feed.Title, Section: sectionOf(KeyFeeds), Data: feed}, nil
}

func staticData[T any](fn func() T) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		return fn(), nil
	}
}

func mustReport() analytics.Report {
	// the default range is always valid
	report, _ := analytics.BuildReport(analytics.DefaultRange)
	return report
}

func quizPanel() QuizPanel {
	return QuizPanel{Meta: quiz.QuizMeta(), Stats: quiz.CurrentUserStats(), Questions: quiz.Questions()}
}

func (s *Switcher) overview(ctx context.Context) (any, error) {
	stats, err := s.src.Catalog.Stats(ctx, s.now())
	if err != nil {
		return nil, err
	}
	return Overview{
		QuickStats:    overviewQuickStats(),
		Activity:      overviewActivity(),
		Deadlines:     overviewDeadlines(),
		Consultants:   overviewConsultants(),
		FeedStats:     stats,
		Notifications: s.src.Notifications.Counts(),
	}, nil
}

func (s *Switcher) feeds(ctx context.Context) (any, error) {
	feeds, err := s.src.Catalog.Feeds(ctx)
	if err != nil {
		return nil, err
	}
	return FeedsPanel{Feeds: feeds, Stats: catalog.ComputeFeedStats(feeds, s.now())}, nil
}

func (s *Switcher) notifications(context.Context) (any, error) {
	return NotificationsPanel{
		Items:  s.src.Notifications.List(notifications.TabAll),
		Counts: s.src.Notifications.Counts(),
	}, nil
}

func (s *Switcher) bookmarks(context.Context) (any, error) {
	items, err := bookmarks.List(bookmarks.Query{})
	if err != nil {
		return nil, err
	}
	return BookmarksPanel{Items: items, Stats: bookmarks.CategoryStats()}, nil
}

func (s *Switcher) rfps(context.Context) (any, error) {
	return RFPPanel{RFPs: s.src.RFPs.List(), Categories: rfp.Categories, Vendors: rfp.Directory()}, nil
}

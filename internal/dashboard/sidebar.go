package dashboard

// NavItem is one sidebar entry. Key is the panel it activates.
type NavItem struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Section groups sidebar entries under a heading.
type Section struct {
	Key   string    `json:"key"`
	Title string    `json:"title"`
	Items []NavItem `json:"items"`
}

// Sidebar returns the navigation sections in display order.
func Sidebar() []Section {
	return []Section{
		{Key: "main", Title: "Overview", Items: []NavItem{
			{Key: KeyDashboard, Title: "Dashboard"},
			{Key: KeyAnalytics, Title: "Analytics"},
			{Key: KeyNotifications, Title: "Notifications"},
			{Key: KeyBookmarks, Title: "Bookmarks"},
		}},
		{Key: "regintel", Title: "Reg Intel", Items: []NavItem{
			{Key: KeyFeeds, Title: "Feeds"},
			{Key: KeyDocComparison, Title: "Doc Comparison"},
			{Key: KeyQuiz, Title: "Quiz"},
		}},
		{Key: "marketplace", Title: "Market Place", Items: []NavItem{
			{Key: KeyVendors, Title: "Vendors"},
			{Key: KeyConsultants, Title: "Consultants"},
			{Key: KeyCROs, Title: "CROs"},
			{Key: KeyRFP, Title: "RFP"},
		}},
		{Key: "account", Title: "Account", Items: []NavItem{
			{Key: KeySettings, Title: "Settings"},
			{Key: KeyHelp, Title: "Help & Support"},
		}},
	}
}

// sectionOf returns the title of the sidebar section holding key.
func sectionOf(key string) string {
	for _, s := range Sidebar() {
		for _, item := range s.Items {
			if item.Key == key {
				return s.Title
			}
		}
	}
	return ""
}

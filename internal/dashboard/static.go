package dashboard

type QuickStat struct {
	Title  string `json:"title"`
	Value  string `json:"value"`
	Change string `json:"change"`
	Trend  string `json:"trend"`
}

type ActivityItem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Time     string `json:"time"`
	Priority string `json:"priority"`
}

type Deadline struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	DaysLeft int    `json:"daysLeft"`
	Type     string `json:"type"`
	Priority string `json:"priority"`
}

type FeaturedConsultant struct {
	Name           string  `json:"name"`
	Firm           string  `json:"firm"`
	Rating         float64 `json:"rating"`
	Specialization string  `json:"specialization"`
	RecentWork     string  `json:"recentWork"`
}

func overviewQuickStats() []QuickStat {
	return []QuickStat{
		{Title: "Active Feeds", Value: "147", Change: "+12%", Trend: "up"},
		{Title: "Consultants Available", Value: "89", Change: "+8%", Trend: "up"},
		{Title: "Active RFPs", Value: "23", Change: "+3", Trend: "up"},
		{Title: "Compliance Score", Value: "94%", Change: "+2%", Trend: "up"},
	}
}

func overviewActivity() []ActivityItem {
	return []ActivityItem{
		{Type: "feed", Title: "FDA Updates Drug Approval Guidelines", Time: "2 hours ago", Priority: "high"},
		{Type: "consultant", Title: "New consultant specializing in IDMP joined", Time: "4 hours ago", Priority: "medium"},
		{Type: "rfp", Title: "RFP-2024-003 received 5 new proposals", Time: "6 hours ago", Priority: "medium"},
		{Type: "quiz", Title: "Quiz: EU MDR Compliance completed", Time: "1 day ago", Priority: "low"},
	}
}

func overviewDeadlines() []Deadline {
	return []Deadline{
		{Title: "FDA 510(k) Submission Review", Date: "Dec 28, 2024", DaysLeft: 6, Type: "submission", Priority: "high"},
		{Title: "EMA Scientific Advice Meeting", Date: "Jan 15, 2025", DaysLeft: 24, Type: "meeting", Priority: "medium"},
		{Title: "PMDA Consultation Response Due", Date: "Jan 22, 2025", DaysLeft: 31, Type: "consultation", Priority: "medium"},
	}
}

func overviewConsultants() []FeaturedConsultant {
	return []FeaturedConsultant{
		{Name: "David Williams", Firm: "Independent", Rating: 4.8, Specialization: "Veeva Implementation", RecentWork: "IDMP Project"},
		{Name: "Regulatory Tech Team", Firm: "Accenture", Rating: 4.7, Specialization: "FDA Submissions", RecentWork: "510(k) Process"},
	}
}

// DocumentChange is one difference between two versions of a guidance document.
type DocumentChange struct {
	ID         int    `json:"id"`
	Change     string `json:"change"`
	UpdateType string `json:"updateType"`
	Location   string `json:"location"`
	Page       int    `json:"page,omitempty"`
}

type DocComparison struct {
	Original string           `json:"original"`
	Revised  string           `json:"revised"`
	Changes  []DocumentChange `json:"changes"`
}

func docComparison() DocComparison {
	return DocComparison{
		Original: "510(k) Guidance - Previous Version",
		Revised:  "510(k) Guidance - Current Version",
		Changes: []DocumentChange{
			{ID: 1, Change: "Regulatory Update for 510(k)", UpdateType: "Added", Location: "paragraph 3", Page: 29},
			{ID: 2, Change: "Clinical trial data requirements", UpdateType: "Modified", Location: "section 4.2", Page: 15},
			{ID: 3, Change: "Previous submission guidelines", UpdateType: "Deleted", Location: "appendix A", Page: 45},
			{ID: 4, Change: "Post-market surveillance protocols", UpdateType: "Added", Location: "chapter 7", Page: 78},
			{ID: 5, Change: "Device classification criteria", UpdateType: "Modified", Location: "table 2.1", Page: 12},
		},
	}
}

type NotificationPreference struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
	Type        string `json:"type"`
}

type ExportOption struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Format      string `json:"format"`
	Size        string `json:"size"`
}

type Settings struct {
	DarkMode           bool                     `json:"darkMode"`
	EmailNotifications bool                     `json:"emailNotifications"`
	PushNotifications  bool                     `json:"pushNotifications"`
	AutoRefresh        bool                     `json:"autoRefresh"`
	ShowSensitiveData  bool                     `json:"showSensitiveData"`
	NotificationPrefs  []NotificationPreference `json:"notificationPreferences"`
	DataExportOptions  []ExportOption           `json:"dataExportOptions"`
}

func settings() Settings {
	return Settings{
		EmailNotifications: true,
		PushNotifications:  true,
		AutoRefresh:        true,
		NotificationPrefs: []NotificationPreference{
			{Title: "Regulatory Updates", Description: "Get notified when new regulatory feeds are available", Enabled: true, Type: "regulatory"},
			{Title: "RFP Responses", Description: "Notifications for new RFP proposals and updates", Enabled: true, Type: "rfp"},
			{Title: "Consultant Recommendations", Description: "Get notified when relevant consultants become available", Type: "consultant"},
			{Title: "Deadline Reminders", Description: "Alerts for upcoming regulatory deadlines", Enabled: true, Type: "deadline"},
			{Title: "Weekly Digest", Description: "Summary of regulatory intelligence activities", Enabled: true, Type: "digest"},
		},
		DataExportOptions: []ExportOption{
			{Title: "Feed History", Description: "Export your regulatory feed reading history", Format: "CSV, JSON", Size: "2.3 MB"},
			{Title: "RFP Data", Description: "Export RFP submissions and responses", Format: "PDF, Excel", Size: "5.7 MB"},
			{Title: "Consultant Contacts", Description: "Export saved consultant information", Format: "vCard, CSV", Size: "0.8 MB"},
			{Title: "Bookmarks & Favorites", Description: "Export saved feeds and bookmarked content", Format: "JSON, HTML", Size: "1.2 MB"},
		},
	}
}

type FAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type FAQCategory struct {
	Category  string `json:"category"`
	Questions []FAQ  `json:"questions"`
}

type ContactOption struct {
	Method       string `json:"method"`
	Description  string `json:"description"`
	Availability string `json:"availability"`
	ResponseTime string `json:"responseTime"`
	Action       string `json:"action"`
}

type Help struct {
	FAQ     []FAQCategory   `json:"faq"`
	Contact []ContactOption `json:"contact"`
}

func help() Help {
	return Help{
		FAQ: []FAQCategory{
			{Category: "Getting Started", Questions: []FAQ{
				{Question: "How do I set up my first regulatory feed?", Answer: "Navigate to the Reg Intel section, select 'Feeds', and click 'Add Feed'. Choose your regulatory authorities (FDA, EMA, PMDA, etc.), select relevant topics, and configure alert preferences. The system will automatically start monitoring for new updates matching your criteria."},
				{Question: "What's the difference between consultants and vendors?", Answer: "Consultants are individual experts or consulting firms who provide advisory services, while vendors offer technology solutions and platforms. Both can be found in our Marketplace section with detailed profiles, ratings, and contact information."},
				{Question: "How do I create my first RFP?", Answer: "Go to Marketplace > RFP and click 'Create New RFP'. Follow the 5-step workflow: Project Details, Requirements, Timeline, Budget, and Review. The system will automatically match relevant vendors based on your requirements."},
			}},
			{Category: "Regulatory Intelligence", Questions: []FAQ{
				{Question: "How often are regulatory feeds updated?", Answer: "Our system monitors regulatory authorities 24/7 and updates feeds in real-time. Most updates appear within 15-30 minutes of publication by the regulatory authority. You can configure refresh intervals in your settings."},
				{Question: "Can I customize feed alerts and notifications?", Answer: "Yes, you can set up custom alerts based on keywords, regulatory authorities, document types, and urgency levels. Notifications can be delivered via email, in-app alerts, or browser notifications."},
				{Question: "What is document comparison and how does it work?", Answer: "Document comparison allows you to identify changes between different versions of regulatory documents. Our AI-powered system highlights additions, deletions, and modifications with color-coded annotations and provides summaries of key changes."},
			}},
			{Category: "Marketplace Features", Questions: []FAQ{
				{Question: "How is the VendorFit score calculated?", Answer: "VendorFit scores are calculated based on multiple factors including past performance, client ratings, relevant experience, technical capabilities, geographic coverage, and cost competitiveness. Scores are updated monthly based on new reviews and completed projects."},
				{Question: "Can I schedule consultations with experts?", Answer: "Yes, many consultants offer direct scheduling through the platform. Click 'Contact' on any consultant profile to see available time slots, consultation rates, and booking options. Some offer free initial consultations."},
				{Question: "How do I track RFP responses and proposals?", Answer: "All RFP responses are tracked in your RFP dashboard. You'll receive notifications when new proposals are submitted, can compare vendor responses side-by-side, and use our scoring system to evaluate proposals against your criteria."},
			}},
			{Category: "Account & Billing", Questions: []FAQ{
				{Question: "What subscription plans are available?", Answer: "We offer Basic (individual users), Professional (small teams), and Enterprise (large organizations) plans. Each includes different levels of access to feeds, marketplace features, and support. Contact our sales team for custom enterprise solutions."},
				{Question: "How do I export my data?", Answer: "You can export data from your user settings under the 'Data' tab. Available formats include CSV, JSON, PDF, and Excel. Exports include feed history, RFP data, consultant contacts, and bookmarks. Large exports may take a few minutes to generate."},
				{Question: "Is my data secure and compliant?", Answer: "Yes, we maintain SOC 2 Type II compliance, use enterprise-grade encryption, and follow strict data governance policies. We're also GDPR compliant and regularly undergo security audits. Your regulatory data is never shared without explicit permission."},
			}},
		},
		Contact: []ContactOption{
			{Method: "Live Chat", Description: "Get instant help from our support team", Availability: "Mon-Fri, 9 AM - 6 PM EST", ResponseTime: "< 2 minutes", Action: "chat"},
			{Method: "Email Support", Description: "Detailed assistance for complex issues", Availability: "24/7 (responses within 4-6 hours)", ResponseTime: "< 6 hours", Action: "email"},
			{Method: "Phone Support", Description: "Priority support for enterprise customers", Availability: "Mon-Fri, 8 AM - 8 PM EST", ResponseTime: "Immediate", Action: "phone"},
			{Method: "Expert Consultation", Description: "One-on-one guidance from regulatory specialists", Availability: "By appointment", ResponseTime: "Within 24 hours", Action: "consultation"},
		},
	}
}

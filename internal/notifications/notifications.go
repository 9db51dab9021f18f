package notifications

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

var (
	ErrNotFound   = errors.New("notifications: not found")
	ErrInvalidTab = errors.New("notifications: invalid tab")
)

type Tab string

const (
	TabAll         Tab = "all"
	TabUnread      Tab = "unread"
	TabHigh        Tab = "high"
	TabRegulatory  Tab = "regulatory"
	TabMarketplace Tab = "marketplace"
)

// ParseTab accepts the tab names; an empty string selects TabAll.
func ParseTab(s string) (Tab, error) {
	switch t := Tab(s); t {
	case "":
		return TabAll, nil
	case TabAll, TabUnread, TabHigh, TabRegulatory, TabMarketplace:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTab, s)
	}
}

type Notification struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Read      bool   `json:"read"`
}

func (n Notification) inTab(tab Tab) bool {
	switch tab {
	case TabUnread:
		return !n.Read
	case TabHigh:
		return n.Priority == "high"
	case TabRegulatory:
		return n.Type == "regulatory" || n.Type == "deadline"
	case TabMarketplace:
		return n.Type == "consultant" || n.Type == "rfp"
	default:
		return true
	}
}

type Counts struct {
	Total  int `json:"total"`
	Unread int `json:"unread"`
	High   int `json:"high"`
}

// Center holds the notification feed. Read flags live in memory only.
type Center struct {
	mu    sync.RWMutex
	items []Notification
}

func NewCenter() *Center {
	return &Center{items: seed()}
}

// List returns the notifications shown under tab, newest first.
func (c *Center) List(tab Tab) []Notification {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := []Notification{}
	for _, n := range c.items {
		if n.inTab(tab) {
			out = append(out, n)
		}
	}
	return out
}

func (c *Center) MarkRead(id int) (Notification, error) {
	return c.update(id, func(n *Notification) { n.Read = true })
}

func (c *Center) ToggleRead(id int) (Notification, error) {
	return c.update(id, func(n *Notification) { n.Read = !n.Read })
}

// MarkAllRead marks every notification read and returns how many changed.
func (c *Center) MarkAllRead() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := 0
	for i := range c.items {
		if !c.items[i].Read {
			c.items[i].Read = true
			changed++
		}
	}
	return changed
}

func (c *Center) Counts() Counts {
	c.mu.RLock()
	defer c.mu.RUnlock()

	counts := Counts{Total: len(c.items)}
	for _, n := range c.items {
		if !n.Read {
			counts.Unread++
		}
		if n.Priority == "high" {
			counts.High++
		}
	}
	return counts
}

func (c *Center) update(id int, fn func(*Notification)) (Notification, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.items, func(n Notification) bool { return n.ID == id })
	if i < 0 {
		return Notification{}, ErrNotFound
	}
	fn(&c.items[i])
	return c.items[i], nil
}

func seed() []Notification {
	return []Notification{
		{ID: 1, Type: "regulatory", Priority: "high", Title: "FDA Updates Drug Approval Guidelines", Message: "New guidance document published affecting MAA submissions for novel therapeutics", Timestamp: "2 hours ago"},
		{ID: 2, Type: "deadline", Priority: "high", Title: "Submission Deadline Approaching", Message: "FDA 510(k) submission for Project Alpha due in 3 days", Timestamp: "4 hours ago"},
		{ID: 3, Type: "consultant", Priority: "medium", Title: "New Expert Available", Message: "Dr. Sarah Johnson (IDMP specialist) has joined the platform with 15+ years experience", Timestamp: "6 hours ago", Read: true},
		{ID: 4, Type: "rfp", Priority: "medium", Title: "RFP Response Received", Message: "5 new proposals received for RFP-2024-003: Veeva RIM Implementation", Timestamp: "8 hours ago", Read: true},
		{ID: 5, Type: "system", Priority: "low", Title: "Weekly Regulatory Digest", Message: "47 new regulatory updates from FDA, EMA, and PMDA this week", Timestamp: "1 day ago"},
		{ID: 6, Type: "achievement", Priority: "low", Title: "Quiz Completed Successfully", Message: "You scored 95% on EU MDR Compliance Assessment - Above average!", Timestamp: "2 days ago", Read: true},
		{ID: 7, Type: "meeting", Priority: "medium", Title: "Consultant Meeting Scheduled", Message: "Video call with David Williams scheduled for Dec 28, 2024 at 2:00 PM EST", Timestamp: "2 days ago", Read: true},
		{ID: 8, Type: "recommendation", Priority: "low", Title: "Consultant Recommendation", Message: "Based on your recent FDA feed activity, we recommend connecting with regulatory specialists", Timestamp: "3 days ago", Read: true},
	}
}

package model

// AnalyticsOverview aggregates counts and recent activity for the
// admin dashboard.
type AnalyticsOverview struct {
	TotalVisitors     int        `json:"total_visitors"`
	ReturningVisitors int        `json:"returning_visitors"`
	TotalContacts     int        `json:"total_contacts"`
	NewContacts       int        `json:"new_contacts"`
	TotalBlogViews    int        `json:"total_blog_views"`
	RecentVisitors    []*Visitor `json:"recent_visitors"`
	RecentContacts    []*Contact `json:"recent_contacts"`
}

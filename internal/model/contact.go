package model

import "time"

// Contact statuses. Transitions are not enforced; any authenticated
// admin may set any status.
const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

// Contact represents a single contact-form submission.
type Contact struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Subject   string     `json:"subject"`
	Message   string     `json:"message"`
	IPAddress string     `json:"ip_address,omitempty"`
	UserAgent string     `json:"user_agent,omitempty"`
	Status    string     `json:"status"` // "new" | "read" | "replied" | "archived"
	CreatedAt time.Time  `json:"created_at"`
	ReadAt    *time.Time `json:"read_at,omitempty"`
	RepliedAt *time.Time `json:"replied_at,omitempty"`
}

// ValidContactStatus reports whether s is one of the known statuses.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	}
	return false
}

// ContactListOptions carries filter and pagination parameters for
// listing contacts. Page is 1-based.
type ContactListOptions struct {
	// Status filters by contact status: "", "all", or a concrete status.
	// Empty string and "all" return all contacts.
	Status string
	Page   int
	Size   int
}

// ContactListResult is a page of contacts, newest first.
type ContactListResult struct {
	Contacts   []*Contact `json:"contacts"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	TotalPages int        `json:"total_pages"`
}

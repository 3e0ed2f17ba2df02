package model

import "time"

// PageVisit is one page view inside a visitor's visit log.
type PageVisit struct {
	Page      string    `json:"page"`
	VisitedAt time.Time `json:"visited_at"`
}

// Visitor aggregates tracking state for one network address.
// The IP address is the identity key; the visit log grows by one
// entry per tracked request.
type Visitor struct {
	ID          string      `json:"id"`
	IPAddress   string      `json:"ip_address"`
	UserAgent   string      `json:"user_agent,omitempty"`
	Referrer    string      `json:"referrer,omitempty"`
	Visits      []PageVisit `json:"visits"`
	IsReturning bool        `json:"is_returning"`
	FirstSeenAt time.Time   `json:"first_seen_at"`
	LastSeenAt  time.Time   `json:"last_seen_at"`
}

// VisitorHit is the per-request input to the tracker.
type VisitorHit struct {
	IPAddress string
	UserAgent string
	Referrer  string
	Page      string
}

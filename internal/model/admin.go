package model

import "time"

// AdminUser is a privileged account that may manage content and
// contact submissions. PasswordHash is a bcrypt hash and never leaves
// the server.
type AdminUser struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Role         string     `json:"role"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

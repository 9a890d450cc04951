package domain

import "time"

// Roles known to the API
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an account as stored, password hash never leaves the repo layer
type User struct {
	ID        string     `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"full_name"`
	Role      string     `json:"role"`
	AvatarURL *string    `json:"avatar_url,omitempty"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// Activity is one audit trail entry
type Activity struct {
	UserID    *string
	Action    string
	Details   map[string]any
	IP        string
	UserAgent string
}

package domain

import "time"

// Status is a user's delivery status
type Status string

const (
	StatusActive  Status = "active"
	StatusBlocked Status = "blocked"
)

// User represents a known bot user
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username,omitempty"`
	FirstSeen time.Time `json:"first_seen"`
	Status    Status    `json:"status"`
}

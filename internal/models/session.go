package models

import "time"

// Session is a DB-backed refresh session. The token is opaque; expiry
// slides forward on every successful refresh, and deleting all sessions
// of a user implements logout-everywhere.
type Session struct {
	BaseModel
	UserID     string    `gorm:"not null;index" json:"user_id"`
	Token      string    `gorm:"uniqueIndex;not null" json:"-"`
	ExpiresAt  time.Time `gorm:"not null;index" json:"expires_at"`
	LastUsedAt time.Time `json:"last_used_at"`
	UserAgent  string    `json:"user_agent"`
	IP         string    `json:"ip"`
}

func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

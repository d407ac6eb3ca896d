package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the single authoritative auth session object. The cookie sent
// to the browser carries only the session ID; the upstream bearer token
// never leaves the server. Cookie and database row are written and cleared
// together through the session service, never independently.
type Session struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Token     string    `json:"-"` // upstream bearer token, kept server-side
	User      User      `json:"user"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry. The upstream
// token's own exp claim is checked separately at login; an expired session
// is treated as not authenticated but is not proactively purged.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}

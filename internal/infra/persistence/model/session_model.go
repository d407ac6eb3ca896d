// Package model contains the GORM persistence models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel is the database row for a server-side auth session. The
// upstream bearer token and the decoded display claims live here; the
// browser only ever sees the session ID.
type SessionModel struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Username  string    `gorm:"column:username;not null;index"`
	Token     string    `gorm:"column:token;not null"`
	Claims    []byte    `gorm:"column:claims;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at;not null"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
}

// TableName specifies the table name for SessionModel
func (SessionModel) TableName() string {
	return "sessions"
}

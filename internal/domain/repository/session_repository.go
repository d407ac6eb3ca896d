package repository

import (
	"context"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/errors"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when no session exists for an ID.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository persists the authoritative server-side auth sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

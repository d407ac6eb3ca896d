// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/domain/repository"
	"fleetgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements the repository.SessionRepository interface.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{
		db: db,
	}
}

// Create persists a new session row.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	claims, err := json.Marshal(session.User)
	if err != nil {
		return errors.Wrap(err, "failed to encode session claims")
	}

	sessionM := &model.SessionModel{
		ID:        session.ID,
		Username:  session.Username,
		Token:     session.Token,
		Claims:    claims,
		CreatedAt: session.CreatedAt,
		ExpiresAt: session.ExpiresAt,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	return nil
}

// FindByID retrieves a session by its ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&sessionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by ID")
	}

	session := &entity.Session{
		ID:        sessionM.ID,
		Username:  sessionM.Username,
		Token:     sessionM.Token,
		CreatedAt: sessionM.CreatedAt,
		ExpiresAt: sessionM.ExpiresAt,
	}
	if len(sessionM.Claims) > 0 {
		// Corrupt claims only lose display fields, not the session.
		_ = json.Unmarshal(sessionM.Claims, &session.User)
	}

	return session, nil
}

// Delete removes a session row. Deleting an absent session is not an error.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.SessionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete session")
	}

	return nil
}

package usecase

import (
	"context"

	"github.com/google/uuid"

	"fleetgate/internal/domain/entity"
)

// LoginInput carries the sign-in form fields.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the registration form fields. Password2 is the
// confirmation field and never leaves this server.
type RegisterInput struct {
	Username  string `json:"username" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	Password2 string `json:"password2"`
	Realname  string `json:"realname"`
}

// SessionUsecase owns the authentication lifecycle: upstream login, server
// session issuance, per-request authentication and teardown.
type SessionUsecase interface {
	// Login authenticates against the upstream API and establishes a
	// server-side session on success.
	Login(ctx context.Context, input *LoginInput) (*entity.Session, error)

	// Authenticate resolves a session cookie value to a live session.
	// Expired or unknown sessions fail with the session-expired error and
	// are purged.
	Authenticate(ctx context.Context, sessionID uuid.UUID) (*entity.Session, error)

	// Logout destroys the session. Unknown sessions are not an error.
	Logout(ctx context.Context, sessionID uuid.UUID) error

	// Register creates an upstream account. It does not log the user in.
	Register(ctx context.Context, input *RegisterInput) error

	// Profile fetches the fresh upstream profile of the session user.
	Profile(ctx context.Context, session *entity.Session) (*entity.User, error)
}

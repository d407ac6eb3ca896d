package repository

import (
	"context"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/errors"
)

// ErrTokenMissing is returned when a login response carries no token in the
// Authorization header, the body, data.token, or as a bare string body.
var ErrTokenMissing = errors.New("Token tidak ditemukan dalam response.")

// RegisterInput carries the upstream registration payload.
type RegisterInput struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Realname string `json:"realname"`
}

// AuthRepository is the upstream credential exchange.
type AuthRepository interface {
	// Login exchanges credentials for a bearer token.
	Login(ctx context.Context, username, password string) (string, error)

	// Register creates a new upstream account.
	Register(ctx context.Context, input RegisterInput) error

	// FetchProfile retrieves the user profile for the token's user.
	FetchProfile(ctx context.Context, token string, userID int) (*entity.User, error)
}

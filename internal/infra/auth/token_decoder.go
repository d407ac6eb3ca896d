// Package auth provides concrete implementations for authentication-related
// domain services.
package auth

import (
	"time"

	"fleetgate/internal/domain/entity"
	"fleetgate/internal/domain/service"
	"fleetgate/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// tokenDecoder decodes upstream bearer tokens without verifying their
// signature. The decoded claims feed UI display only; the upstream API is
// the party that verifies the token.
type tokenDecoder struct {
	parser *jwt.Parser
}

// NewTokenDecoder is the constructor for tokenDecoder.
func NewTokenDecoder() service.TokenDecoder {
	return &tokenDecoder{
		parser: jwt.NewParser(),
	}
}

// DecodeClaims extracts display claims from a JWT-shaped token.
func (d *tokenDecoder) DecodeClaims(token string) (*entity.User, error) {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "failed to decode token")
	}

	user := &entity.User{
		ID:         claimInt(claims, "id"),
		Username:   claimString(claims, "username"),
		Realname:   claimString(claims, "realname"),
		Email:      claimString(claims, "email"),
		UserGroup:  claimInt(claims, "usergroup"),
		UserType:   claimInt(claims, "usertype"),
		UserStatus: claimInt(claims, "userstatus"),
		IsAdmin:    claimBool(claims, "isAdmin"),
	}

	return user, nil
}

// IsExpired checks the exp claim against the current time. Tokens without
// a readable exp claim count as expired.
func (d *tokenDecoder) IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := d.parser.ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return exp.Before(time.Now())
}

// JSON numbers arrive as float64; some upstreams send them as strings.
func claimInt(claims jwt.MapClaims, key string) int {
	switch v := claims[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

func claimString(claims jwt.MapClaims, key string) string {
	if s, ok := claims[key].(string); ok {
		return s
	}

	return ""
}

func claimBool(claims jwt.MapClaims, key string) bool {
	if b, ok := claims[key].(bool); ok {
		return b
	}

	return false
}

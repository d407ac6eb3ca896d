// Package service declares domain service interfaces.
package service

import "fleetgate/internal/domain/entity"

// TokenDecoder reads display claims out of an upstream bearer token. The
// token is an opaque credential for this gateway: claims are decoded
// WITHOUT signature verification and are used for UI display only, never
// for authorization decisions. The upstream API verifies the token itself.
type TokenDecoder interface {
	// DecodeClaims extracts the user profile claims from a JWT-shaped
	// token. A malformed token yields an error; missing claims yield
	// zero values.
	DecodeClaims(token string) (*entity.User, error)

	// IsExpired reports whether the token's exp claim has passed. Tokens
	// without a readable exp claim count as expired.
	IsExpired(token string) bool
}

package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims read from the bearer token issued by the shop API.
// The signature is verified by the shop, never locally.
type SessionClaims struct {
	UserID any `json:"user_id,omitempty"`
	jwt.RegisteredClaims
}

// TokenStore keeps the bearer token supplied by the login collaborator.
type TokenStore interface {
	// Save parses and stores token, returning its claims.
	Save(ctx context.Context, token string) (*SessionClaims, error)

	// AccessToken returns the stored token if present and not expired.
	AccessToken(ctx context.Context) (string, error)

	// Claims returns the claims of the stored token.
	Claims(ctx context.Context) (*SessionClaims, error)

	// Clear removes the stored token.
	Clear(ctx context.Context) error
}

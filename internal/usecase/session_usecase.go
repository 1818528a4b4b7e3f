package usecase

import (
	"context"

	"storefront/internal/domain/service"
)

// SessionUsecase defines the interface for session management operations.
type SessionUsecase interface {
	// Login stores the bearer token issued by the login collaborator
	Login(ctx context.Context, accessToken string) (*service.SessionClaims, error)

	// Logout forgets the stored token. Cart and wishlist are kept
	Logout(ctx context.Context) error

	// Current returns the claims of the stored token, or an error if absent or expired
	Current(ctx context.Context) (*service.SessionClaims, error)
}

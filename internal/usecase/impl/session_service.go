// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	tokens service.TokenStore
	logger *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(tokens service.TokenStore, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		tokens: tokens,
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Login stores the bearer token issued by the login collaborator.
func (srv *sessionService) Login(ctx context.Context, accessToken string) (*service.SessionClaims, error) {
	accessToken = strings.TrimSpace(strings.TrimPrefix(accessToken, "Bearer "))
	if accessToken == "" {
		return nil, domainerrors.ErrSessionTokenInvalid.WithDetails("access_token is required")
	}

	claims, err := srv.tokens.Save(ctx, accessToken)
	if err != nil {
		srv.log(ctx).Warn("Rejected access token", slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Session stored", slog.Any("user_id", claims.UserID))

	return claims, nil
}

// Logout forgets the stored token. Cart and wishlist are kept.
func (srv *sessionService) Logout(ctx context.Context) error {
	if err := srv.tokens.Clear(ctx); err != nil {
		return err
	}
	srv.log(ctx).Info("Session cleared")

	return nil
}

// Current returns the claims of the stored token.
func (srv *sessionService) Current(ctx context.Context) (*service.SessionClaims, error) {
	return srv.tokens.Claims(ctx)
}

package middleware

import (
	"log/slog"

	"storefront/internal/delivery/http/response"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware gates routes that call authenticated shop endpoints.
type AuthMiddleware struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUC usecase.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{sessionUC: sessionUC, logger: logger}
}

// RequireSession rejects the request unless a valid token is stored, and
// exposes its claims to handlers.
func (m *AuthMiddleware) RequireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		claims, err := m.sessionUC.Current(ctx)
		if err != nil {
			deliverycontext.Logger(ctx, m.logger).Debug("Session check failed", slog.Any("error", err))

			return response.HandleAppError(c, err)
		}

		deliverycontext.SetSession(c, claims)

		return next(c)
	}
}

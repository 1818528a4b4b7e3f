package context

import (
	"context"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
)

type sessionKey struct{}

// SetSession stores claims in echo.Context and in the request context.
func SetSession(c echo.Context, claims *service.SessionClaims) {
	c.Set(echoKeySession, claims)
	c.SetRequest(c.Request().WithContext(WithSession(c.Request().Context(), claims)))
}

// GetSession returns the claims set by the auth middleware, or nil.
func GetSession(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(echoKeySession).(*service.SessionClaims)

	return claims
}

// WithSession returns a new context carrying claims.
func WithSession(ctx context.Context, claims *service.SessionClaims) context.Context {
	return context.WithValue(ctx, sessionKey{}, claims)
}

// GetSessionFromContext returns the claims carried by ctx, or nil.
func GetSessionFromContext(ctx context.Context) *service.SessionClaims {
	claims, _ := ctx.Value(sessionKey{}).(*service.SessionClaims)

	return claims
}

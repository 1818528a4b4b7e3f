// Package context carries request-scoped values between the echo layer and
// the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is read from callers and echoed on every response.
const HeaderXRequestID = "X-Request-Id"

// echo.Context keys
const (
	echoKeyRequestID = "request_id"
	echoKeySession   = "session"
)

type scopeKey struct{}

// Scope is what the request id middleware attaches to the request context.
// Outbound shop API calls and published order events read RequestID from it.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
}

// WithScope returns a copy of ctx carrying s.
func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// ScopeFrom returns the scope attached to ctx.
func ScopeFrom(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)

	return s, ok
}

// RequestID returns the id of the request ctx belongs to, or "".
func RequestID(ctx context.Context) string {
	s, _ := ScopeFrom(ctx)

	return s.RequestID
}

// Logger returns the request logger carried by ctx, or fallback.
func Logger(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if s, ok := ScopeFrom(ctx); ok && s.Logger != nil {
		return s.Logger
	}

	return fallback
}

// GetRequestID returns the request id for c. Requests that bypassed the
// middleware get a fresh id, stored so later reads agree.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoKeyRequestID).(string); ok && id != "" {
		return id
	}

	id := uuid.NewString()
	c.Set(echoKeyRequestID, id)

	return id
}

// Attach stores s on both c and its request context.
func Attach(c echo.Context, s Scope) {
	c.Set(echoKeyRequestID, s.RequestID)
	c.SetRequest(c.Request().WithContext(WithScope(c.Request().Context(), s)))
}

package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestScope_EmptyContext(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Empty(t, RequestID(context.Background()))
	assert.Same(t, fallback, Logger(context.Background(), fallback))
}

func TestScope_RoundTrip(t *testing.T) {
	reqLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithScope(context.Background(), Scope{RequestID: "req-1", Logger: reqLogger})

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Same(t, reqLogger, Logger(ctx, nil))
}

func TestScope_NilLoggerFallsBack(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := WithScope(context.Background(), Scope{RequestID: "req-1"})

	assert.Same(t, fallback, Logger(ctx, fallback))
}

func TestGetRequestID_StableWithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)
	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestAttach(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	Attach(c, Scope{RequestID: "req-7"})

	assert.Equal(t, "req-7", GetRequestID(c))
	assert.Equal(t, "req-7", RequestID(c.Request().Context()))
}

func TestSession(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetSession(c))
	assert.Nil(t, GetSessionFromContext(c.Request().Context()))

	claims := &service.SessionClaims{}
	SetSession(c, claims)

	assert.Same(t, claims, GetSession(c))
	assert.Same(t, claims, GetSessionFromContext(c.Request().Context()))
}

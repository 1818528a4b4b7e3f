package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, header string) (*httptest.ResponseRecorder, deliverycontext.Scope, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	if header != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, header)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var (
		scope    deliverycontext.Scope
		fromEcho string
	)
	mw := NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	err := mw.Process(func(c echo.Context) error {
		var ok bool
		scope, ok = deliverycontext.ScopeFrom(c.Request().Context())
		require.True(t, ok)
		fromEcho = deliverycontext.GetRequestID(c)

		return c.NoContent(http.StatusNoContent)
	})(c)
	require.NoError(t, err)

	return rec, scope, fromEcho
}

func TestRequestIDMiddleware_KeepsCallerID(t *testing.T) {
	rec, scope, fromEcho := runRequestID(t, "req-123")

	assert.Equal(t, "req-123", rec.Header().Get(deliverycontext.HeaderXRequestID))
	assert.Equal(t, "req-123", scope.RequestID)
	assert.Equal(t, "req-123", fromEcho)
	assert.NotNil(t, scope.Logger)
}

func TestRequestIDMiddleware_ReplacesBadIDs(t *testing.T) {
	for name, header := range map[string]string{
		"missing":      "",
		"too long":     strings.Repeat("a", maxRequestIDLength+1),
		"space":        "req 123",
		"control char": "req\x01",
		"non ascii":    "réq",
	} {
		t.Run(name, func(t *testing.T) {
			rec, scope, fromEcho := runRequestID(t, header)

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			assert.Len(t, got, 36)
			assert.NotEqual(t, header, got)
			assert.Equal(t, got, scope.RequestID)
			assert.Equal(t, got, fromEcho)
		})
	}
}

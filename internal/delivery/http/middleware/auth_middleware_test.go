package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockusecase "storefront/internal/mocks/usecase"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockusecase.MockSessionUsecase) {
	sessionUC := mockusecase.NewMockSessionUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(sessionUC, logger), sessionUC
}

func TestAuthMiddleware_RequireSession(t *testing.T) {
	m, sessionUC := createTestAuthMiddleware(t)

	claims := &service.SessionClaims{
		UserID: float64(12),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	sessionUC.EXPECT().Current(mock.Anything).Return(claims, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/orders", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *service.SessionClaims
	var fromCtx *service.SessionClaims
	handler := m.RequireSession(func(c echo.Context) error {
		seen = deliverycontext.GetSession(c)
		fromCtx = deliverycontext.GetSessionFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, claims, seen)
	assert.Same(t, claims, fromCtx)
}

func TestAuthMiddleware_RequireSession_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "no session", err: domainerrors.ErrSessionRequired, wantCode: http.StatusUnauthorized, wantBody: "SESSION_REQUIRED"},
		{name: "expired", err: domainerrors.ErrSessionExpired, wantCode: http.StatusUnauthorized, wantBody: "SESSION_EXPIRED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, sessionUC := createTestAuthMiddleware(t)
			sessionUC.EXPECT().Current(mock.Anything).Return(nil, tt.err)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/checkout", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			handler := m.RequireSession(func(c echo.Context) error {
				called = true

				return nil
			})

			require.NoError(t, handler(c))
			assert.False(t, called)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

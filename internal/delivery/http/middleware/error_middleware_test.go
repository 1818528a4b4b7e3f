package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantCode     int
		wantErrCode  string
		wantNoDetail bool
	}{
		{
			name:        "validation error",
			err:         domainerrors.ErrAddressRequired,
			wantCode:    http.StatusBadRequest,
			wantErrCode: "ADDRESS_REQUIRED",
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrCheckoutNotStarted, "advance"),
			wantCode:    http.StatusConflict,
			wantErrCode: "CHECKOUT_NOT_STARTED",
		},
		{
			name:        "echo http error",
			err:         echo.NewHTTPError(http.StatusNotFound, "Not Found"),
			wantCode:    http.StatusNotFound,
			wantErrCode: "HTTP_ERROR",
		},
		{
			name:         "unknown error",
			err:          errors.New("boom"),
			wantCode:     http.StatusInternalServerError,
			wantErrCode:  "INTERNAL_ERROR",
			wantNoDetail: true,
		},
	}

	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantErrCode)
			if tt.wantNoDetail {
				assert.NotContains(t, rec.Body.String(), "boom")
			}
		})
	}
}

func TestErrorMiddleware_SkipsCommittedResponse(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	_ = c.String(http.StatusOK, "done")

	m.HandleHTTPError(errors.New("late"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}

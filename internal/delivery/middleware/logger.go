package middleware

import (
	"log/slog"
	"strings"

	"storefront/config"

	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
)

// NewAccessLogMiddleware returns the echo access log. Successful requests are
// logged at debug level unless env.debug is set; health probes are skipped.
func NewAccessLogMiddleware(logger *slog.Logger, cfg *config.Config) echo.MiddlewareFunc {
	defaultLevel := slog.LevelDebug
	if cfg.Env.Debug {
		defaultLevel = slog.LevelInfo
	}

	return slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     defaultLevel,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
		WithUserAgent:    cfg.Env.Debug,
		Filters: []slogecho.Filter{
			func(c echo.Context) bool {
				return !strings.HasPrefix(c.Request().URL.Path, "/health")
			},
		},
	})
}

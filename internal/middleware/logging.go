package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request with a generated request id.  The
// id is echoed back in X-Request-ID so clients can quote it in reports.
func RequestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			reqID := uuid.NewString()
			c.Set("request_id", reqID)
			c.Response().Header().Set("X-Request-ID", reqID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info().
				Str("request_id", reqID).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Str("remote", c.RealIP()).
				Msg("request")
			return nil
		}
	}
}

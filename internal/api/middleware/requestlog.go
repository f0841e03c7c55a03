package middleware

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthPaths are the liveness and readiness endpoints polled on a tight
// interval in deployment. Logging every successful poll would drown out
// the ingestion and scoring logs, so repeat successes are suppressed.
var healthPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs each request with structured
// fields and propagates an X-Request-ID through the response header and the
// echo context. Health paths log the first success and every failure; a
// success repeating the previous status is suppressed. Health-path
// failures log at Warn so they stand out at the default level.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var (
		mu         sync.Mutex
		lastStatus = make(map[string]int)
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			path := c.Request().URL.Path
			status := c.Response().Status

			fields := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if _, health := healthPaths[path]; health {
				mu.Lock()
				repeat := lastStatus[path] == status
				lastStatus[path] = status
				mu.Unlock()

				switch {
				case status >= http.StatusBadRequest:
					log.Warn("request", fields...)
				case !repeat:
					log.Info("request", fields...)
				}
				return err
			}

			log.Info("request", fields...)
			return err
		}
	}
}

package http

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"bookshelf/backend/internal/logger"
)

// RequestLoggerMiddleware logs HTTP requests using logger.
func RequestLoggerMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status

			result := "ok"
			if status >= 400 {
				result = "failed"
			}
			attrs := []any{
				"module", "http",
				"action", "request",
				"resource", resourceFor(req.URL.Path),
				"result", result,
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", req.Method,
				"path", req.URL.Path,
				"status_code", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_ip", c.RealIP(),
			}

			switch {
			case status >= 500:
				logger.Error("http request", attrs...)
			case status >= 400:
				logger.Warn("http request", attrs...)
			default:
				logger.Debug("http request", attrs...)
			}
			return nil
		}
	}
}

func resourceFor(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/translate"):
		return "translation"
	case path == "/api/books" || path == "/api/regions":
		return "catalog"
	default:
		return "http"
	}
}

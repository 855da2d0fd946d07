package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// EchoMiddleware creates request-logging middleware for Echo
func EchoMiddleware(logger *AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			if raw != "" {
				path = path + "?" + raw
			}

			entry := logger.WithFields(logrus.Fields{
				"method":     c.Request().Method,
				"path":       path,
				"status":     statusCode,
				"latency_ms": latency.Milliseconds(),
				"client_ip":  c.RealIP(),
				"request_id": c.Response().Header().Get(echo.HeaderXRequestID),
			})

			switch {
			case statusCode >= 500:
				entry.Error("request failed")
			case statusCode >= 400:
				entry.Warn("request rejected")
			default:
				entry.Info("request completed")
			}

			return err
		}
	}
}

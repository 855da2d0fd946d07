package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/nusabank/transaction-core/internal/pkg/logger"
)

// PanicRecoveryMiddleware recovers from handler panics, logs the stack trace
// and answers with a generic 500 so internal detail never reaches the client.
func PanicRecoveryMiddleware(log *logger.AppLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					handlePanic(c, r, log)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, log *logger.AppLogger) {
	requestID := c.Response().Header().Get(echo.HeaderXRequestID)

	log.WithFields(logrus.Fields{
		"panic_value": r,
		"stack_trace": string(debug.Stack()),
		"method":      c.Request().Method,
		"path":        c.Request().URL.Path,
		"client_ip":   c.RealIP(),
		"request_id":  requestID,
	}).Error("panic recovered during request processing")

	if !c.Response().Committed {
		payload := map[string]string{"error": "internal server error"}
		if requestID != "" {
			payload["request_id"] = requestID
		}
		if err := c.JSON(http.StatusInternalServerError, payload); err != nil {
			c.String(http.StatusInternalServerError, "internal server error")
		}
	}
}

package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

const msgInternal = "Internal server error"

// ErrorHandler renders every error as {"error": message}. Internal causes are
// logged, never returned.
func ErrorHandler(logger *slog.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := statusOf(err)
		msg := msgInternal

		var appErr *apperr.Error
		var fiberErr *fiber.Error
		switch {
		case errors.As(err, &appErr):
			msg = appErr.Message
		case errors.As(err, &fiberErr):
			msg = fiberErr.Message
		}

		if status >= http.StatusInternalServerError {
			requestID := RequestIDFrom(c)
			logger.Error("request failed",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.String("request_id", requestID),
				slog.Any("error", err),
			)
			if appErr == nil {
				msg = msgInternal
			}
		}

		return c.Status(status).JSON(fiber.Map{"error": msg})
	}
}

func statusOf(err error) int {
	var appErr *apperr.Error
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &appErr):
		return appErr.Kind.Status()
	case errors.As(err, &fiberErr):
		return fiberErr.Code
	default:
		return http.StatusInternalServerError
	}
}

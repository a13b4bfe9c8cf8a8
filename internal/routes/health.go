package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/infra"
)

// RegisterHealthRoutes adds the unauthenticated health endpoint.
func RegisterHealthRoutes(r fiber.Router, d Deps) {
	r.Get("/health", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		health := infra.Check(ctx, d.DB, d.Cache, d.Logger)
		status := http.StatusOK
		if !health.Healthy() {
			status = http.StatusServiceUnavailable
		}
		return c.Status(status).JSON(fiber.Map{
			"message":   "Backend server is running!",
			"status":    health,
			"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
		})
	})
}

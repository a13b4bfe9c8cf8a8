package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/middleware"
	"github.com/orderdesk/orderdesk/internal/transport"
)

// RegisterTransportRoutes wires transport option endpoints onto an authenticated group.
func RegisterTransportRoutes(r fiber.Router, h *transport.Handler) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", middleware.RequireAdmin(), h.Delete)
}

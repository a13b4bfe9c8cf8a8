package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/middleware"
	"github.com/orderdesk/orderdesk/internal/party"
)

// RegisterPartyRoutes wires party endpoints onto an authenticated group.
func RegisterPartyRoutes(r fiber.Router, h *party.Handler) {
	r.Get("/", h.List)
	r.Get("/:id", h.Get)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", middleware.RequireAdmin(), h.Delete)
}

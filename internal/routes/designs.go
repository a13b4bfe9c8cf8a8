package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/design"
	"github.com/orderdesk/orderdesk/internal/middleware"
)

// RegisterDesignRoutes wires design and catalog endpoints onto an authenticated group.
func RegisterDesignRoutes(r fiber.Router, h *design.Handler) {
	r.Get("/item-types", h.ItemTypes)
	r.Get("/colors", h.Colors)
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/:id", h.Update)
	r.Delete("/:id", middleware.RequireAdmin(), h.Delete)
}

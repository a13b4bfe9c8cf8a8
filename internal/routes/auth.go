package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/auth"
	"github.com/orderdesk/orderdesk/internal/middleware"
)

// RegisterAuthRoutes wires authentication endpoints. /login is an alias of /verify-user.
func RegisterAuthRoutes(r fiber.Router, h *auth.Handler, authn, rateLimiter fiber.Handler) {
	group := r.Group("/auth")
	group.Post("/register", h.Register)
	group.Post("/verify-user", rateLimiter, h.Login)
	group.Post("/login", rateLimiter, h.Login)

	group.Get("/profile", authn, h.Profile)
	group.Post("/logout", authn, h.Logout)
	group.Patch("/users/:id/role", authn, middleware.RequireAdmin(), h.UpdateRole)
}

package auth

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
	"github.com/orderdesk/orderdesk/internal/identity"
)

// Handler exposes registration, login, profile and logout endpoints.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

type registerRequest struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type loginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type userResponse struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Phone string        `json:"phone"`
	Role  identity.Role `json:"role"`
}

type profileResponse struct {
	userResponse
	CreatedAt time.Time `json:"created_at"`
}

type sessionResponse struct {
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    userResponse `json:"user"`
}

func toUserResponse(u identity.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Phone: u.Phone, Role: u.Role}
}

// Register creates an account and returns a session.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	session, err := h.svc.Register(c.UserContext(), identity.Registration{Name: req.Name, Phone: req.Phone, Password: req.Password})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(sessionResponse{
		Message: "User registered successfully",
		Token:   session.Token,
		User:    toUserResponse(session.User),
	})
}

// Login validates credentials and returns a session.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	session, err := h.svc.Login(c.UserContext(), identity.Credentials{Phone: req.Phone, Password: req.Password})
	if err != nil {
		return err
	}
	return c.Status(http.StatusOK).JSON(sessionResponse{
		Message: "Login successful",
		Token:   session.Token,
		User:    toUserResponse(session.User),
	})
}

// Profile returns the caller's live account record.
func (h *Handler) Profile(c *fiber.Ctx) error {
	id, ok := CurrentIdentity(c)
	if !ok {
		return apperr.Unauthorized("Access token required")
	}
	user, err := h.svc.Profile(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": profileResponse{userResponse: toUserResponse(user), CreatedAt: user.CreatedAt}})
}

// Logout revokes the caller's token.
func (h *Handler) Logout(c *fiber.Ctx) error {
	claims, ok := ClaimsFrom(c)
	if !ok {
		return apperr.Unauthorized("Access token required")
	}
	if err := h.svc.Logout(c.UserContext(), claims); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}

type roleRequest struct {
	Role string `json:"role"`
}

// UpdateRole changes another user's role. Mounted behind the admin gate.
func (h *Handler) UpdateRole(c *fiber.Ctx) error {
	var req roleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	role, err := identity.ParseRole(req.Role)
	if err != nil {
		return apperr.Validation("Role must be one of: user, admin")
	}
	user, err := h.svc.ChangeRole(c.UserContext(), c.Params("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "User role updated successfully", "user": toUserResponse(user)})
}

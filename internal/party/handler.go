package party

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
	"github.com/orderdesk/orderdesk/internal/auth"
)

// Handler exposes party HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a party HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns all parties.
func (h *Handler) List(c *fiber.Ctx) error {
	parties, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"parties": parties})
}

// Get returns one party.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := partyID(c)
	if err != nil {
		return err
	}
	p, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"party": p})
}

// Create records a party for the authenticated user.
func (h *Handler) Create(c *fiber.Ctx) error {
	who, ok := auth.CurrentIdentity(c)
	if !ok {
		return apperr.Unauthorized("Access token required")
	}
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return apperr.Validation("Invalid request body")
	}
	p, err := h.service.Create(c.UserContext(), in, who.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": "Party created successfully",
		"party":   p,
	})
}

// Update rewrites a party.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := partyID(c)
	if err != nil {
		return err
	}
	var in Input
	if err := c.BodyParser(&in); err != nil {
		return apperr.Validation("Invalid request body")
	}
	p, err := h.service.Update(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message": "Party updated successfully",
		"party":   p,
	})
}

// Delete removes a party.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := partyID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Party deleted successfully"})
}

func partyID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(msgNotFound)
	}
	return int64(id), nil
}

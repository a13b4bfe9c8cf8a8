package transport

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

// Handler exposes transport HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a transport HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type writeRequest struct {
	TransportName string `json:"transport_name"`
	Description   string `json:"description"`
}

// List returns all transport options.
func (h *Handler) List(c *fiber.Ctx) error {
	options, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"transportOptions": options})
}

// Get returns one transport option.
func (h *Handler) Get(c *fiber.Ctx) error {
	id, err := optionID(c)
	if err != nil {
		return err
	}
	o, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"transport": o})
}

// Create adds a transport option.
func (h *Handler) Create(c *fiber.Ctx) error {
	var req writeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	o, err := h.service.Create(c.UserContext(), Input{TransportName: req.TransportName, Description: req.Description})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message":   "Transport option created successfully",
		"transport": o,
	})
}

// Update rewrites a transport option.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := optionID(c)
	if err != nil {
		return err
	}
	var req writeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	o, err := h.service.Update(c.UserContext(), id, Input{TransportName: req.TransportName, Description: req.Description})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"message":   "Transport option updated successfully",
		"transport": o,
	})
}

// Delete removes a transport option.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := optionID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Transport option deleted successfully"})
}

func optionID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(msgNotFound)
	}
	return int64(id), nil
}

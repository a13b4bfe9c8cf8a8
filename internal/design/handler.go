package design

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/orderdesk/orderdesk/internal/apperr"
	"github.com/orderdesk/orderdesk/internal/auth"
)

// Handler exposes design HTTP endpoints.
type Handler struct {
	service *Service
}

// NewHandler builds a design HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type createRequest struct {
	DesignNumber string      `json:"design_number"`
	ItemTypeID   NumericID   `json:"item_type_id"`
	ColorIDs     []NumericID `json:"color_ids"`
}

type updateRequest struct {
	DesignNumber string    `json:"design_number"`
	ItemTypeID   NumericID `json:"item_type_id"`
	ColorID      NumericID `json:"color_id"`
}

// ItemTypes lists item types.
func (h *Handler) ItemTypes(c *fiber.Ctx) error {
	items, err := h.service.ItemTypes(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"itemTypes": items})
}

// Colors lists colors.
func (h *Handler) Colors(c *fiber.Ctx) error {
	colors, err := h.service.Colors(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"colors": colors})
}

// List returns all designs.
func (h *Handler) List(c *fiber.Ctx) error {
	designs, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"designs": designs})
}

// Create stores a design in one or more colors.
func (h *Handler) Create(c *fiber.Ctx) error {
	who, ok := auth.CurrentIdentity(c)
	if !ok {
		return apperr.Unauthorized("Access token required")
	}
	var req createRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	colorIDs := make([]int64, 0, len(req.ColorIDs))
	for _, id := range req.ColorIDs {
		colorIDs = append(colorIDs, int64(id))
	}
	designs, err := h.service.Create(c.UserContext(), NewDesign{
		DesignNumber: req.DesignNumber,
		ItemTypeID:   int64(req.ItemTypeID),
		ColorIDs:     colorIDs,
	}, who.UserID)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"message": CreatedMessage(len(designs)),
		"designs": designs,
	})
}

// Update rewrites a design row.
func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := designID(c)
	if err != nil {
		return err
	}
	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validation("Invalid request body")
	}
	d, err := h.service.Update(c.UserContext(), id, Input{
		DesignNumber: req.DesignNumber,
		ItemTypeID:   int64(req.ItemTypeID),
		ColorID:      int64(req.ColorID),
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Design updated successfully", "design": d})
}

// Delete removes a design row.
func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := designID(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Design deleted successfully"})
}

func designID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, apperr.NotFound(msgNotFound)
	}
	return int64(id), nil
}

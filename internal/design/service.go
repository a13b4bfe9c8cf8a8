package design

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

const (
	msgNotFound         = "Design not found"
	msgUnknownReference = "Unknown item type or color"
)

// NewDesign requests one design number in several colors.
type NewDesign struct {
	DesignNumber string
	ItemTypeID   int64
	ColorIDs     []int64
}

// Service manages designs and exposes the item type and color catalogs.
type Service struct {
	repo Repository
}

// NewService builds a design service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ItemTypes lists the item type catalog.
func (s *Service) ItemTypes(ctx context.Context) ([]ItemType, error) {
	items, err := s.repo.ItemTypes(ctx)
	if err != nil {
		return nil, apperr.Store("Failed to fetch item types", err)
	}
	return items, nil
}

// Colors lists the color catalog.
func (s *Service) Colors(ctx context.Context) ([]Color, error) {
	colors, err := s.repo.Colors(ctx)
	if err != nil {
		return nil, apperr.Store("Failed to fetch colors", err)
	}
	return colors, nil
}

// List returns every design, newest first.
func (s *Service) List(ctx context.Context) ([]Design, error) {
	designs, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("Failed to fetch designs", err)
	}
	return designs, nil
}

// Create stores one design row per requested color. Either every row is stored or none.
func (s *Service) Create(ctx context.Context, req NewDesign, createdBy string) ([]Design, error) {
	if strings.TrimSpace(req.DesignNumber) == "" || req.ItemTypeID <= 0 || len(req.ColorIDs) == 0 {
		return nil, apperr.Validation("Design number, item type, and at least one color are required")
	}
	rows := make([]Input, 0, len(req.ColorIDs))
	for _, colorID := range req.ColorIDs {
		if colorID <= 0 {
			return nil, apperr.Validation(msgUnknownReference)
		}
		rows = append(rows, Input{DesignNumber: req.DesignNumber, ItemTypeID: req.ItemTypeID, ColorID: colorID})
	}
	designs, err := s.repo.CreateMany(ctx, rows, createdBy)
	if err != nil {
		return nil, mapErr(err, "Failed to create design")
	}
	return designs, nil
}

// Update rewrites a single design row.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Design, error) {
	if strings.TrimSpace(in.DesignNumber) == "" || in.ItemTypeID <= 0 || in.ColorID <= 0 {
		return Design{}, apperr.Validation("Design number, item type, and color are required")
	}
	d, err := s.repo.Update(ctx, id, in)
	return d, mapErr(err, "Failed to update design")
}

// Delete removes a design row.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapErr(s.repo.Delete(ctx, id), "Failed to delete design")
}

// CreatedMessage is the confirmation returned after Create.
func CreatedMessage(colors int) string {
	return fmt.Sprintf("Design created successfully with %d color(s)", colors)
}

func mapErr(err error, storeMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apperr.NotFound(msgNotFound)
	case errors.Is(err, ErrUnknownReference):
		return apperr.Validation(msgUnknownReference)
	default:
		return apperr.MapDBError(err, storeMsg)
	}
}

package transport

import (
	"context"
	"errors"
	"strings"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

const (
	msgNameRequired = "Transport name is required"
	msgNameTaken    = "Transport name already exists"
	msgNotFound     = "Transport option not found"
)

// Service manages transport options.
type Service struct {
	repo Repository
}

// NewService builds a transport service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every option, newest first.
func (s *Service) List(ctx context.Context) ([]Option, error) {
	options, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("Failed to fetch transport options", err)
	}
	return options, nil
}

// Get returns one option.
func (s *Service) Get(ctx context.Context, id int64) (Option, error) {
	o, err := s.repo.Get(ctx, id)
	return o, s.mapErr(err, "Failed to fetch transport option")
}

// Create adds an option.
func (s *Service) Create(ctx context.Context, in Input) (Option, error) {
	if strings.TrimSpace(in.TransportName) == "" {
		return Option{}, apperr.Validation(msgNameRequired)
	}
	o, err := s.repo.Create(ctx, in)
	return o, s.mapErr(err, "Failed to create transport option")
}

// Update rewrites an option.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Option, error) {
	if strings.TrimSpace(in.TransportName) == "" {
		return Option{}, apperr.Validation(msgNameRequired)
	}
	o, err := s.repo.Update(ctx, id, in)
	return o, s.mapErr(err, "Failed to update transport option")
}

// Delete removes an option.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.mapErr(s.repo.Delete(ctx, id), "Failed to delete transport option")
}

func (s *Service) mapErr(err error, storeMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apperr.NotFound(msgNotFound)
	case errors.Is(err, ErrNameTaken):
		return apperr.Validation(msgNameTaken)
	default:
		return apperr.MapDBError(err, storeMsg)
	}
}

package party

import (
	"context"
	"errors"
	"strings"

	"github.com/orderdesk/orderdesk/internal/apperr"
)

const msgNotFound = "Party not found"

// Service manages parties.
type Service struct {
	repo Repository
}

// NewService builds a party service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every party, newest first.
func (s *Service) List(ctx context.Context) ([]Party, error) {
	parties, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperr.Store("Failed to fetch parties", err)
	}
	return parties, nil
}

// Get returns one party.
func (s *Service) Get(ctx context.Context, id int64) (Party, error) {
	p, err := s.repo.Get(ctx, id)
	return p, mapErr(err, "Failed to fetch party")
}

// Create records a party on behalf of createdBy.
func (s *Service) Create(ctx context.Context, in Input, createdBy string) (Party, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Party{}, apperr.Validation("Party name is required")
	}
	p, err := s.repo.Create(ctx, in, createdBy)
	return p, mapErr(err, "Failed to create party")
}

// Update rewrites a party.
func (s *Service) Update(ctx context.Context, id int64, in Input) (Party, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Party{}, apperr.Validation("Party name is required")
	}
	p, err := s.repo.Update(ctx, id, in)
	return p, mapErr(err, "Failed to update party")
}

// Delete removes a party.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapErr(s.repo.Delete(ctx, id), "Failed to delete party")
}

func mapErr(err error, storeMsg string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apperr.NotFound(msgNotFound)
	default:
		return apperr.MapDBError(err, storeMsg)
	}
}

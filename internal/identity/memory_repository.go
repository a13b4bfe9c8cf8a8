package identity

import (
	"context"
	"sync"
)

type memoryRepository struct {
	mu      sync.RWMutex
	byPhone map[string]User
	phoneOf map[string]string
}

// NewMemoryRepository builds an in-memory user store for tests and local development.
// Phone uniqueness is checked and recorded under one lock, like a unique index.
func NewMemoryRepository() Repository {
	return &memoryRepository{byPhone: make(map[string]User), phoneOf: make(map[string]string)}
}

func (r *memoryRepository) Create(_ context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byPhone[user.Phone]; exists {
		return ErrPhoneTaken
	}
	r.byPhone[user.Phone] = user
	r.phoneOf[user.ID] = user.Phone
	return nil
}

func (r *memoryRepository) FindByPhone(_ context.Context, phone string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.byPhone[phone]
	if !ok {
		return User{}, ErrNotFound
	}
	return user, nil
}

func (r *memoryRepository) FindByID(_ context.Context, id string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	phone, ok := r.phoneOf[id]
	if !ok {
		return User{}, ErrNotFound
	}
	return r.byPhone[phone], nil
}

func (r *memoryRepository) UpdateRole(_ context.Context, id string, role Role) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	phone, ok := r.phoneOf[id]
	if !ok {
		return User{}, ErrNotFound
	}
	user := r.byPhone[phone]
	user.Role = role
	r.byPhone[phone] = user
	return user, nil
}

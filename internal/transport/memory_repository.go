package transport

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	storage map[int64]Option
}

// NewMemoryRepository constructs an in-memory repository for tests and local development.
func NewMemoryRepository() Repository {
	return &memoryRepository{storage: make(map[int64]Option)}
}

func (r *memoryRepository) List(_ context.Context) ([]Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	options := make([]Option, 0, len(r.storage))
	for _, o := range r.storage {
		options = append(options, o)
	}
	sort.Slice(options, func(i, j int) bool { return options[i].ID > options[j].ID })
	return options, nil
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Option, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.storage[id]
	if !ok {
		return Option{}, ErrNotFound
	}
	return o, nil
}

func (r *memoryRepository) Create(_ context.Context, in Input) (Option, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.nameTaken(in.TransportName, 0) {
		return Option{}, ErrNameTaken
	}
	r.nextID++
	o := Option{ID: r.nextID, TransportName: in.TransportName, Description: in.Description, CreatedAt: time.Now().UTC()}
	r.storage[o.ID] = o
	return o, nil
}

func (r *memoryRepository) Update(_ context.Context, id int64, in Input) (Option, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.storage[id]
	if !ok {
		return Option{}, ErrNotFound
	}
	if r.nameTaken(in.TransportName, id) {
		return Option{}, ErrNameTaken
	}
	o.TransportName = in.TransportName
	o.Description = in.Description
	r.storage[id] = o
	return o, nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.storage[id]; !ok {
		return ErrNotFound
	}
	delete(r.storage, id)
	return nil
}

func (r *memoryRepository) nameTaken(name string, except int64) bool {
	for id, o := range r.storage {
		if id != except && o.TransportName == name {
			return true
		}
	}
	return false
}

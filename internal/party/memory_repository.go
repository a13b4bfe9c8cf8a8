package party

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	storage map[int64]Party
	names   func(ctx context.Context, userID string) string
}

// NewMemoryRepository constructs an in-memory repository. names resolves creator
// ids to display names and may be nil.
func NewMemoryRepository(names func(ctx context.Context, userID string) string) Repository {
	return &memoryRepository{storage: make(map[int64]Party), names: names}
}

func (r *memoryRepository) List(ctx context.Context) ([]Party, error) {
	r.mu.RLock()
	parties := make([]Party, 0, len(r.storage))
	for _, p := range r.storage {
		parties = append(parties, p)
	}
	r.mu.RUnlock()

	sort.Slice(parties, func(i, j int) bool { return parties[i].ID > parties[j].ID })
	for i := range parties {
		r.attachCreator(ctx, &parties[i])
	}
	return parties, nil
}

func (r *memoryRepository) Get(ctx context.Context, id int64) (Party, error) {
	r.mu.RLock()
	p, ok := r.storage[id]
	r.mu.RUnlock()
	if !ok {
		return Party{}, ErrNotFound
	}
	r.attachCreator(ctx, &p)
	return p, nil
}

func (r *memoryRepository) Create(ctx context.Context, in Input, createdBy string) (Party, error) {
	now := time.Now().UTC()
	r.mu.Lock()
	r.nextID++
	p := fromInput(Party{ID: r.nextID, CreatedBy: createdBy, CreatedAt: now}, in, now)
	r.storage[p.ID] = p
	r.mu.Unlock()

	r.attachCreator(ctx, &p)
	return p, nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, in Input) (Party, error) {
	r.mu.Lock()
	p, ok := r.storage[id]
	if !ok {
		r.mu.Unlock()
		return Party{}, ErrNotFound
	}
	p = fromInput(p, in, time.Now().UTC())
	r.storage[id] = p
	r.mu.Unlock()

	r.attachCreator(ctx, &p)
	return p, nil
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

func (r *memoryRepository) attachCreator(ctx context.Context, p *Party) {
	if r.names == nil || p.CreatedBy == "" {
		return
	}
	if name := r.names(ctx, p.CreatedBy); name != "" {
		p.Creator = &Creator{Name: name}
	}
}

func fromInput(p Party, in Input, updatedAt time.Time) Party {
	p.Name = in.Name
	p.Description = in.Description
	p.Address = in.Address
	p.City = in.City
	p.State = in.State
	p.Pincode = in.Pincode
	p.PhoneNumber = in.PhoneNumber
	p.GSTNumber = in.GSTNumber
	p.UpdatedAt = updatedAt
	return p
}

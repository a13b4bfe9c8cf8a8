package design

import (
	"context"
	"sort"
	"sync"
	"time"
)

type memoryRepository struct {
	mu        sync.RWMutex
	nextID    int64
	itemTypes []ItemType
	colors    []Color
	storage   map[int64]Design
	names     func(ctx context.Context, userID string) string
}

// NewMemoryRepository constructs an in-memory repository over fixed item type and
// color catalogs. names resolves creator ids to display names and may be nil.
func NewMemoryRepository(itemTypes []ItemType, colors []Color, names func(ctx context.Context, userID string) string) Repository {
	return &memoryRepository{
		itemTypes: append([]ItemType(nil), itemTypes...),
		colors:    append([]Color(nil), colors...),
		storage:   make(map[int64]Design),
		names:     names,
	}
}

func (r *memoryRepository) ItemTypes(_ context.Context) ([]ItemType, error) {
	items := append(make([]ItemType, 0, len(r.itemTypes)), r.itemTypes...)
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (r *memoryRepository) Colors(_ context.Context) ([]Color, error) {
	colors := append(make([]Color, 0, len(r.colors)), r.colors...)
	sort.Slice(colors, func(i, j int) bool {
		if colors[i].PrimaryColor != colors[j].PrimaryColor {
			return colors[i].PrimaryColor < colors[j].PrimaryColor
		}
		return colors[i].ColorName < colors[j].ColorName
	})
	return colors, nil
}

func (r *memoryRepository) List(ctx context.Context) ([]Design, error) {
	r.mu.RLock()
	designs := make([]Design, 0, len(r.storage))
	for _, d := range r.storage {
		designs = append(designs, d)
	}
	r.mu.RUnlock()

	sort.Slice(designs, func(i, j int) bool { return designs[i].ID > designs[j].ID })
	for i := range designs {
		r.decorate(ctx, &designs[i])
	}
	return designs, nil
}

func (r *memoryRepository) CreateMany(ctx context.Context, rows []Input, createdBy string) ([]Design, error) {
	for _, in := range rows {
		if !r.known(in) {
			return nil, ErrUnknownReference
		}
	}

	now := time.Now().UTC()
	created := make([]Design, 0, len(rows))
	r.mu.Lock()
	for _, in := range rows {
		r.nextID++
		d := Design{
			ID:           r.nextID,
			DesignNumber: in.DesignNumber,
			ItemTypeID:   in.ItemTypeID,
			ColorID:      in.ColorID,
			CreatedBy:    createdBy,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		r.storage[d.ID] = d
		created = append(created, d)
	}
	r.mu.Unlock()

	for i := range created {
		r.decorate(ctx, &created[i])
	}
	return created, nil
}

func (r *memoryRepository) Update(ctx context.Context, id int64, in Input) (Design, error) {
	if !r.known(in) {
		return Design{}, ErrUnknownReference
	}
	r.mu.Lock()
	d, ok := r.storage[id]
	if !ok {
		r.mu.Unlock()
		return Design{}, ErrNotFound
	}
	d.DesignNumber = in.DesignNumber
	d.ItemTypeID = in.ItemTypeID
	d.ColorID = in.ColorID
	d.UpdatedAt = time.Now().UTC()
	r.storage[id] = d
	r.mu.Unlock()

	r.decorate(ctx, &d)
	return d, nil
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

func (r *memoryRepository) known(in Input) bool {
	_, itemOK := r.itemType(in.ItemTypeID)
	_, colorOK := r.color(in.ColorID)
	return itemOK && colorOK
}

func (r *memoryRepository) itemType(id int64) (ItemType, bool) {
	for _, it := range r.itemTypes {
		if it.ID == id {
			return it, true
		}
	}
	return ItemType{}, false
}

func (r *memoryRepository) color(id int64) (Color, bool) {
	for _, c := range r.colors {
		if c.ID == id {
			return c, true
		}
	}
	return Color{}, false
}

// decorate fills the joined labels the way the SQL joins do.
func (r *memoryRepository) decorate(ctx context.Context, d *Design) {
	if it, ok := r.itemType(d.ItemTypeID); ok {
		d.ItemType = &ItemTypeRef{ItemType: it.ItemType}
	}
	if c, ok := r.color(d.ColorID); ok {
		d.Color = &ColorRef{ColorName: c.ColorName, PrimaryColor: c.PrimaryColor}
	}
	if r.names != nil && d.CreatedBy != "" {
		if name := r.names(ctx, d.CreatedBy); name != "" {
			d.Creator = &Creator{Name: name}
		}
	}
}

package repositories

import (
	"context"
	"sync"

	"corretoraBack/internal/models"
)

// PropertyRepository is the in-memory listing store of one session.
// Listings are only ever prepended; index 0 is the newest.
type PropertyRepository struct {
	mu    sync.RWMutex
	items []models.Property
}

func NewPropertyRepository() *PropertyRepository {
	return &PropertyRepository{}
}

func (r *PropertyRepository) Append(ctx context.Context, property models.Property) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items := make([]models.Property, 0, len(r.items)+1)
	items = append(items, property.Clone())
	r.items = append(items, r.items...)
	return nil
}

// GetAll returns a snapshot; mutating it does not touch the store.
func (r *PropertyRepository) GetAll(ctx context.Context) ([]models.Property, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Property, len(r.items))
	for i, p := range r.items {
		out[i] = p.Clone()
	}
	return out, nil
}

func (r *PropertyRepository) Count(ctx context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

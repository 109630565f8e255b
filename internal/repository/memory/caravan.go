package memory

import (
	"context"
	"sync"

	"github.com/khs61254/app-caravan/internal/domain"
)

// CaravanRepository is a map-backed store with upsert-by-id semantics.
// Entities are copied on read and write so callers never alias stored state.
// Listings preserve insertion order so repeated reads over unchanged data
// return the same sequence; stable ranking over ties depends on that.
type CaravanRepository struct {
	mu       sync.RWMutex
	caravans map[string]*domain.Caravan
	order    []string
}

func NewCaravanRepo() *CaravanRepository {
	return &CaravanRepository{caravans: make(map[string]*domain.Caravan)}
}

func cloneCaravan(c *domain.Caravan) *domain.Caravan {
	clone := *c
	clone.Amenities = append([]string(nil), c.Amenities...)
	clone.Photos = append([]string(nil), c.Photos...)
	clone.LikedBy = append([]string(nil), c.LikedBy...)
	return &clone
}

func (r *CaravanRepository) Create(ctx context.Context, c *domain.Caravan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.caravans[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.caravans[c.ID] = cloneCaravan(c)
	return nil
}

func (r *CaravanRepository) Update(ctx context.Context, c *domain.Caravan) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.caravans[c.ID]; !ok {
		return domain.ErrCaravanNotFound
	}
	r.caravans[c.ID] = cloneCaravan(c)
	return nil
}

func (r *CaravanRepository) GetByID(ctx context.Context, id string) (*domain.Caravan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.caravans[id]
	if !ok {
		return nil, domain.ErrCaravanNotFound
	}
	return cloneCaravan(c), nil
}

func (r *CaravanRepository) List(ctx context.Context) ([]*domain.Caravan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res := make([]*domain.Caravan, 0, len(r.order))
	for _, id := range r.order {
		res = append(res, cloneCaravan(r.caravans[id]))
	}
	return res, nil
}

func (r *CaravanRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Caravan
	for _, id := range r.order {
		if c := r.caravans[id]; c.HostID == hostID {
			res = append(res, cloneCaravan(c))
		}
	}
	return res, nil
}

func (r *CaravanRepository) ListLikedBy(ctx context.Context, userID string) ([]*domain.Caravan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Caravan
	for _, id := range r.order {
		c := r.caravans[id]
		for _, likerID := range c.LikedBy {
			if likerID == userID {
				res = append(res, cloneCaravan(c))
				break
			}
		}
	}
	return res, nil
}

func (r *CaravanRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.caravans[id]; !ok {
		return domain.ErrCaravanNotFound
	}
	delete(r.caravans, id)
	for i, stored := range r.order {
		if stored == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

package memory

import (
	"context"
	"sync"
	"time"

	"github.com/khs61254/app-caravan/internal/domain"
)

type ReservationRepository struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

func NewReservationRepo() *ReservationRepository {
	return &ReservationRepository{reservations: make(map[string]*domain.Reservation)}
}

func cloneReservation(res *domain.Reservation) *domain.Reservation {
	clone := *res
	return &clone
}

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reservations[res.ID] = cloneReservation(res)
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.reservations[id]
	if !ok {
		return nil, domain.ErrReservationNotFound
	}
	return cloneReservation(res), nil
}

func (r *ReservationRepository) Conflicts(ctx context.Context, caravanID string, candidate domain.DateRange) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var conflicts []*domain.Reservation
	for _, res := range r.reservations {
		if res.CaravanID != caravanID {
			continue
		}
		if res.Status == domain.ReservationStatusCancelled {
			continue
		}
		if candidate.Overlaps(res.Range) {
			conflicts = append(conflicts, cloneReservation(res))
		}
	}
	return conflicts, nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var res []*domain.Reservation
	for _, reservation := range r.reservations {
		if reservation.GuestID == guestID {
			res = append(res, cloneReservation(reservation))
		}
	}
	return res, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.reservations[id]
	if !ok {
		return domain.ErrReservationNotFound
	}
	res.Status = status
	return nil
}

func (r *ReservationRepository) CompleteFinished(ctx context.Context) ([]*domain.Reservation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	var completed []*domain.Reservation
	for _, res := range r.reservations {
		if res.Status == domain.ReservationStatusConfirmed && res.Range.End.Before(now) {
			res.Status = domain.ReservationStatusCompleted
			completed = append(completed, cloneReservation(res))
		}
	}
	return completed, nil
}

func (r *ReservationRepository) CountCompleted(ctx context.Context, caravanIDs []string) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]struct{}, len(caravanIDs))
	for _, id := range caravanIDs {
		wanted[id] = struct{}{}
	}

	counts := make(map[string]int)
	for _, res := range r.reservations {
		if res.Status != domain.ReservationStatusCompleted {
			continue
		}
		if _, ok := wanted[res.CaravanID]; !ok {
			continue
		}
		counts[res.CaravanID]++
	}
	return counts, nil
}

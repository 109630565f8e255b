package ports

import (
	"context"

	"github.com/khs61254/app-caravan/internal/domain"
)

type ReservationRepo interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	// Conflicts returns every stored reservation for the caravan whose
	// half-open range overlaps the candidate. Cancelled reservations do
	// not block and are skipped.
	Conflicts(ctx context.Context, caravanID string, r domain.DateRange) ([]*domain.Reservation, error)
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error
	// CompleteFinished moves confirmed reservations whose end date has
	// passed to completed and returns them.
	CompleteFinished(ctx context.Context) ([]*domain.Reservation, error)
	// CountCompleted returns the number of completed reservations per
	// caravan id. Caravans without completed reservations are absent.
	CountCompleted(ctx context.Context, caravanIDs []string) (map[string]int, error)
}

package ports

import (
	"context"

	"github.com/khs61254/app-caravan/internal/domain"
)

type ReservationNotifier interface {
	NotifyReservationCreated(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation)
	NotifyReservationConfirmed(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation)
	NotifyReservationCancelled(ctx context.Context, guest *domain.User, caravan *domain.Caravan, res *domain.Reservation)
}

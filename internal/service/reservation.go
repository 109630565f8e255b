package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/khs61254/app-caravan/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// caravanLocks hands out one mutex per caravan id so that the
// conflict-check-then-write sequence of admission is a critical section.
// Without it two concurrent requests could both pass the conflict check
// and both commit overlapping reservations.
type caravanLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newCaravanLocks() *caravanLocks {
	return &caravanLocks{locks: make(map[string]*sync.Mutex)}
}

func (l *caravanLocks) get(caravanID string) *sync.Mutex {
	l.mu.Lock()
	defer l.mu.Unlock()

	lock, ok := l.locks[caravanID]
	if !ok {
		lock = &sync.Mutex{}
		l.locks[caravanID] = lock
	}
	return lock
}

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	caravanRepo     ports.CaravanRepo
	userRepo        ports.UserRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
	admission       *caravanLocks
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	caravanRepo ports.CaravanRepo,
	userRepo ports.UserRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		caravanRepo:     caravanRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		logger:          logger,
		admission:       newCaravanLocks(),
	}
}

// Create admits or rejects a candidate reservation. Nothing is persisted
// before the final save, so a failure at any step leaves no state change.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	guest, err := s.userRepo.GetByID(ctx, input.GuestID)
	if err != nil {
		return nil, fmt.Errorf("check guest: %w", err)
	}

	caravan, err := s.caravanRepo.GetByID(ctx, input.CaravanID)
	if err != nil {
		return nil, fmt.Errorf("check caravan: %w", err)
	}

	if err = input.Range.Validate(time.Now()); err != nil {
		return nil, err
	}

	lock := s.admission.get(input.CaravanID)
	lock.Lock()
	defer lock.Unlock()

	conflicts, err := s.reservationRepo.Conflicts(ctx, input.CaravanID, input.Range)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	if len(conflicts) > 0 {
		return nil, fmt.Errorf("%w: caravan is already reserved for the selected dates", domain.ErrValidation)
	}

	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    input.GuestID,
		CaravanID:  input.CaravanID,
		Range:      input.Range,
		Status:     domain.ReservationStatusPending,
		TotalPrice: input.Range.PriceFor(caravan.DailyRate),
		CreatedAt:  time.Now().UTC(),
	}
	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.String("reservation_id", reservation.ID),
		logger.String("caravan_id", input.CaravanID),
		logger.String("guest_id", input.GuestID),
		logger.Any("total_price", reservation.TotalPrice),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), guest, caravan, reservation)

	return reservation, nil
}

// Confirm transitions a pending reservation to confirmed. Only the host of
// the reserved caravan may confirm.
func (s *ReservationService) Confirm(ctx context.Context, reservationID, userID string) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}

	caravan, err := s.caravanRepo.GetByID(ctx, reservation.CaravanID)
	if err != nil {
		return fmt.Errorf("get caravan: %w", err)
	}
	if caravan.HostID != userID {
		return domain.ErrForbidden
	}

	if reservation.Status != domain.ReservationStatusPending {
		return domain.ErrReservationNotPending
	}

	if err = s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationStatusConfirmed); err != nil {
		return fmt.Errorf("confirm reservation: %w", err)
	}

	s.logger.Info("reservation confirmed",
		logger.String("reservation_id", reservationID),
		logger.String("host_id", userID),
	)

	guest, err := s.userRepo.GetByID(ctx, reservation.GuestID)
	if err != nil {
		s.logger.Error("failed to get guest for notification",
			logger.String("guest_id", reservation.GuestID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservationConfirmed(context.WithoutCancel(ctx), guest, caravan, reservation)

	return nil
}

// Cancel transitions a pending or confirmed reservation to cancelled. Only
// the guest who owns the reservation may cancel it.
func (s *ReservationService) Cancel(ctx context.Context, reservationID, userID string) error {
	reservation, err := s.reservationRepo.GetByID(ctx, reservationID)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if reservation.GuestID != userID {
		return domain.ErrForbidden
	}

	switch reservation.Status {
	case domain.ReservationStatusPending, domain.ReservationStatusConfirmed:
	default:
		return domain.ErrReservationNotActive
	}

	if err = s.reservationRepo.UpdateStatus(ctx, reservationID, domain.ReservationStatusCancelled); err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}

	s.logger.Info("reservation cancelled",
		logger.String("reservation_id", reservationID),
		logger.String("guest_id", userID),
	)

	caravan, err := s.caravanRepo.GetByID(ctx, reservation.CaravanID)
	if err != nil {
		s.logger.Error("failed to get caravan for notification",
			logger.String("caravan_id", reservation.CaravanID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	guest, err := s.userRepo.GetByID(ctx, reservation.GuestID)
	if err != nil {
		s.logger.Error("failed to get guest for notification",
			logger.String("guest_id", reservation.GuestID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), guest, caravan, reservation)

	return nil
}

// CompleteFinished moves confirmed reservations whose end date has passed
// to completed. Completed reservations feed the transaction counts used by
// listing ranking.
func (s *ReservationService) CompleteFinished(ctx context.Context) ([]*domain.Reservation, error) {
	completed, err := s.reservationRepo.CompleteFinished(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("reservations completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}

func (s *ReservationService) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	return s.reservationRepo.ListByGuest(ctx, guestID)
}

package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/khs61254/app-caravan/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type CaravanService struct {
	caravanRepo     ports.CaravanRepo
	userRepo        ports.UserRepo
	reservationRepo ports.ReservationRepo
	oracle          ports.DistanceOracle
	logger          logger.Logger
}

func NewCaravanService(
	caravanRepo ports.CaravanRepo,
	userRepo ports.UserRepo,
	reservationRepo ports.ReservationRepo,
	oracle ports.DistanceOracle,
	logger logger.Logger,
) *CaravanService {
	return &CaravanService{
		caravanRepo:     caravanRepo,
		userRepo:        userRepo,
		reservationRepo: reservationRepo,
		oracle:          oracle,
		logger:          logger,
	}
}

// Rank fetches all caravans, enriches them with completed-transaction
// counts and (when an origin is given) distances from a single batched
// oracle call, then sorts by the requested key. Sorting is stable so that
// repeated calls over unchanged data yield identical order.
func (s *CaravanService) Rank(ctx context.Context, sortBy domain.SortKey, origin *domain.Coordinate) ([]domain.RankedCaravan, error) {
	caravans, err := s.caravanRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list caravans: %w", err)
	}

	ids := make([]string, len(caravans))
	targets := make([]domain.Coordinate, len(caravans))
	for i, c := range caravans {
		ids[i] = c.ID
		targets[i] = c.Location
	}

	counts, err := s.reservationRepo.CountCompleted(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count completed reservations: %w", err)
	}

	var distances []*float64
	if origin != nil {
		distances = s.oracle.Distances(ctx, *origin, targets)
	}

	ranked := make([]domain.RankedCaravan, len(caravans))
	for i, c := range caravans {
		ranked[i] = domain.RankedCaravan{
			Caravan:          *c,
			TransactionCount: counts[c.ID],
		}
		if distances != nil {
			ranked[i].Distance = distances[i]
		}
	}

	switch sortBy {
	case domain.SortByPrice:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].DailyRate < ranked[j].DailyRate
		})
	case domain.SortByLikes:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].Likes() > ranked[j].Likes()
		})
	case domain.SortByDistance:
		if origin == nil {
			// No origin to measure from: hand back the enriched list
			// unsorted. The HTTP boundary rejects this combination
			// before the pipeline; internal callers get a usable list.
			return ranked, nil
		}
		// Unknown distances sort after all known ones.
		sort.SliceStable(ranked, func(i, j int) bool {
			di, dj := ranked[i].Distance, ranked[j].Distance
			if di == nil {
				return false
			}
			if dj == nil {
				return true
			}
			return *di < *dj
		})
	}

	return ranked, nil
}

func (s *CaravanService) Create(ctx context.Context, input domain.CreateCaravanInput) (*domain.Caravan, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.DailyRate <= 0 {
		return nil, fmt.Errorf("%w: daily_rate must be positive", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	if _, err := s.userRepo.GetByID(ctx, input.HostID); err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	caravan := &domain.Caravan{
		ID:        uuid.New().String(),
		Name:      input.Name,
		HostID:    input.HostID,
		Capacity:  input.Capacity,
		Amenities: input.Amenities,
		Photos:    input.Photos,
		Location:  input.Location,
		Status:    domain.CaravanStatusAvailable,
		DailyRate: input.DailyRate,
		LikedBy:   []string{},
	}

	if err := s.caravanRepo.Create(ctx, caravan); err != nil {
		return nil, fmt.Errorf("create caravan: %w", err)
	}

	s.logger.Info("caravan created",
		logger.String("caravan_id", caravan.ID),
		logger.String("host_id", caravan.HostID),
	)

	return caravan, nil
}

// GetDetails returns the caravan, its host, and the count of completed
// reservations across all of the host's caravans.
func (s *CaravanService) GetDetails(ctx context.Context, caravanID string) (*domain.CaravanDetails, error) {
	caravan, err := s.caravanRepo.GetByID(ctx, caravanID)
	if err != nil {
		return nil, fmt.Errorf("get caravan: %w", err)
	}

	host, err := s.userRepo.GetByID(ctx, caravan.HostID)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", err)
	}

	hostCaravans, err := s.caravanRepo.ListByHost(ctx, host.ID)
	if err != nil {
		return nil, fmt.Errorf("list host caravans: %w", err)
	}

	ids := make([]string, len(hostCaravans))
	for i, c := range hostCaravans {
		ids[i] = c.ID
	}

	counts, err := s.reservationRepo.CountCompleted(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("count completed reservations: %w", err)
	}

	transactions := 0
	for _, n := range counts {
		transactions += n
	}

	return &domain.CaravanDetails{
		Caravan:      *caravan,
		Host:         *host,
		Transactions: transactions,
	}, nil
}

// ToggleLike adds the user to the caravan's likedBy set, or removes them
// if already present, and returns the updated caravan.
func (s *CaravanService) ToggleLike(ctx context.Context, caravanID, userID string) (*domain.Caravan, error) {
	caravan, err := s.caravanRepo.GetByID(ctx, caravanID)
	if err != nil {
		return nil, fmt.Errorf("get caravan: %w", err)
	}

	liked := false
	for i, id := range caravan.LikedBy {
		if id == userID {
			caravan.LikedBy = append(caravan.LikedBy[:i], caravan.LikedBy[i+1:]...)
			liked = true
			break
		}
	}
	if !liked {
		caravan.LikedBy = append(caravan.LikedBy, userID)
	}

	if err = s.caravanRepo.Update(ctx, caravan); err != nil {
		return nil, fmt.Errorf("update caravan: %w", err)
	}

	return caravan, nil
}

func (s *CaravanService) Delete(ctx context.Context, caravanID, userID string) error {
	caravan, err := s.caravanRepo.GetByID(ctx, caravanID)
	if err != nil {
		return fmt.Errorf("get caravan: %w", err)
	}

	if caravan.HostID != userID {
		return domain.ErrForbidden
	}

	if err = s.caravanRepo.Delete(ctx, caravanID); err != nil {
		return fmt.Errorf("delete caravan: %w", err)
	}

	s.logger.Info("caravan deleted",
		logger.String("caravan_id", caravanID),
		logger.String("host_id", userID),
	)

	return nil
}

func (s *CaravanService) ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error) {
	return s.caravanRepo.ListByHost(ctx, hostID)
}

func (s *CaravanService) ListLikedBy(ctx context.Context, userID string) ([]*domain.Caravan, error) {
	return s.caravanRepo.ListLikedBy(ctx, userID)
}

package ports

import (
	"context"

	"github.com/khs61254/app-caravan/internal/domain"
)

// DistanceOracle computes distances from one origin to many targets in a
// single batch. The result always has the same length and order as targets;
// a nil entry means the distance is unknown. The oracle never fails the
// caller: upstream errors degrade to all-nil distances.
type DistanceOracle interface {
	Distances(ctx context.Context, origin domain.Coordinate, targets []domain.Coordinate) []*float64
}

package ports

import (
	"context"

	"github.com/khs61254/app-caravan/internal/domain"
)

type CaravanRepo interface {
	Create(ctx context.Context, c *domain.Caravan) error
	Update(ctx context.Context, c *domain.Caravan) error
	GetByID(ctx context.Context, id string) (*domain.Caravan, error)
	List(ctx context.Context) ([]*domain.Caravan, error)
	ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error)
	ListLikedBy(ctx context.Context, userID string) ([]*domain.Caravan, error)
	Delete(ctx context.Context, id string) error
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type CaravanRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCaravanRepo(db *dbpg.DB) *CaravanRepository {
	return &CaravanRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const caravanColumns = `id, name, host_id, capacity, amenities, photos, lat, lng, status, daily_rate, liked_by`

func (r *CaravanRepository) Create(ctx context.Context, c *domain.Caravan) error {
	query := `INSERT INTO caravans (` + caravanColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Name, c.HostID, c.Capacity,
		pq.Array(c.Amenities), pq.Array(c.Photos),
		c.Location.Lat, c.Location.Lng,
		c.Status, c.DailyRate, pq.Array(c.LikedBy),
	)
	if err != nil {
		return fmt.Errorf("insert caravan: %w", err)
	}
	return nil
}

func (r *CaravanRepository) Update(ctx context.Context, c *domain.Caravan) error {
	query := `UPDATE caravans
			  SET name=$2, capacity=$3, amenities=$4, photos=$5,
			      lat=$6, lng=$7, status=$8, daily_rate=$9, liked_by=$10
			  WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		c.ID, c.Name, c.Capacity,
		pq.Array(c.Amenities), pq.Array(c.Photos),
		c.Location.Lat, c.Location.Lng,
		c.Status, c.DailyRate, pq.Array(c.LikedBy),
	)
	if err != nil {
		return fmt.Errorf("update caravan: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("caravan rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCaravanNotFound
	}
	return nil
}

func (r *CaravanRepository) GetByID(ctx context.Context, id string) (*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get caravan: %w", err)
	}

	c, err := scanCaravanRow(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCaravanNotFound
		}
		return nil, fmt.Errorf("scan caravan: %w", err)
	}
	return c, nil
}

func (r *CaravanRepository) List(ctx context.Context) ([]*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  ORDER BY name`
	return r.list(ctx, query)
}

func (r *CaravanRepository) ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  WHERE host_id=$1
			  ORDER BY name`
	return r.list(ctx, query, hostID)
}

func (r *CaravanRepository) ListLikedBy(ctx context.Context, userID string) ([]*domain.Caravan, error) {
	query := `SELECT ` + caravanColumns + `
			  FROM caravans
			  WHERE $1 = ANY(liked_by)
			  ORDER BY name`
	return r.list(ctx, query, userID)
}

func (r *CaravanRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM caravans WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete caravan: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("caravan rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrCaravanNotFound
	}
	return nil
}

func (r *CaravanRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Caravan, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list caravans: %w", err)
	}
	defer rows.Close()

	var res []*domain.Caravan
	for rows.Next() {
		c, err := scanCaravanRow(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan caravan: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func scanCaravanRow(scan func(...any) error) (*domain.Caravan, error) {
	var c domain.Caravan
	err := scan(
		&c.ID, &c.Name, &c.HostID, &c.Capacity,
		pq.Array(&c.Amenities), pq.Array(&c.Photos),
		&c.Location.Lat, &c.Location.Lng,
		&c.Status, &c.DailyRate, pq.Array(&c.LikedBy),
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

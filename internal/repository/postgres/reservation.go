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

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `id, guest_id, caravan_id, start_date, end_date, status, total_price, created_at`

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (` + reservationColumns + `)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query,
		res.ID, res.GuestID, res.CaravanID,
		res.Range.Start, res.Range.End,
		res.Status, res.TotalPrice, res.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE id=$1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var res domain.Reservation
	if err = scanReservation(row.Scan, &res); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}
	return &res, nil
}

// Conflicts selects reservations on the caravan whose half-open range
// overlaps the candidate. Touching endpoints do not conflict; cancelled
// reservations are skipped.
func (r *ReservationRepository) Conflicts(ctx context.Context, caravanID string, candidate domain.DateRange) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE caravan_id = $1
			    AND status = ANY($2)
			    AND start_date < $4
			    AND end_date > $3`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		caravanID, pq.Array(domain.BlockingStatuses),
		candidate.Start, candidate.End,
	)
	if err != nil {
		return nil, fmt.Errorf("find conflicts: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error) {
	query := `SELECT ` + reservationColumns + `
			  FROM reservations
			  WHERE guest_id = $1
			  ORDER BY created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, guestID)
	if err != nil {
		return nil, fmt.Errorf("list reservations by guest: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) error {
	query := `UPDATE reservations SET status=$2 WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update reservation status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) CompleteFinished(ctx context.Context) ([]*domain.Reservation, error) {
	query := `UPDATE reservations
			  SET status = $2
			  WHERE status = $1 AND end_date < NOW()
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		domain.ReservationStatusConfirmed, domain.ReservationStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("complete finished: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *ReservationRepository) CountCompleted(ctx context.Context, caravanIDs []string) (map[string]int, error) {
	query := `SELECT caravan_id, COUNT(*)
			  FROM reservations
			  WHERE caravan_id = ANY($1) AND status = $2
			  GROUP BY caravan_id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query,
		pq.Array(caravanIDs), domain.ReservationStatusCompleted,
	)
	if err != nil {
		return nil, fmt.Errorf("count completed: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var caravanID string
		var n int
		if err = rows.Scan(&caravanID, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[caravanID] = n
	}

	return counts, rows.Err()
}

func scanReservation(scan func(...any) error, res *domain.Reservation) error {
	return scan(
		&res.ID, &res.GuestID, &res.CaravanID,
		&res.Range.Start, &res.Range.End,
		&res.Status, &res.TotalPrice, &res.CreatedAt,
	)
}

func collectReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	var res []*domain.Reservation
	for rows.Next() {
		var reservation domain.Reservation
		if err := scanReservation(rows.Scan, &reservation); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &reservation)
	}
	return res, rows.Err()
}

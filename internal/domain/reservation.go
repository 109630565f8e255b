package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusCompleted ReservationStatus = "completed"
)

// BlockingStatuses are the statuses that keep a date range occupied.
// A cancelled reservation frees its slot.
var BlockingStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCompleted,
}

type Reservation struct {
	ID         string            `json:"id"`
	GuestID    string            `json:"guest_id"`
	CaravanID  string            `json:"caravan_id"`
	Range      DateRange         `json:"range"`
	Status     ReservationStatus `json:"status"`
	TotalPrice float64           `json:"total_price"`
	CreatedAt  time.Time         `json:"created_at"`
}

type CreateReservationInput struct {
	GuestID   string
	CaravanID string
	Range     DateRange
}

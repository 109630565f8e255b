package dto

import (
	"time"

	"github.com/khs61254/app-caravan/internal/domain"
)

type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}

type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type CaravanResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	HostID    string        `json:"host_id"`
	Capacity  int           `json:"capacity"`
	Amenities []string      `json:"amenities"`
	Photos    []string      `json:"photos"`
	Location  LocationParam `json:"location"`
	Status    string        `json:"status"`
	DailyRate float64       `json:"daily_rate"`
	Likes     int           `json:"likes"`
}

type RankedCaravanResponse struct {
	CaravanResponse
	Distance         *float64 `json:"distance"`
	TransactionCount int      `json:"transaction_count"`
}

type CaravanDetailsResponse struct {
	Caravan      CaravanResponse `json:"caravan"`
	Host         UserResponse    `json:"host"`
	Transactions int             `json:"transactions"`
}

type ReservationResponse struct {
	ID         string  `json:"id"`
	GuestID    string  `json:"guest_id"`
	CaravanID  string  `json:"caravan_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	Status     string  `json:"status"`
	TotalPrice float64 `json:"total_price"`
	CreatedAt  string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToCaravanResponse(c *domain.Caravan) CaravanResponse {
	return CaravanResponse{
		ID:        c.ID,
		Name:      c.Name,
		HostID:    c.HostID,
		Capacity:  c.Capacity,
		Amenities: c.Amenities,
		Photos:    c.Photos,
		Location:  LocationParam{Lat: c.Location.Lat, Lng: c.Location.Lng},
		Status:    string(c.Status),
		DailyRate: c.DailyRate,
		Likes:     c.Likes(),
	}
}

func ToRankedCaravanResponse(rc *domain.RankedCaravan) RankedCaravanResponse {
	return RankedCaravanResponse{
		CaravanResponse:  ToCaravanResponse(&rc.Caravan),
		Distance:         rc.Distance,
		TransactionCount: rc.TransactionCount,
	}
}

func ToCaravanDetailsResponse(d *domain.CaravanDetails) CaravanDetailsResponse {
	return CaravanDetailsResponse{
		Caravan:      ToCaravanResponse(&d.Caravan),
		Host:         ToUserResponse(&d.Host),
		Transactions: d.Transactions,
	}
}

func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:         r.ID,
		GuestID:    r.GuestID,
		CaravanID:  r.CaravanID,
		StartDate:  r.Range.Start.Format(time.RFC3339),
		EndDate:    r.Range.End.Format(time.RFC3339),
		Status:     string(r.Status),
		TotalPrice: r.TotalPrice,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

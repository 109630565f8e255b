package dto

type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type CreateCaravanRequest struct {
	Name      string        `json:"name" binding:"required"`
	Capacity  int           `json:"capacity" binding:"required,gt=0"`
	DailyRate float64       `json:"daily_rate" binding:"required,gt=0"`
	Amenities []string      `json:"amenities"`
	Photos    []string      `json:"photos"`
	Location  LocationParam `json:"location" binding:"required"`
}

type LocationParam struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type CreateReservationRequest struct {
	CaravanID string `json:"caravan_id" binding:"required,uuid"`
	StartDate string `json:"start_date" binding:"required"`
	EndDate   string `json:"end_date" binding:"required"`
}

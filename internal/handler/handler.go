package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/khs61254/app-caravan/internal/handler/dto"
	"github.com/khs61254/app-caravan/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type CaravanSvc interface {
	Rank(ctx context.Context, sortBy domain.SortKey, origin *domain.Coordinate) ([]domain.RankedCaravan, error)
	Create(ctx context.Context, input domain.CreateCaravanInput) (*domain.Caravan, error)
	GetDetails(ctx context.Context, caravanID string) (*domain.CaravanDetails, error)
	ToggleLike(ctx context.Context, caravanID, userID string) (*domain.Caravan, error)
	Delete(ctx context.Context, caravanID, userID string) error
	ListByHost(ctx context.Context, hostID string) ([]*domain.Caravan, error)
	ListLikedBy(ctx context.Context, userID string) ([]*domain.Caravan, error)
}

type ReservationSvc interface {
	Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error)
	Confirm(ctx context.Context, reservationID, userID string) error
	Cancel(ctx context.Context, reservationID, userID string) error
	ListByGuest(ctx context.Context, guestID string) ([]*domain.Reservation, error)
}

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type Handler struct {
	caravanService     CaravanSvc
	reservationService ReservationSvc
	userService        UserSvc
}

func NewHandler(caravanService CaravanSvc, reservationService ReservationSvc, userService UserSvc) *Handler {
	return &Handler{
		caravanService:     caravanService,
		reservationService: reservationService,
		userService:        userService,
	}
}

// Auth

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterInput{
		Username:       req.Username,
		Password:       req.Password,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Users

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetMe(c *ginext.Context) {
	user, err := h.userService.GetByID(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// Caravans

// ListCaravans validates sort parameters at the boundary: an unknown
// sortBy or a distance sort without a numeric origin is a 400, never a
// silent fallback.
func (h *Handler) ListCaravans(c *ginext.Context) {
	sortBy := domain.SortKey(c.DefaultQuery("sortBy", string(domain.SortByDistance)))
	if !sortBy.Valid() {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid sortBy parameter, must be one of: distance, likes, price",
		})
		return
	}

	var origin *domain.Coordinate
	if sortBy == domain.SortByDistance {
		lat, lng := c.Query("lat"), c.Query("lng")
		if lat == "" || lng == "" {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "lat and lng query parameters are required for distance sorting",
			})
			return
		}

		latVal, latErr := strconv.ParseFloat(lat, 64)
		lngVal, lngErr := strconv.ParseFloat(lng, 64)
		if latErr != nil || lngErr != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid lat or lng parameters, must be numbers",
			})
			return
		}
		origin = &domain.Coordinate{Lat: latVal, Lng: lngVal}
	}

	ranked, err := h.caravanService.Rank(c.Request.Context(), sortBy, origin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RankedCaravanResponse, 0, len(ranked))
	for i := range ranked {
		resp = append(resp, dto.ToRankedCaravanResponse(&ranked[i]))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateCaravan(c *ginext.Context) {
	var req dto.CreateCaravanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	caravan, err := h.caravanService.Create(c.Request.Context(), domain.CreateCaravanInput{
		Name:      req.Name,
		HostID:    c.GetString(middleware.UserIDKey),
		Capacity:  req.Capacity,
		Amenities: req.Amenities,
		Photos:    req.Photos,
		Location:  domain.Coordinate{Lat: req.Location.Lat, Lng: req.Location.Lng},
		DailyRate: req.DailyRate,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCaravanResponse(caravan))
}

func (h *Handler) GetCaravan(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid caravan id"})
		return
	}

	details, err := h.caravanService.GetDetails(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCaravanDetailsResponse(details))
}

func (h *Handler) DeleteCaravan(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid caravan id"})
		return
	}

	if err := h.caravanService.Delete(c.Request.Context(), id, c.GetString(middleware.UserIDKey)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) ToggleLike(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid caravan id"})
		return
	}

	caravan, err := h.caravanService.ToggleLike(c.Request.Context(), id, c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCaravanResponse(caravan))
}

func (h *Handler) ListMyCaravans(c *ginext.Context) {
	caravans, err := h.caravanService.ListByHost(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CaravanResponse, 0, len(caravans))
	for _, caravan := range caravans {
		resp = append(resp, dto.ToCaravanResponse(caravan))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListLikedCaravans(c *ginext.Context) {
	caravans, err := h.caravanService.ListLikedBy(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.CaravanResponse, 0, len(caravans))
	for _, caravan := range caravans {
		resp = append(resp, dto.ToCaravanResponse(caravan))
	}

	c.JSON(http.StatusOK, resp)
}

// Reservations

func (h *Handler) CreateReservation(c *ginext.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	start, err := time.Parse(time.RFC3339, req.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid start_date format, expected RFC3339",
		})
		return
	}
	end, err := time.Parse(time.RFC3339, req.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid end_date format, expected RFC3339",
		})
		return
	}

	reservation, err := h.reservationService.Create(c.Request.Context(), domain.CreateReservationInput{
		GuestID:   c.GetString(middleware.UserIDKey),
		CaravanID: req.CaravanID,
		Range:     domain.DateRange{Start: start, End: end},
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(reservation))
}

func (h *Handler) ListMyReservations(c *ginext.Context) {
	reservations, err := h.reservationService.ListByGuest(c.Request.Context(), c.GetString(middleware.UserIDKey))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		resp = append(resp, dto.ToReservationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ConfirmReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Confirm(c.Request.Context(), id, c.GetString(middleware.UserIDKey)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "confirmed"})
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid reservation id"})
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id, c.GetString(middleware.UserIDKey)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

// handleError keeps "entity not found" and business-rule violations in
// distinct status classes so a client can tell a bad id from a
// legitimate scheduling conflict.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrCaravanNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationNotPending),
		errors.Is(err, domain.ErrReservationNotActive):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrUsernameTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

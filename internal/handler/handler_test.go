package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/khs61254/app-caravan/internal/handler/dto"
	hmocks "github.com/khs61254/app-caravan/internal/handler/mocks"
	"github.com/khs61254/app-caravan/internal/middleware"
)

const testUserID = "test-user-id"

func setupRouter(t *testing.T) (*hmocks.MockCaravanSvc, *hmocks.MockReservationSvc, *hmocks.MockUserSvc, http.Handler) {
	t.Helper()
	caravanSvc := hmocks.NewMockCaravanSvc(t)
	reservationSvc := hmocks.NewMockReservationSvc(t)
	userSvc := hmocks.NewMockUserSvc(t)

	h := NewHandler(caravanSvc, reservationSvc, userSvc)

	// stand-in for the auth middleware
	fakeAuth := func(c *ginext.Context) {
		c.Set(middleware.UserIDKey, testUserID)
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.POST("/auth/register", h.Register)
		api.POST("/auth/login", h.Login)
		api.GET("/users", h.ListUsers)
		api.GET("/caravans", h.ListCaravans)
		api.GET("/caravans/:id", h.GetCaravan)

		protected := api.Group("")
		protected.Use(fakeAuth)
		{
			protected.GET("/users/me", h.GetMe)
			protected.GET("/users/me/caravans", h.ListMyCaravans)
			protected.GET("/users/me/likes", h.ListLikedCaravans)
			protected.POST("/caravans", h.CreateCaravan)
			protected.DELETE("/caravans/:id", h.DeleteCaravan)
			protected.POST("/caravans/:id/like", h.ToggleLike)
			protected.POST("/reservations", h.CreateReservation)
			protected.GET("/reservations", h.ListMyReservations)
			protected.POST("/reservations/:id/confirm", h.ConfirmReservation)
			protected.POST("/reservations/:id/cancel", h.CancelReservation)
		}
	}

	return caravanSvc, reservationSvc, userSvc, r
}

// --- Auth ---

func TestHandler_Register_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: uuid.New().String(), Username: "alice", CreatedAt: time.Now()}
	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(user, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_Register_BadRequest(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body := []byte(`{"username":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_UsernameTaken(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domain.ErrUsernameTaken)

	body, _ := json.Marshal(dto.RegisterRequest{Username: "alice", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	user := &domain.User{ID: "u1", Username: "alice", CreatedAt: time.Now()}
	userSvc.EXPECT().Login(mock.Anything, "alice", "secret123").Return("signed-token", user, nil)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "secret123"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.Token)
	assert.Equal(t, "alice", resp.User.Username)
}

func TestHandler_Login_BadCredentials(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, "alice", "wrong").Return("", nil, domain.ErrUnauthorized)

	body, _ := json.Marshal(dto.LoginRequest{Username: "alice", Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// --- Users ---

func TestHandler_ListUsers_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: "u1", Username: "alice"},
		{ID: "u2", Username: "bob"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "alice", resp[0].Username)
	assert.Equal(t, "bob", resp[1].Username)
}

func TestHandler_GetMe_Success(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().GetByID(mock.Anything, testUserID).
		Return(&domain.User{ID: testUserID, Username: "alice"}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, testUserID, resp.ID)
	assert.Equal(t, "alice", resp.Username)
}

func TestHandler_GetMe_NotFound(t *testing.T) {
	_, _, userSvc, r := setupRouter(t)

	userSvc.EXPECT().GetByID(mock.Anything, testUserID).Return(nil, domain.ErrUserNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ListMyCaravans_Success(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanSvc.EXPECT().ListByHost(mock.Anything, testUserID).Return([]*domain.Caravan{
		{ID: "c1", HostID: testUserID, Name: "Lakeside"},
		{ID: "c2", HostID: testUserID, Name: "Forest"},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/caravans", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "Lakeside", resp[0].Name)
}

func TestHandler_ListLikedCaravans_Empty(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanSvc.EXPECT().ListLikedBy(mock.Anything, testUserID).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp)
}

func TestHandler_ListLikedCaravans_Success(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanSvc.EXPECT().ListLikedBy(mock.Anything, testUserID).Return([]*domain.Caravan{
		{ID: "c1", LikedBy: []string{testUserID}},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/users/me/likes", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "c1", resp[0].ID)
	assert.Equal(t, 1, resp[0].Likes)
}

// --- Listing ranking ---

func TestHandler_ListCaravans_DefaultsToDistanceSort(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanSvc.EXPECT().Rank(mock.Anything, domain.SortByDistance, &domain.Coordinate{Lat: 52.5, Lng: 13.4}).
		Return([]domain.RankedCaravan{}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans?lat=52.5&lng=13.4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListCaravans_InvalidSortBy(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans?sortBy=rating", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCaravans_DistanceSortRequiresOrigin(t *testing.T) {
	_, _, _, r := setupRouter(t)

	for _, target := range []string{
		"/api/caravans?sortBy=distance",
		"/api/caravans?sortBy=distance&lat=52.5",
		"/api/caravans?sortBy=distance&lng=13.4",
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestHandler_ListCaravans_NonNumericOrigin(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans?sortBy=distance&lat=abc&lng=13.4", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListCaravans_PriceSortNeedsNoOrigin(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	ranked := []domain.RankedCaravan{
		{Caravan: domain.Caravan{ID: "c1", DailyRate: 50}, TransactionCount: 2},
	}
	caravanSvc.EXPECT().Rank(mock.Anything, domain.SortByPrice, (*domain.Coordinate)(nil)).
		Return(ranked, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans?sortBy=price", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RankedCaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "c1", resp[0].ID)
	assert.Nil(t, resp[0].Distance)
	assert.Equal(t, 2, resp[0].TransactionCount)
}

// --- Caravans ---

func TestHandler_CreateCaravan_Success(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravan := &domain.Caravan{
		ID:        uuid.New().String(),
		Name:      "Lakeside",
		HostID:    testUserID,
		Capacity:  4,
		DailyRate: 120,
		Status:    domain.CaravanStatusAvailable,
		LikedBy:   []string{},
	}
	caravanSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateCaravanInput) bool {
		return in.HostID == testUserID && in.Name == "Lakeside"
	})).Return(caravan, nil)

	body, _ := json.Marshal(dto.CreateCaravanRequest{
		Name:      "Lakeside",
		Capacity:  4,
		DailyRate: 120,
		Location:  dto.LocationParam{Lat: 52.3, Lng: 4.9},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/caravans", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.CaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Lakeside", resp.Name)
}

func TestHandler_GetCaravan_Success(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanID := uuid.New().String()
	details := &domain.CaravanDetails{
		Caravan:      domain.Caravan{ID: caravanID, Name: "Lakeside"},
		Host:         domain.User{ID: "h1", Username: "bob"},
		Transactions: 7,
	}
	caravanSvc.EXPECT().GetDetails(mock.Anything, caravanID).Return(details, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans/"+caravanID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CaravanDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 7, resp.Transactions)
	assert.Equal(t, "bob", resp.Host.Username)
}

func TestHandler_GetCaravan_InvalidID(t *testing.T) {
	_, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetCaravan_NotFound(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanID := uuid.New().String()
	caravanSvc.EXPECT().GetDetails(mock.Anything, caravanID).Return(nil, domain.ErrCaravanNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/caravans/"+caravanID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteCaravan_Forbidden(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanID := uuid.New().String()
	caravanSvc.EXPECT().Delete(mock.Anything, caravanID, testUserID).Return(domain.ErrForbidden)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/caravans/"+caravanID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_ToggleLike_Success(t *testing.T) {
	caravanSvc, _, _, r := setupRouter(t)

	caravanID := uuid.New().String()
	caravanSvc.EXPECT().ToggleLike(mock.Anything, caravanID, testUserID).
		Return(&domain.Caravan{ID: caravanID, LikedBy: []string{testUserID}}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/caravans/"+caravanID+"/like", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.CaravanResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Likes)
}

// --- Reservations ---

func TestHandler_CreateReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	caravanID := uuid.New().String()
	start := time.Now().AddDate(0, 0, 10).Truncate(time.Second)
	end := start.AddDate(0, 0, 5)

	reservation := &domain.Reservation{
		ID:         uuid.New().String(),
		GuestID:    testUserID,
		CaravanID:  caravanID,
		Range:      domain.DateRange{Start: start, End: end},
		Status:     domain.ReservationStatusPending,
		TotalPrice: 500,
		CreatedAt:  time.Now(),
	}
	reservationSvc.EXPECT().Create(mock.Anything, mock.MatchedBy(func(in domain.CreateReservationInput) bool {
		return in.GuestID == testUserID && in.CaravanID == caravanID
	})).Return(reservation, nil)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CaravanID: caravanID,
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, string(domain.ReservationStatusPending), resp.Status)
	assert.Equal(t, 500.0, resp.TotalPrice)
}

func TestHandler_CreateReservation_InvalidDates(t *testing.T) {
	_, _, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.CreateReservationRequest{
		CaravanID: uuid.New().String(),
		StartDate: "12-10-2026",
		EndDate:   "15-10-2026",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateReservation_Conflict(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().Create(mock.Anything, mock.Anything).
		Return(nil, domain.ErrValidation)

	start := time.Now().AddDate(0, 0, 10)
	body, _ := json.Marshal(dto.CreateReservationRequest{
		CaravanID: uuid.New().String(),
		StartDate: start.Format(time.RFC3339),
		EndDate:   start.AddDate(0, 0, 5).Format(time.RFC3339),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ConfirmReservation_NotPending(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservationSvc.EXPECT().Confirm(mock.Anything, reservationID, testUserID).
		Return(domain.ErrReservationNotPending)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/confirm", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_CancelReservation_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationID := uuid.New().String()
	reservationSvc.EXPECT().Cancel(mock.Anything, reservationID, testUserID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/reservations/"+reservationID+"/cancel", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListMyReservations_Success(t *testing.T) {
	_, reservationSvc, _, r := setupRouter(t)

	reservationSvc.EXPECT().ListByGuest(mock.Anything, testUserID).Return([]*domain.Reservation{
		{ID: "r1", GuestID: testUserID, Status: domain.ReservationStatusPending},
		{ID: "r2", GuestID: testUserID, Status: domain.ReservationStatusConfirmed},
	}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reservations", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

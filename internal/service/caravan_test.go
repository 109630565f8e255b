package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/khs61254/app-caravan/internal/service/ports/mocks"
)

func ptr(f float64) *float64 { return &f }

func newCaravanService(t *testing.T) (*CaravanService, *mocks.MockCaravanRepo, *mocks.MockUserRepo, *mocks.MockReservationRepo, *mocks.MockDistanceOracle) {
	t.Helper()
	caravanRepo := mocks.NewMockCaravanRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	reservationRepo := mocks.NewMockReservationRepo(t)
	oracle := mocks.NewMockDistanceOracle(t)
	log := newTestLogger(t)

	svc := NewCaravanService(caravanRepo, userRepo, reservationRepo, oracle, log)
	return svc, caravanRepo, userRepo, reservationRepo, oracle
}

func TestCaravanService_Rank_ByPrice(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, _ := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", Name: "Expensive", DailyRate: 300},
		{ID: "c2", Name: "Cheap", DailyRate: 50},
		{ID: "c3", Name: "Middle", DailyRate: 120},
	}
	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, []string{"c1", "c2", "c3"}).Return(map[string]int{}, nil)

	ranked, err := svc.Rank(context.Background(), domain.SortByPrice, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c2", ranked[0].ID)
	assert.Equal(t, "c3", ranked[1].ID)
	assert.Equal(t, "c1", ranked[2].ID)
}

// Equal keys keep their fetch order: the sort must be stable.
func TestCaravanService_Rank_ByPrice_StableOnTies(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, _ := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", DailyRate: 100},
		{ID: "c2", DailyRate: 100},
		{ID: "c3", DailyRate: 100},
	}
	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, mock.Anything).Return(map[string]int{}, nil)

	ranked, err := svc.Rank(context.Background(), domain.SortByPrice, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c1", ranked[0].ID)
	assert.Equal(t, "c2", ranked[1].ID)
	assert.Equal(t, "c3", ranked[2].ID)
}

func TestCaravanService_Rank_ByLikes(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, _ := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", LikedBy: []string{"u1"}},
		{ID: "c2", LikedBy: []string{"u1", "u2", "u3"}},
		{ID: "c3", LikedBy: []string{}},
	}
	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, mock.Anything).Return(map[string]int{}, nil)

	ranked, err := svc.Rank(context.Background(), domain.SortByLikes, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c2", ranked[0].ID)
	assert.Equal(t, "c1", ranked[1].ID)
	assert.Equal(t, "c3", ranked[2].ID)
}

func TestCaravanService_Rank_ByDistance_UnknownSortsLast(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, oracle := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", Location: domain.Coordinate{Lat: 1, Lng: 1}},
		{ID: "c2", Location: domain.Coordinate{Lat: 2, Lng: 2}},
		{ID: "c3", Location: domain.Coordinate{Lat: 3, Lng: 3}},
	}
	origin := &domain.Coordinate{Lat: 0, Lng: 0}

	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, mock.Anything).Return(map[string]int{}, nil)
	oracle.EXPECT().Distances(mock.Anything, *origin, mock.Anything).
		Return([]*float64{ptr(30000), nil, ptr(10000)})

	ranked, err := svc.Rank(context.Background(), domain.SortByDistance, origin)

	require.NoError(t, err)
	require.Len(t, ranked, 3)
	assert.Equal(t, "c3", ranked[0].ID)
	assert.Equal(t, "c1", ranked[1].ID)
	assert.Equal(t, "c2", ranked[2].ID)
	assert.Nil(t, ranked[2].Distance)
}

func TestCaravanService_Rank_ByDistance_NoOriginReturnsUnsorted(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, _ := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1"},
		{ID: "c2"},
	}
	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, mock.Anything).Return(map[string]int{}, nil)

	ranked, err := svc.Rank(context.Background(), domain.SortByDistance, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, "c1", ranked[0].ID)
	assert.Equal(t, "c2", ranked[1].ID)
	assert.Nil(t, ranked[0].Distance)
}

// One ranking request makes exactly one oracle call regardless of listing count.
func TestCaravanService_Rank_SingleBatchedOracleCall(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, oracle := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", Location: domain.Coordinate{Lat: 1, Lng: 1}},
		{ID: "c2", Location: domain.Coordinate{Lat: 2, Lng: 2}},
		{ID: "c3", Location: domain.Coordinate{Lat: 3, Lng: 3}},
		{ID: "c4", Location: domain.Coordinate{Lat: 4, Lng: 4}},
	}
	origin := &domain.Coordinate{Lat: 0, Lng: 0}

	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, mock.Anything).Return(map[string]int{}, nil)
	oracle.EXPECT().Distances(mock.Anything, *origin, mock.Anything).
		Return([]*float64{ptr(1), ptr(2), ptr(3), ptr(4)}).Once()

	_, err := svc.Rank(context.Background(), domain.SortByDistance, origin)

	require.NoError(t, err)
	oracle.AssertNumberOfCalls(t, "Distances", 1)
}

func TestCaravanService_Rank_EnrichesTransactionCounts(t *testing.T) {
	svc, caravanRepo, _, reservationRepo, _ := newCaravanService(t)

	caravans := []*domain.Caravan{
		{ID: "c1", DailyRate: 100},
		{ID: "c2", DailyRate: 200},
	}
	caravanRepo.EXPECT().List(mock.Anything).Return(caravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, []string{"c1", "c2"}).
		Return(map[string]int{"c1": 4}, nil)

	ranked, err := svc.Rank(context.Background(), domain.SortByPrice, nil)

	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 4, ranked[0].TransactionCount)
	assert.Equal(t, 0, ranked[1].TransactionCount)
}

func TestCaravanService_Create_Success(t *testing.T) {
	svc, caravanRepo, userRepo, _, _ := newCaravanService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "h1").Return(&domain.User{ID: "h1"}, nil)
	caravanRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	caravan, err := svc.Create(context.Background(), domain.CreateCaravanInput{
		Name:      "Lakeside",
		HostID:    "h1",
		Capacity:  4,
		DailyRate: 120,
		Location:  domain.Coordinate{Lat: 52.3, Lng: 4.9},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, caravan.ID)
	assert.Equal(t, domain.CaravanStatusAvailable, caravan.Status)
	assert.Empty(t, caravan.LikedBy)
	assert.NotNil(t, caravan.LikedBy)
}

func TestCaravanService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input domain.CreateCaravanInput
	}{
		{"missing name", domain.CreateCaravanInput{HostID: "h1", Capacity: 2, DailyRate: 100}},
		{"non-positive rate", domain.CreateCaravanInput{Name: "X", HostID: "h1", Capacity: 2, DailyRate: 0}},
		{"non-positive capacity", domain.CreateCaravanInput{Name: "X", HostID: "h1", Capacity: 0, DailyRate: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _, _, _ := newCaravanService(t)

			_, err := svc.Create(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCaravanService_Create_HostNotFound(t *testing.T) {
	svc, _, userRepo, _, _ := newCaravanService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Create(context.Background(), domain.CreateCaravanInput{
		Name: "X", HostID: "missing", Capacity: 2, DailyRate: 100,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCaravanService_GetDetails_SumsHostTransactions(t *testing.T) {
	svc, caravanRepo, userRepo, reservationRepo, _ := newCaravanService(t)

	caravan := &domain.Caravan{ID: "c1", HostID: "h1"}
	host := &domain.User{ID: "h1", Username: "bob"}
	hostCaravans := []*domain.Caravan{
		{ID: "c1", HostID: "h1"},
		{ID: "c2", HostID: "h1"},
	}

	caravanRepo.EXPECT().GetByID(mock.Anything, "c1").Return(caravan, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil)
	caravanRepo.EXPECT().ListByHost(mock.Anything, "h1").Return(hostCaravans, nil)
	reservationRepo.EXPECT().CountCompleted(mock.Anything, []string{"c1", "c2"}).
		Return(map[string]int{"c1": 2, "c2": 3}, nil)

	details, err := svc.GetDetails(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, "c1", details.Caravan.ID)
	assert.Equal(t, "bob", details.Host.Username)
	assert.Equal(t, 5, details.Transactions)
}

func TestCaravanService_GetDetails_NotFound(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCaravanNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCaravanNotFound)
}

func TestCaravanService_ToggleLike_AddsAndRemoves(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Caravan{ID: "c1", LikedBy: []string{}}, nil).Once()
	caravanRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	caravan, err := svc.ToggleLike(context.Background(), "c1", "u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, caravan.LikedBy)

	caravanRepo.EXPECT().GetByID(mock.Anything, "c1").
		Return(&domain.Caravan{ID: "c1", LikedBy: []string{"u1"}}, nil).Once()

	caravan, err = svc.ToggleLike(context.Background(), "c1", "u1")
	require.NoError(t, err)
	assert.Empty(t, caravan.LikedBy)
}

func TestCaravanService_Delete_Success(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1", HostID: "h1"}, nil)
	caravanRepo.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	err := svc.Delete(context.Background(), "c1", "h1")

	require.NoError(t, err)
}

func TestCaravanService_Delete_NotHost(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Caravan{ID: "c1", HostID: "h1"}, nil)

	err := svc.Delete(context.Background(), "c1", "intruder")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCaravanService_ListByHost(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().ListByHost(mock.Anything, "h1").Return([]*domain.Caravan{
		{ID: "c1", HostID: "h1"},
		{ID: "c2", HostID: "h1"},
	}, nil)

	caravans, err := svc.ListByHost(context.Background(), "h1")

	require.NoError(t, err)
	require.Len(t, caravans, 2)
	assert.Equal(t, "c1", caravans[0].ID)
}

func TestCaravanService_ListLikedBy(t *testing.T) {
	svc, caravanRepo, _, _, _ := newCaravanService(t)

	caravanRepo.EXPECT().ListLikedBy(mock.Anything, "u1").Return([]*domain.Caravan{
		{ID: "c1", LikedBy: []string{"u1"}},
	}, nil)

	caravans, err := svc.ListLikedBy(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, caravans, 1)
	assert.Equal(t, "c1", caravans[0].ID)
}

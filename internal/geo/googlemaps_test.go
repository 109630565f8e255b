package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"

	"github.com/khs61254/app-caravan/internal/domain"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestGoogleMaps_Distances_Success(t *testing.T) {
	var gotOrigins, gotDestinations, gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotOrigins = r.URL.Query().Get("origins")
		gotDestinations = r.URL.Query().Get("destinations")
		gotKey = r.URL.Query().Get("key")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [
				{"status": "OK", "distance": {"value": 12345}},
				{"status": "ZERO_RESULTS"},
				{"status": "OK", "distance": {"value": 67890}}
			]}]
		}`))
	}))
	defer srv.Close()

	g := NewGoogleMaps("test-key", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	origin := domain.Coordinate{Lat: 52.5, Lng: 13.4}
	targets := []domain.Coordinate{
		{Lat: 52.6, Lng: 13.5},
		{Lat: 53.0, Lng: 14.0},
		{Lat: 51.0, Lng: 12.0},
	}

	distances := g.Distances(context.Background(), origin, targets)

	require.Len(t, distances, 3)
	require.NotNil(t, distances[0])
	assert.Equal(t, 12345.0, *distances[0])
	assert.Nil(t, distances[1])
	require.NotNil(t, distances[2])
	assert.Equal(t, 67890.0, *distances[2])

	assert.Equal(t, "52.500000,13.400000", gotOrigins)
	assert.Equal(t, "52.600000,13.500000|53.000000,14.000000|51.000000,12.000000", gotDestinations)
	assert.Equal(t, "test-key", gotKey)
}

func TestGoogleMaps_Distances_NonOKStatusDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key"}`))
	}))
	defer srv.Close()

	g := NewGoogleMaps("bad-key", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	distances := g.Distances(context.Background(), domain.Coordinate{}, []domain.Coordinate{{Lat: 1}, {Lat: 2}})

	require.Len(t, distances, 2)
	assert.Nil(t, distances[0])
	assert.Nil(t, distances[1])
}

func TestGoogleMaps_Distances_ServerErrorDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	g := NewGoogleMaps("test-key", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	distances := g.Distances(context.Background(), domain.Coordinate{}, []domain.Coordinate{{Lat: 1}})

	require.Len(t, distances, 1)
	assert.Nil(t, distances[0])
}

func TestGoogleMaps_Distances_MalformedBodyDegradesToNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	g := NewGoogleMaps("test-key", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	distances := g.Distances(context.Background(), domain.Coordinate{}, []domain.Coordinate{{Lat: 1}, {Lat: 2}})

	require.Len(t, distances, 2)
	assert.Nil(t, distances[0])
	assert.Nil(t, distances[1])
}

// Without an API key the oracle must not call the network at all and
// returns the fixed fallback distance for every target.
func TestGoogleMaps_Distances_NoKeyFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("unexpected request in degraded mode")
	}))
	defer srv.Close()

	g := NewGoogleMaps("", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	distances := g.Distances(context.Background(), domain.Coordinate{}, []domain.Coordinate{{Lat: 1}, {Lat: 2}})

	require.Len(t, distances, 2)
	for _, d := range distances {
		require.NotNil(t, d)
		assert.Equal(t, fallbackDistanceMeters, *d)
	}
}

func TestGoogleMaps_Distances_EmptyTargets(t *testing.T) {
	g := NewGoogleMaps("test-key", 5*time.Second, newTestLogger(t))

	distances := g.Distances(context.Background(), domain.Coordinate{}, nil)

	assert.Empty(t, distances)
}

func TestGoogleMaps_Distances_ExtraElementsIgnored(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [
				{"status": "OK", "distance": {"value": 10}},
				{"status": "OK", "distance": {"value": 20}},
				{"status": "OK", "distance": {"value": 30}}
			]}]
		}`))
	}))
	defer srv.Close()

	g := NewGoogleMaps("test-key", 5*time.Second, newTestLogger(t), WithBaseURL(srv.URL))

	distances := g.Distances(context.Background(), domain.Coordinate{}, []domain.Coordinate{{Lat: 1}})

	require.Len(t, distances, 1)
	require.NotNil(t, distances[0])
	assert.Equal(t, 10.0, *distances[0])
}

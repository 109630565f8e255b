package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/khs61254/app-caravan/internal/domain"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// fallbackDistanceMeters is returned for every target when no API key is
// configured. A fixed sentinel keeps degraded mode deterministic.
const fallbackDistanceMeters = 50000.0

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleMaps calls the Distance Matrix API, one batched request per call.
// Every failure degrades to all-nil distances; the adapter never surfaces
// an error to ranking. An optional redis client caches matrix results.
type GoogleMaps struct {
	apiKey   string
	baseURL  string
	client   *http.Client
	cache    *redis.Client
	cacheTTL time.Duration
	logger   logger.Logger
}

type Option func(*GoogleMaps)

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(g *GoogleMaps) { g.baseURL = baseURL }
}

// WithCache enables caching of matrix responses in redis.
func WithCache(cache *redis.Client, ttl time.Duration) Option {
	return func(g *GoogleMaps) {
		g.cache = cache
		g.cacheTTL = ttl
	}
}

func NewGoogleMaps(apiKey string, timeout time.Duration, log logger.Logger, opts ...Option) *GoogleMaps {
	g := &GoogleMaps{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: timeout},
		logger:  log,
	}
	for _, opt := range opts {
		opt(g)
	}

	if apiKey == "" {
		log.Warn("google maps api key is not set, distance oracle runs in degraded mode")
	}

	return g
}

// Distances returns one distance in meters per target, in target order.
// Nil means unknown. One attempt, no retries: on any upstream failure the
// whole batch degrades to nil.
func (g *GoogleMaps) Distances(ctx context.Context, origin domain.Coordinate, targets []domain.Coordinate) []*float64 {
	if len(targets) == 0 {
		return []*float64{}
	}

	if g.apiKey == "" {
		distances := make([]*float64, len(targets))
		for i := range distances {
			d := fallbackDistanceMeters
			distances[i] = &d
		}
		return distances
	}

	originParam := formatCoordinate(origin)
	destParam := formatCoordinates(targets)

	if cached, ok := g.fromCache(ctx, originParam, destParam, len(targets)); ok {
		return cached
	}

	body, err := g.fetch(ctx, originParam, destParam)
	if err != nil {
		g.logger.Error("distance matrix request failed",
			logger.String("error", err.Error()),
		)
		return make([]*float64, len(targets))
	}

	var parsed matrixResponse
	if err = json.Unmarshal(body, &parsed); err != nil {
		g.logger.Error("distance matrix decode failed",
			logger.String("error", err.Error()),
		)
		return make([]*float64, len(targets))
	}

	if parsed.Status != "OK" || len(parsed.Rows) == 0 {
		g.logger.Error("distance matrix returned non-OK status",
			logger.String("status", parsed.Status),
			logger.String("message", parsed.ErrorMessage),
		)
		return make([]*float64, len(targets))
	}

	distances := make([]*float64, len(targets))
	for i, element := range parsed.Rows[0].Elements {
		if i >= len(targets) {
			break
		}
		if element.Status == "OK" {
			d := element.Distance.Value
			distances[i] = &d
		}
	}

	g.toCache(ctx, originParam, destParam, distances)

	return distances
}

func (g *GoogleMaps) fetch(ctx context.Context, origin, destinations string) ([]byte, error) {
	u, err := url.Parse(g.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	q := u.Query()
	q.Set("origins", origin)
	q.Set("destinations", destinations)
	q.Set("key", g.apiKey)
	q.Set("units", "metric")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return body, nil
}

func (g *GoogleMaps) fromCache(ctx context.Context, origin, destinations string, n int) ([]*float64, bool) {
	if g.cache == nil {
		return nil, false
	}

	raw, err := g.cache.Get(ctx, cacheKey(origin, destinations)).Result()
	if err != nil {
		return nil, false
	}

	var distances []*float64
	if err = json.Unmarshal([]byte(raw), &distances); err != nil || len(distances) != n {
		return nil, false
	}
	return distances, true
}

func (g *GoogleMaps) toCache(ctx context.Context, origin, destinations string, distances []*float64) {
	if g.cache == nil {
		return
	}

	raw, err := json.Marshal(distances)
	if err != nil {
		return
	}

	if err = g.cache.Set(ctx, cacheKey(origin, destinations), raw, g.cacheTTL).Err(); err != nil {
		g.logger.Debug("distance cache write failed",
			logger.String("error", err.Error()),
		)
	}
}

func cacheKey(origin, destinations string) string {
	return fmt.Sprintf("distmatrix:%s:%s", origin, destinations)
}

func formatCoordinate(c domain.Coordinate) string {
	return fmt.Sprintf("%f,%f", c.Lat, c.Lng)
}

func formatCoordinates(coords []domain.Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = formatCoordinate(c)
	}
	return strings.Join(parts, "|")
}

package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"voyago/internal/cache"
	"voyago/internal/types"
)

// GeocodeCacheTTL is how long resolved coordinates stay valid. Addresses
// essentially never move, so a week is conservative.
const GeocodeCacheTTL = 7 * 24 * time.Hour

// GeocodingService resolves addresses to coordinates. Results are cached
// for GeocodeCacheTTL and the underlying client is rate-limited to one
// request per second process-wide.
type GeocodingService struct {
	client *maps.Client
	store  cache.Store
}

// NewGeocodingService creates a GeocodingService. The service owns its own
// maps client so the 1 rps limit does not throttle place searches.
func NewGeocodingService(apiKey string, store cache.Store) (*GeocodingService, error) {
	if apiKey == "" {
		return &GeocodingService{store: store}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey), maps.WithRateLimit(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &GeocodingService{client: client, store: store}, nil
}

// Geocode returns the coordinates for address, or ok=false when the address
// cannot be resolved. Failures never propagate: a missing key, provider
// error, or empty result all report a plain miss.
func (s *GeocodingService) Geocode(ctx context.Context, address string) (types.LatLng, bool) {
	key := strings.ToLower(strings.TrimSpace(address))
	if key == "" {
		return types.LatLng{}, false
	}

	if cached, ok := s.store.Get(ctx, key); ok {
		var coords types.LatLng
		if err := json.Unmarshal([]byte(cached), &coords); err == nil {
			return coords, true
		}
	}

	if s.client == nil {
		log.Printf("geocode: no api key configured, cannot resolve %q", address)
		return types.LatLng{}, false
	}

	results, err := s.client.Geocode(ctx, &maps.GeocodingRequest{Address: address})
	if err != nil {
		log.Printf("geocode: %q failed: %v", address, err)
		return types.LatLng{}, false
	}
	if len(results) == 0 {
		return types.LatLng{}, false
	}

	coords := types.LatLng{
		Lat: results[0].Geometry.Location.Lat,
		Lng: results[0].Geometry.Location.Lng,
	}
	if encoded, err := json.Marshal(coords); err == nil {
		s.store.Set(ctx, key, string(encoded))
	}
	return coords, true
}

package maps

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"googlemaps.github.io/maps"

	"voyago/internal/types"
)

// searchTimeout bounds one place lookup; on expiry the synthetic fallback
// set is served instead.
const searchTimeout = 5 * time.Second

const maxResults = 5

// interestKeywords maps an interest to the venue vocabulary used when
// filtering raw search results for relevance.
var interestKeywords = map[string][]string{
	"food":       {"restaurant", "dining", "cuisine"},
	"pizza":      {"pizza", "italian", "restaurant"},
	"coffee":     {"coffee", "cafe", "espresso"},
	"art":        {"museum", "gallery", "art"},
	"music":      {"venue", "concert", "music"},
	"shopping":   {"shop", "retail", "store"},
	"nightlife":  {"bar", "club", "entertainment"},
	"sports":     {"stadium", "arena", "sports"},
	"football":   {"stadium", "sports", "football"},
	"basketball": {"arena", "sports", "basketball"},
	"history":    {"museum", "historical", "monument"},
	"guns":       {"shooting", "range", "outdoor"},
	"fitness":    {"gym", "fitness", "health"},
	"nature":     {"park", "outdoor", "nature"},
}

// PlacesService handles venue lookups against the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a PlacesService with the given API key. An empty
// key yields a service that always serves the synthetic fallback set.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	if apiKey == "" {
		return &PlacesService{}, nil
	}
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Search returns venues in location matching interest. Provider errors and
// timeouts degrade to FallbackPlaces so the caller always has something to
// recommend; a clean provider response with zero hits passes through as an
// empty slice, which is the "no data" signal downstream.
func (s *PlacesService) Search(ctx context.Context, location, interest string) []types.Place {
	if s.client == nil {
		log.Printf("places: no api key configured, using fallback for %q", location)
		return FallbackPlaces(location, interest)
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	started := time.Now()
	resp, err := s.client.TextSearch(ctx, &maps.TextSearchRequest{
		Query:    fmt.Sprintf("%s in %s", interest, location),
		Language: "en",
	})
	if err != nil {
		log.Printf("places: search %q/%q failed after %s: %v", location, interest, time.Since(started).Round(time.Millisecond), err)
		return FallbackPlaces(location, interest)
	}

	places := make([]types.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		category := ""
		if len(r.Types) > 0 {
			category = r.Types[0]
		}
		p := types.Place{
			ID:       r.PlaceID,
			Name:     r.Name,
			Rating:   float64(r.Rating),
			Address:  r.FormattedAddress,
			Category: category,
			Keywords: strings.Join(r.Types, ", "),
			Lat:      r.Geometry.Location.Lat,
			Lng:      r.Geometry.Location.Lng,
		}
		places = append(places, p)
		if len(places) >= maxResults {
			break
		}
	}

	if len(places) == 0 {
		log.Printf("places: empty result for location %q, interest %q", location, interest)
		return nil
	}

	if relevant := filterByInterest(places, interest); len(relevant) > 0 {
		return relevant
	}
	return places
}

// filterByInterest keeps places whose name/category/keywords mention the
// interest or any of its mapped venue terms.
func filterByInterest(places []types.Place, interest string) []types.Place {
	lowerInterest := strings.ToLower(interest)
	terms := append([]string{lowerInterest}, interestKeywords[lowerInterest]...)

	var relevant []types.Place
	for _, p := range places {
		searchText := strings.ToLower(p.Name + " " + p.Description + " " + p.Category + " " + p.Keywords)
		for _, term := range terms {
			if term != "" && strings.Contains(searchText, term) {
				relevant = append(relevant, p)
				break
			}
		}
	}
	return relevant
}

// Package images wraps the Unsplash photo search API with caching and a
// static per-category fallback set, so callers always receive at least one
// image for every place.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"voyago/internal/cache"
	"voyago/internal/types"
)

const (
	apiBase = "https://api.unsplash.com"

	// ImageCacheTTL is the retention for resolved image sets.
	ImageCacheTTL = 24 * time.Hour

	searchTimeout = 3 * time.Second
)

// categoryTerms expands a place category into Unsplash search vocabulary.
var categoryTerms = map[string]string{
	"restaurant": "restaurant food dining",
	"cafe":       "cafe coffee shop",
	"museum":     "museum art gallery",
	"park":       "park nature outdoor",
	"hotel":      "hotel accommodation",
	"bar":        "bar pub nightlife",
	"shop":       "shopping store retail",
	"attraction": "tourist attraction landmark",
}

type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Small string `json:"small"`
	} `json:"urls"`
	AltDescription string `json:"alt_description"`
	User           struct {
		Name  string `json:"name"`
		Links struct {
			HTML string `json:"html"`
		} `json:"links"`
	} `json:"user"`
}

type unsplashResponse struct {
	Results []unsplashPhoto `json:"results"`
}

// Service handles photo lookups for places.
type Service struct {
	http      *http.Client
	accessKey string
	store     cache.Store
}

// NewService creates a Service. An empty accessKey yields a service that
// only ever serves fallback images.
func NewService(accessKey string, store cache.Store) *Service {
	return &Service{
		http:      &http.Client{},
		accessKey: accessKey,
		store:     store,
	}
}

// Search returns up to count photos for the named place. Timeouts, provider
// errors and empty results all degrade to FallbackImages(category); the
// returned slice is never empty.
func (s *Service) Search(ctx context.Context, name, location, category string, count int) []types.PlaceImage {
	cacheKey := strings.ToLower(fmt.Sprintf("%s-%s-%s", name, location, orDefault(category)))
	if cached, ok := s.store.Get(ctx, cacheKey); ok {
		var imgs []types.PlaceImage
		if err := json.Unmarshal([]byte(cached), &imgs); err == nil && len(imgs) > 0 {
			return imgs
		}
	}

	if s.accessKey == "" {
		return FallbackImages(category)
	}

	ctx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()

	imgs, err := s.fetch(ctx, name, location, category, count)
	if err != nil {
		log.Printf("images: search %q failed: %v", name, err)
		return FallbackImages(category)
	}
	if len(imgs) == 0 {
		return FallbackImages(category)
	}

	if encoded, err := json.Marshal(imgs); err == nil {
		s.store.Set(ctx, cacheKey, string(encoded))
	}
	return imgs
}

func (s *Service) fetch(ctx context.Context, name, location, category string, count int) ([]types.PlaceImage, error) {
	query := buildSearchQuery(name, location, category)
	endpoint := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d&orientation=landscape",
		apiBase, url.QueryEscape(query), count)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+s.accessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unsplash api status %d", resp.StatusCode)
	}

	var parsed unsplashResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	imgs := make([]types.PlaceImage, 0, len(parsed.Results))
	for _, photo := range parsed.Results {
		alt := photo.AltDescription
		if alt == "" {
			alt = fmt.Sprintf("%s in %s", name, location)
		}
		imgs = append(imgs, types.PlaceImage{
			ID:        photo.ID,
			URL:       photo.URLs.Small,
			Alt:       alt,
			Credit:    photo.User.Name,
			CreditURL: photo.User.Links.HTML,
		})
	}
	return imgs, nil
}

func buildSearchQuery(name, location, category string) string {
	terms := []string{name, location}
	if category != "" {
		if expanded, ok := categoryTerms[strings.ToLower(category)]; ok {
			terms = append(terms, expanded)
		} else {
			terms = append(terms, category)
		}
	}
	return strings.Join(terms, " ")
}

func orDefault(category string) string {
	if category == "" {
		return "default"
	}
	return category
}

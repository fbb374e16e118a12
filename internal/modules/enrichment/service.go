// Package enrichment attaches images and price metadata to raw place
// records before they leave the turn boundary.
package enrichment

import (
	"context"
	"sync"

	"voyago/internal/images"
	"voyago/internal/types"
)

// imagesPerPlace is how many photos are requested per venue.
const imagesPerPlace = 3

// ImageSource yields photos for a place. images.Service satisfies this; the
// implementation owns its own timeout and fallback policy, so a nil or
// empty result here only happens from test stubs.
type ImageSource interface {
	Search(ctx context.Context, name, location, category string, count int) []types.PlaceImage
}

// Service runs the enrichment pipeline.
type Service struct {
	images ImageSource
}

// NewService creates a Service backed by the given image source.
func NewService(source ImageSource) *Service {
	return &Service{images: source}
}

// EnrichWithImages attaches photos to every place. Lookups run concurrently
// but the output order matches the input order — pricing association
// downstream is positional and depends on it. Every returned place has a
// nonempty Images slice and no place is ever dropped.
func (s *Service) EnrichWithImages(ctx context.Context, places []types.Place) []types.Place {
	if len(places) == 0 {
		return []types.Place{}
	}

	enriched := make([]types.Place, len(places))
	var wg sync.WaitGroup
	for i, place := range places {
		wg.Add(1)
		go func(i int, place types.Place) {
			defer wg.Done()
			imgs := s.images.Search(ctx, place.Name, place.Address, place.Category, imagesPerPlace)
			if len(imgs) == 0 {
				imgs = images.FallbackImages(place.Category)
			}
			place.Images = imgs
			enriched[i] = place
		}(i, place)
	}
	wg.Wait()
	return enriched
}

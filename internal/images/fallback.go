package images

import (
	"strings"

	"voyago/internal/types"
)

// fallbackImages are static category-keyed substitutes used when the photo
// provider fails, times out, or returns nothing.
var fallbackImages = map[string][]types.PlaceImage{
	"restaurant": {{
		ID:     "fallback-restaurant",
		URL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4?w=400",
		Alt:    "Restaurant interior",
		Credit: "Unsplash",
	}},
	"cafe": {{
		ID:     "fallback-cafe",
		URL:    "https://images.unsplash.com/photo-1501339847302-ac426a4a7cbb?w=400",
		Alt:    "Café",
		Credit: "Unsplash",
	}},
	"museum": {{
		ID:     "fallback-museum",
		URL:    "https://images.unsplash.com/photo-1565060169187-5284a3f427a7?w=400",
		Alt:    "Museum",
		Credit: "Unsplash",
	}},
	"park": {{
		ID:     "fallback-park",
		URL:    "https://images.unsplash.com/photo-1519331379826-f10be5486c6f?w=400",
		Alt:    "Park",
		Credit: "Unsplash",
	}},
	"bar": {{
		ID:     "fallback-bar",
		URL:    "https://images.unsplash.com/photo-1514933651103-005eec06c04b?w=400",
		Alt:    "Bar",
		Credit: "Unsplash",
	}},
	"stadium": {{
		ID:     "fallback-stadium",
		URL:    "https://images.unsplash.com/photo-1489944440615-453fc2b6a9a9?w=400",
		Alt:    "Stadium",
		Credit: "Unsplash",
	}},
	"default": {{
		ID:     "fallback-default",
		URL:    "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=400",
		Alt:    "Travel destination",
		Credit: "Unsplash",
	}},
}

// FallbackImages returns the static image set for category, defaulting to a
// generic travel shot. The result is always nonempty.
func FallbackImages(category string) []types.PlaceImage {
	if imgs, ok := fallbackImages[strings.ToLower(category)]; ok {
		return imgs
	}
	return fallbackImages["default"]
}

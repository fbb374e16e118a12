package maps

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"voyago/internal/types"
)

// cityCoordinates anchors synthetic venues so they land near the real city
// on a map. Unknown locations default to Barcelona.
var cityCoordinates = map[string]types.LatLng{
	"Barcelona":        {Lat: 41.3851, Lng: 2.1734},
	"Barcelona, Spain": {Lat: 41.3851, Lng: 2.1734},
	"Madrid":           {Lat: 40.4168, Lng: -3.7038},
	"London":           {Lat: 51.5074, Lng: -0.1278},
	"Paris":            {Lat: 48.8566, Lng: 2.3522},
	"Rome":             {Lat: 41.9028, Lng: 12.4964},
	"Berlin":           {Lat: 52.5200, Lng: 13.4050},
	"Munich":           {Lat: 48.1351, Lng: 11.5820},
	"Amsterdam":        {Lat: 52.3676, Lng: 4.9041},
	"Vienna":           {Lat: 48.2082, Lng: 16.3738},
}

// cleanInterest collapses a free-text interest to its head keyword so the
// synthetic descriptions read naturally.
func cleanInterest(interest string) string {
	lower := strings.ToLower(interest)
	switch {
	case strings.Contains(lower, "football"):
		return "football"
	case strings.Contains(lower, "food"):
		return "food"
	case strings.Contains(lower, "art"):
		return "art"
	case strings.Contains(lower, "music"):
		return "music"
	}
	if fields := strings.Fields(interest); len(fields) > 0 {
		return fields[0]
	}
	return interest
}

// FallbackPlaces fabricates three plausible venues for location when the
// place provider is unreachable. The set is deterministic per location
// (a stadium, a themed museum, a sports bar) with small coordinate offsets
// so markers do not collide on a map.
func FallbackPlaces(location, interest string) []types.Place {
	cleaned := cleanInterest(interest)
	isBarcelona := strings.Contains(strings.ToLower(location), "barcelona")

	base, ok := cityCoordinates[location]
	if !ok {
		base = cityCoordinates["Barcelona"]
	}

	stadium := types.Place{
		ID:            "fallback-1-" + uuid.NewString(),
		Name:          fmt.Sprintf("%s Stadium", location),
		Rating:        4.8,
		Address:       fmt.Sprintf("Stadium District, %s", location),
		Description:   fmt.Sprintf("Major football stadium in %s, perfect for %s enthusiasts.", location, cleaned),
		Category:      "stadium",
		EstimatedCost: "€25-30",
		PriceLevel:    types.PriceLevelMid,
		Lat:           base.Lat + 0.01,
		Lng:           base.Lng + 0.01,
	}
	museum := types.Place{
		ID:            "fallback-2-" + uuid.NewString(),
		Name:          fmt.Sprintf("%s Sports Museum", location),
		Rating:        4.6,
		Address:       fmt.Sprintf("City Center, %s", location),
		Description:   fmt.Sprintf("Sports museum in %s featuring local %s history and culture.", location, cleaned),
		Category:      "museum",
		EstimatedCost: "€20-25",
		PriceLevel:    types.PriceLevelMid,
		Lat:           base.Lat - 0.005,
		Lng:           base.Lng + 0.005,
	}
	bar := types.Place{
		ID:            "fallback-3-" + uuid.NewString(),
		Name:          fmt.Sprintf("%s Sports Bar", location),
		Rating:        4.2,
		Address:       fmt.Sprintf("City Center, %s", location),
		Description:   fmt.Sprintf("Popular sports bar where locals gather to watch %s matches and enjoy the atmosphere.", cleaned),
		Category:      "bar",
		EstimatedCost: "€15-25",
		PriceLevel:    types.PriceLevelBudget,
		Lat:           base.Lat + 0.005,
		Lng:           base.Lng - 0.01,
	}

	if isBarcelona {
		stadium.Name = "Camp Nou Stadium"
		stadium.Address = fmt.Sprintf("Carrer d'Arístides Maillol, 12, %s", location)
		stadium.Description = "The iconic home stadium of FC Barcelona, one of the largest football stadiums in the world."
		stadium.Website = "https://www.fcbarcelona.com"
		stadium.Phone = "+34 902 18 99 00"
		museum.Name = "FC Barcelona Museum"
		museum.Address = fmt.Sprintf("Camp Nou, %s", location)
		museum.Description = "Interactive museum showcasing the history and achievements of FC Barcelona."
		museum.Website = "https://www.fcbarcelona.com/museum"
		museum.Phone = "+34 902 18 99 00"
	}

	return []types.Place{stadium, museum, bar}
}

package maps

import (
	"context"
	"math"
	"strings"
	"testing"

	"voyago/internal/types"
)

func TestFallbackPlaces_AlwaysThree(t *testing.T) {
	places := FallbackPlaces("Munich", "football")
	if len(places) != 3 {
		t.Fatalf("len = %d, want 3", len(places))
	}
	if places[0].Category != "stadium" || places[1].Category != "museum" || places[2].Category != "bar" {
		t.Errorf("categories = %q %q %q", places[0].Category, places[1].Category, places[2].Category)
	}
	for i, p := range places {
		if p.ID == "" || p.Name == "" || p.EstimatedCost == "" {
			t.Errorf("places[%d] incomplete: %+v", i, p)
		}
	}
}

func TestFallbackPlaces_BarcelonaSpecials(t *testing.T) {
	places := FallbackPlaces("Barcelona", "football")
	if places[0].Name != "Camp Nou Stadium" {
		t.Errorf("stadium = %q", places[0].Name)
	}
	if places[1].Name != "FC Barcelona Museum" {
		t.Errorf("museum = %q", places[1].Name)
	}
	if places[0].Website == "" || places[0].Phone == "" {
		t.Error("Barcelona stadium should carry website and phone")
	}
	if places[2].Name != "Barcelona Sports Bar" {
		t.Errorf("bar = %q, generic naming expected", places[2].Name)
	}
}

func TestFallbackPlaces_CoordinateOffsets(t *testing.T) {
	base := cityCoordinates["Munich"]
	places := FallbackPlaces("Munich", "sports")

	wantOffsets := []types.LatLng{
		{Lat: 0.01, Lng: 0.01},
		{Lat: -0.005, Lng: 0.005},
		{Lat: 0.005, Lng: -0.01},
	}
	for i, want := range wantOffsets {
		if math.Abs(places[i].Lat-(base.Lat+want.Lat)) > 1e-9 || math.Abs(places[i].Lng-(base.Lng+want.Lng)) > 1e-9 {
			t.Errorf("places[%d] at (%f, %f)", i, places[i].Lat, places[i].Lng)
		}
	}
}

func TestFallbackPlaces_UnknownCityAnchorsToBarcelona(t *testing.T) {
	base := cityCoordinates["Barcelona"]
	places := FallbackPlaces("Atlantis", "music")
	if math.Abs(places[0].Lat-(base.Lat+0.01)) > 1e-9 {
		t.Errorf("unknown city should anchor to the default coordinates, got %f", places[0].Lat)
	}
	if places[0].Name != "Atlantis Stadium" {
		t.Errorf("name = %q", places[0].Name)
	}
}

func TestFallbackPlaces_UniqueIDs(t *testing.T) {
	a := FallbackPlaces("Paris", "art")
	b := FallbackPlaces("Paris", "art")
	if a[0].ID == b[0].ID {
		t.Error("fallback IDs should be unique per call")
	}
	if !strings.HasPrefix(a[0].ID, "fallback-1-") || !strings.HasPrefix(a[2].ID, "fallback-3-") {
		t.Errorf("IDs = %q, %q", a[0].ID, a[2].ID)
	}
}

func TestCleanInterest(t *testing.T) {
	tests := []struct {
		interest string
		want     string
	}{
		{"football", "football"},
		{"watching Football matches", "football"},
		{"street food markets", "food"},
		{"modern art galleries", "art"},
		{"live music", "music"},
		{"basketball games", "basketball"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.interest, func(t *testing.T) {
			if got := cleanInterest(tt.interest); got != tt.want {
				t.Errorf("cleanInterest(%q) = %q, want %q", tt.interest, got, tt.want)
			}
		})
	}
}

func TestFilterByInterest(t *testing.T) {
	places := []types.Place{
		{Name: "Camp Nou", Category: "stadium"},
		{Name: "Sagrada Familia", Category: "church", Keywords: "place_of_worship"},
		{Name: "Barcelona Football Club Shop", Category: "store"},
	}

	relevant := filterByInterest(places, "football")
	if len(relevant) != 2 {
		t.Fatalf("len = %d, want 2: %v", len(relevant), relevant)
	}
	if relevant[0].Name != "Camp Nou" || relevant[1].Name != "Barcelona Football Club Shop" {
		t.Errorf("relevant = %v", relevant)
	}
}

func TestFilterByInterest_GunsKeywords(t *testing.T) {
	places := []types.Place{
		{Name: "City Shooting Range", Category: "point_of_interest"},
		{Name: "Sagrada Familia", Category: "church"},
	}

	relevant := filterByInterest(places, "guns")
	if len(relevant) != 1 || relevant[0].Name != "City Shooting Range" {
		t.Errorf("relevant = %v", relevant)
	}
}

func TestFilterByInterest_NoMatches(t *testing.T) {
	places := []types.Place{{Name: "Sagrada Familia", Category: "church"}}
	if relevant := filterByInterest(places, "football"); len(relevant) != 0 {
		t.Errorf("relevant = %v, want none", relevant)
	}
}

func TestSearch_NoAPIKeyUsesFallback(t *testing.T) {
	svc, err := NewPlacesService("")
	if err != nil {
		t.Fatal(err)
	}
	places := svc.Search(context.Background(), "Barcelona", "football")
	if len(places) != 3 {
		t.Fatalf("len = %d, want 3 fallback places", len(places))
	}
	if places[0].Name != "Camp Nou Stadium" {
		t.Errorf("places[0].Name = %q", places[0].Name)
	}
}

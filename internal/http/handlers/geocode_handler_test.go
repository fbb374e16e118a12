package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"voyago/internal/cache"
	"voyago/internal/http/handlers"
	"voyago/internal/maps"
	"voyago/internal/types"
)

func buildGeocodeRouter(t *testing.T, store cache.Store) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	svc, err := maps.NewGeocodingService("", store)
	if err != nil {
		t.Fatal(err)
	}
	r := gin.New()
	h := handlers.NewGeocodeHandler(svc)
	r.POST("/api/geocode", h.Geocode)
	return r
}

func doGeocode(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/geocode", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGeocode_MissingAddress(t *testing.T) {
	r := buildGeocodeRouter(t, cache.NewMemory(maps.GeocodeCacheTTL))

	for _, body := range []string{`{}`, `{"address": "  "}`, `{not json`} {
		if w := doGeocode(r, body); w.Code != http.StatusBadRequest {
			t.Errorf("body %q: expected 400, got %d", body, w.Code)
		}
	}
}

func TestGeocode_UnresolvableIsNotAnError(t *testing.T) {
	r := buildGeocodeRouter(t, cache.NewMemory(maps.GeocodeCacheTTL))

	w := doGeocode(r, `{"address": "Camp Nou, Barcelona"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Found bool `json:"found"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Found {
		t.Error("found should be false without a configured provider")
	}
}

func TestGeocode_CachedAddress(t *testing.T) {
	store := cache.NewMemory(maps.GeocodeCacheTTL)
	encoded, err := json.Marshal(types.LatLng{Lat: 41.3851, Lng: 2.1734})
	if err != nil {
		t.Fatal(err)
	}
	store.Set(context.Background(), "camp nou, barcelona", string(encoded))

	r := buildGeocodeRouter(t, store)
	w := doGeocode(r, `{"address": "Camp Nou, Barcelona"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var resp struct {
		Lat   float64 `json:"lat"`
		Lng   float64 `json:"lng"`
		Found bool    `json:"found"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Found || resp.Lat != 41.3851 || resp.Lng != 2.1734 {
		t.Errorf("resp = %+v", resp)
	}
}

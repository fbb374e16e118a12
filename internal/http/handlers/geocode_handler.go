// README: Geocode handler; resolves a place address to map coordinates.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"voyago/internal/maps"
)

type GeocodeHandler struct {
	geo *maps.GeocodingService
}

func NewGeocodeHandler(geo *maps.GeocodingService) *GeocodeHandler {
	return &GeocodeHandler{geo: geo}
}

type geocodeRequest struct {
	Address string `json:"address"`
}

type geocodeResponse struct {
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
	Found bool    `json:"found"`
}

// Geocode handles POST /api/geocode. Unresolvable addresses are not errors;
// they come back with found=false so the map layer can skip the marker.
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	var req geocodeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Address) == "" {
		writeError(c, http.StatusBadRequest, "address is required")
		return
	}

	coords, found := h.geo.Geocode(c.Request.Context(), req.Address)
	writeJSON(c, http.StatusOK, geocodeResponse{Lat: coords.Lat, Lng: coords.Lng, Found: found})
}

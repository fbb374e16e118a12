// README: Common place value objects shared across modules.
package types

// PlaceImage is one photo attached to a place.
type PlaceImage struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Alt       string `json:"alt"`
	Credit    string `json:"credit"`
	CreditURL string `json:"creditUrl,omitempty"`
}

// Price level buckets derived from the estimated cost string.
const (
	PriceLevelBudget = "budget"
	PriceLevelMid    = "mid"
	PriceLevelHigh   = "high"
)

// Place is a venue surfaced to the caller. The search adapters produce the
// base fields; the enrichment pipeline fills Images, EstimatedCost and
// PriceLevel before the place leaves the turn boundary.
type Place struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Rating        float64      `json:"rating"`
	Address       string       `json:"address"`
	Description   string       `json:"description"`
	Category      string       `json:"category"`
	Website       string       `json:"website,omitempty"`
	Phone         string       `json:"phone,omitempty"`
	Keywords      string       `json:"keywords,omitempty"`
	Lat           float64      `json:"lat,omitempty"`
	Lng           float64      `json:"lng,omitempty"`
	Images        []PlaceImage `json:"images,omitempty"`
	EstimatedCost string       `json:"estimatedCost,omitempty"`
	PriceLevel    string       `json:"priceLevel,omitempty"`
}

// LatLng is a geographic coordinate pair.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

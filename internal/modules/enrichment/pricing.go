package enrichment

import (
	"regexp"
	"strconv"

	"voyago/internal/types"
)

var (
	// costMarkerPattern matches the cost callouts the venue prompt mandates,
	// e.g. "💰 Cost: €15-25 per person" captures "€15-25". Case-insensitive:
	// models drift between "Cost" and "cost".
	costMarkerPattern = regexp.MustCompile(`(?i)💰\s*Cost:\s*(€[\d\-€\s,]+)`)

	numberPattern = regexp.MustCompile(`\d+`)
)

// EnrichWithPricing scans the generated plan text for cost callouts and
// attaches them to places positionally: the Nth extracted cost goes to the
// Nth place. Places without a corresponding cost have EstimatedCost and
// PriceLevel cleared, including any preset carried in from a fallback set.
// Alignment is best-effort; a plan that lists costs out of order mislabels
// the venues.
func (s *Service) EnrichWithPricing(places []types.Place, text string) []types.Place {
	if len(places) == 0 {
		return []types.Place{}
	}

	matches := costMarkerPattern.FindAllStringSubmatch(text, -1)
	costs := make([]string, 0, len(matches))
	for _, m := range matches {
		costs = append(costs, trimCost(m[1]))
	}

	enriched := make([]types.Place, len(places))
	for i, place := range places {
		if i < len(costs) {
			place.EstimatedCost = costs[i]
			place.PriceLevel = priceLevel(costs[i])
		} else {
			place.EstimatedCost = ""
			place.PriceLevel = ""
		}
		enriched[i] = place
	}
	return enriched
}

func trimCost(cost string) string {
	for len(cost) > 0 {
		last := cost[len(cost)-1]
		if last == ' ' || last == ',' {
			cost = cost[:len(cost)-1]
			continue
		}
		break
	}
	return cost
}

// priceLevel buckets a cost string by the mean of its numeric tokens.
func priceLevel(cost string) string {
	numbers := numberPattern.FindAllString(cost, -1)
	if len(numbers) == 0 {
		return types.PriceLevelMid
	}

	sum := 0
	for _, n := range numbers {
		v, err := strconv.Atoi(n)
		if err != nil {
			continue
		}
		sum += v
	}
	avg := float64(sum) / float64(len(numbers))

	switch {
	case avg <= 20:
		return types.PriceLevelBudget
	case avg <= 50:
		return types.PriceLevelMid
	default:
		return types.PriceLevelHigh
	}
}

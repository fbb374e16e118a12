package recommend

import (
	"regexp"
	"strings"
)

var (
	boldSpanPattern = regexp.MustCompile(`\*\*([^*]+)\*\*`)

	// capitalizedRunPattern is the secondary heuristic: a run of
	// capitalized words, optionally a comma-separated list of them.
	capitalizedRunPattern = regexp.MustCompile(`([A-Z][a-z\s]+(?:,[A-Z][a-z\s]+)*)`)

	terminalPunctuation = regexp.MustCompile(`[.!?]$`)
)

// disagreementSplitMarker separates the acknowledgment from the structured
// suggestion block in a combined disagreement response.
const disagreementSplitMarker = "\n\nBased on your interest"

// parseLocations extracts exactly three location names from generated text.
// Bold spans are authoritative; when fewer than three are present a
// capitalized-phrase heuristic runs over the first match. ok is false when
// neither path yields three names.
func parseLocations(text string) ([]string, bool) {
	matches := boldSpanPattern.FindAllStringSubmatch(text, -1)
	if len(matches) >= 3 {
		locations := make([]string, 3)
		for i := 0; i < 3; i++ {
			locations[i] = strings.TrimSpace(matches[i][1])
		}
		return locations, true
	}

	if run := capitalizedRunPattern.FindString(text); run != "" {
		parts := strings.Split(run, ",")
		locations := make([]string, 0, 3)
		for _, part := range parts {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				locations = append(locations, trimmed)
			}
			if len(locations) == 3 {
				return locations, true
			}
		}
	}
	return nil, false
}

// splitAcknowledgment divides a combined disagreement response into the
// acknowledgment and the suggestion block. When the structural marker is
// missing the whole response is treated as the suggestion block so location
// parsing still gets a chance.
func splitAcknowledgment(response string) (acknowledgment, suggestions string) {
	idx := strings.Index(response, disagreementSplitMarker)
	if idx < 0 {
		return "", strings.TrimSpace(response)
	}
	acknowledgment = strings.TrimSpace(response[:idx])
	suggestions = strings.TrimSpace(response[idx:])
	return acknowledgment, suggestions
}

// looksTruncated reports whether a generation appears to have stopped
// mid-sentence: no terminal punctuation and shorter than the length at
// which an unterminated plan is still acceptable.
func looksTruncated(text string) bool {
	return !terminalPunctuation.MatchString(text) && len(text) <= 800
}

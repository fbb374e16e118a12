package conversation

import (
	"regexp"
	"strings"
)

// The classifiers below are deliberately narrow keyword heuristics, not an
// NLU model. Their false-positive/false-negative envelope is a known,
// accepted limitation of the protocol.

// disagreementPatterns match on word boundaries so "no" never fires inside
// "november" and "hate" never fires inside "chateau".
var disagreementPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bno\b`),
	regexp.MustCompile(`(?i)\bdon'?t like\b`),
	regexp.MustCompile(`(?i)\bnot interested\b`),
	regexp.MustCompile(`(?i)\bdisagree\b`),
	regexp.MustCompile(`(?i)\bdifferent\b`),
	regexp.MustCompile(`(?i)\bother\b`),
	regexp.MustCompile(`(?i)\bsomething else\b`),
	regexp.MustCompile(`(?i)\bnot good\b`),
	regexp.MustCompile(`(?i)\bhate\b`),
	regexp.MustCompile(`(?i)\bnot what i want\b`),
}

// fillerPrefixPattern strips lead-ins like "i would like to go to" so the
// remainder can be matched against candidate locations.
var fillerPrefixPattern = regexp.MustCompile(`(?i)^(i (would like|want) to (go to|visit)|let's (go to|visit)|go to)\s*`)

// fillerPhrasePattern removes travel-intent phrasing anywhere in a
// refinement message before it is appended to the active interest.
var fillerPhrasePattern = regexp.MustCompile(`(?i)i (would like|want) to (go|visit)`)

// cityPhrasePattern matches a capitalized city-like phrase, optionally
// followed by ", Country".
var cityPhrasePattern = regexp.MustCompile(`[A-Z][a-zA-Z\s]+(?:,\s*[A-Z][a-zA-Z\s]+)?`)

// IsDisagreement reports whether text rejects the current suggestions.
func IsDisagreement(text string) bool {
	for _, pattern := range disagreementPatterns {
		if pattern.MatchString(text) {
			return true
		}
	}
	return false
}

// ExtractLocation finds the location named in text. Candidates win first:
// the first candidate appearing (case-insensitively) in the filler-stripped
// text is returned verbatim. Otherwise the first capitalized city-like
// phrase is returned. Empty string means no location was found.
func ExtractLocation(text string, candidates []string) string {
	cleaned := strings.TrimSpace(fillerPrefixPattern.ReplaceAllString(text, ""))
	lowerCleaned := strings.ToLower(cleaned)

	for _, candidate := range candidates {
		if strings.Contains(lowerCleaned, strings.ToLower(candidate)) {
			return candidate
		}
	}

	if match := cityPhrasePattern.FindString(cleaned); match != "" {
		return strings.TrimSpace(match)
	}
	return ""
}

// StripFillerPhrases cleans a refinement message before it is appended to
// the active interest.
func StripFillerPhrases(text string) string {
	return strings.TrimSpace(fillerPhrasePattern.ReplaceAllString(text, ""))
}

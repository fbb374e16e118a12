// Package conversation implements the dialogue protocol: conversational
// stages, the intent classifiers, and the turn orchestrator. State is
// client-carried — every turn receives a State in the payload and returns a
// new one; nothing is persisted server-side.
package conversation

import (
	"errors"
	"math"
	"time"
)

// Stage names a point in the conversation protocol. The wire values match
// the payloads existing clients already carry.
type Stage string

const (
	StageInitial             Stage = "initial"
	StagePreferenceGathering Stage = "preference_gathering"
	StageLocationSelection   Stage = "location_selection"
	StageRecommendations     Stage = "recommendations"
)

// ErrMissingMessage is the one failure surfaced to the boundary: a turn
// without a user message cannot be processed. Every other failure inside a
// turn degrades to a fallback response instead.
var ErrMissingMessage = errors.New("missing user message")

// State is the caller-owned conversation state threaded through every turn.
type State struct {
	Stage              Stage    `json:"stage"`
	UserPreferences    []string `json:"userPreferences"`
	SelectedLocation   string   `json:"selectedLocation"`
	SuggestedLocations []string `json:"suggestedLocations"`
}

// NewState returns the initial value a caller starts a conversation with.
func NewState() State {
	return State{
		Stage:              StageInitial,
		UserPreferences:    []string{},
		SuggestedLocations: []string{},
	}
}

// reset clears everything back to preference gathering.
func reset() State {
	s := NewState()
	s.Stage = StagePreferenceGathering
	return s
}

// interest returns the single active interest, preferences[0].
func (s State) interest() string {
	if len(s.UserPreferences) == 0 {
		return ""
	}
	return s.UserPreferences[0]
}

// Message is one entry in the caller-owned transcript.
type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      string    `json:"role"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// TripDetails carries the optional budget window. Dates are "2006-01-02".
type TripDetails struct {
	Budget    float64 `json:"budget"`
	StartDate string  `json:"startDate"`
	EndDate   string  `json:"endDate"`
}

const dateLayout = "2006-01-02"

// BudgetPerDay derives the rounded daily budget from the trip window, or 0
// when the details are incomplete or unparseable. Days are counted as
// ceil(|end-start| / 24h).
func (t *TripDetails) BudgetPerDay() int {
	if t == nil || t.Budget <= 0 || t.StartDate == "" || t.EndDate == "" {
		return 0
	}
	start, err := time.Parse(dateLayout, t.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(dateLayout, t.EndDate)
	if err != nil {
		return 0
	}

	diff := end.Sub(start)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 1 {
		return 0
	}
	return int(math.Round(t.Budget / float64(days)))
}

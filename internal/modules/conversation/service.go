package conversation

import (
	"context"
	"log"
	"strings"

	"voyago/internal/modules/recommend"
	"voyago/internal/types"
)

// Generator produces the assistant text for each protocol step.
// recommend.Generator satisfies this.
type Generator interface {
	Welcome(ctx context.Context) string
	ResetPrompt(ctx context.Context) string
	SuggestLocations(ctx context.Context, interest string, excluded []string) ([]string, string)
	HandleDisagreement(ctx context.Context, interest string, excluded []string) (acknowledgment string, locations []string, text string)
	DisagreementClarification(ctx context.Context, interest string) string
	RecommendVenues(ctx context.Context, interest, location string, places []types.Place, budgetPerDay int) string
}

// PlaceSearcher looks up venues for a selected location.
// maps.PlacesService satisfies this.
type PlaceSearcher interface {
	Search(ctx context.Context, location, interest string) []types.Place
}

// Enricher attaches images and pricing to raw places.
// enrichment.Service satisfies this.
type Enricher interface {
	EnrichWithImages(ctx context.Context, places []types.Place) []types.Place
	EnrichWithPricing(places []types.Place, text string) []types.Place
}

// Result is the outcome of one turn.
type Result struct {
	Message string
	State   State
	Places  []types.Place
}

// Service is the dialogue state machine. HandleTurn is a pure transition
// function over (state, message, trip details); all side effects live in
// the injected collaborators.
type Service struct {
	gen    Generator
	places PlaceSearcher
	enrich Enricher
}

// NewService creates the orchestrator with its collaborators.
func NewService(gen Generator, places PlaceSearcher, enrich Enricher) *Service {
	return &Service{gen: gen, places: places, enrich: enrich}
}

// HandleTurn advances the conversation by one turn. The input state is
// never mutated; the caller receives a fresh one. The only error condition
// is a missing/empty user message — every provider failure inside the turn
// degrades to fallback content instead.
func (s *Service) HandleTurn(ctx context.Context, state State, messages []Message, trip *TripDetails) (Result, error) {
	if len(messages) == 0 {
		return Result{}, ErrMissingMessage
	}
	last := messages[len(messages)-1]
	if strings.TrimSpace(last.Content) == "" {
		return Result{}, ErrMissingMessage
	}

	switch state.Stage {
	case StageInitial, "":
		return s.welcomeTurn(ctx, state), nil
	case StagePreferenceGathering:
		return s.preferenceTurn(ctx, state, last), nil
	case StageLocationSelection:
		return s.selectionTurn(ctx, state, last, trip), nil
	case StageRecommendations:
		return s.recommendationsTurn(ctx, state, last), nil
	default:
		return s.resetTurn(ctx), nil
	}
}

func (s *Service) welcomeTurn(ctx context.Context, state State) Result {
	next := state
	next.Stage = StagePreferenceGathering
	return Result{
		Message: s.gen.Welcome(ctx),
		State:   next,
		Places:  []types.Place{},
	}
}

func (s *Service) preferenceTurn(ctx context.Context, state State, last Message) Result {
	interest := strings.ToLower(last.Content)

	locations, text := s.gen.SuggestLocations(ctx, interest, nil)

	next := state
	next.UserPreferences = []string{interest}
	next.SuggestedLocations = locations
	next.Stage = StageLocationSelection
	return Result{Message: text, State: next, Places: []types.Place{}}
}

func (s *Service) selectionTurn(ctx context.Context, state State, last Message, trip *TripDetails) Result {
	interest := state.interest()

	if IsDisagreement(last.Content) {
		log.Printf("conversation: user disagreed with suggestions, regenerating")
		ack, locations, text := s.gen.HandleDisagreement(ctx, interest, state.SuggestedLocations)

		next := state
		next.SuggestedLocations = locations
		next.Stage = StageLocationSelection
		return Result{Message: ack + "\n\n" + text, State: next, Places: []types.Place{}}
	}

	location := ExtractLocation(last.Content, state.SuggestedLocations)
	if location == "" {
		return s.refinementTurn(ctx, state, last)
	}

	log.Printf("conversation: extracted location %q, building recommendations", location)

	places := s.places.Search(ctx, location, interest)
	if len(places) > 0 {
		places = s.enrich.EnrichWithImages(ctx, places)
	}

	message := s.gen.RecommendVenues(ctx, interest, location, places, trip.BudgetPerDay())
	places = s.enrich.EnrichWithPricing(places, message)

	next := state
	next.SelectedLocation = location
	next.Stage = StageRecommendations

	// No venue data: keep the suggestions on the table and let the user
	// pick a different location.
	if strings.HasPrefix(message, recommend.NoVenueDataPrefix) {
		next.Stage = StageLocationSelection
	}

	return Result{Message: message, State: next, Places: places}
}

func (s *Service) refinementTurn(ctx context.Context, state State, last Message) Result {
	refinement := StripFillerPhrases(last.Content)
	interest := strings.TrimSpace(state.interest() + " " + refinement)

	locations, text := s.gen.SuggestLocations(ctx, interest, state.SuggestedLocations)

	next := state
	next.UserPreferences = []string{interest}
	next.SuggestedLocations = locations
	next.Stage = StageLocationSelection
	return Result{Message: text, State: next, Places: []types.Place{}}
}

func (s *Service) recommendationsTurn(ctx context.Context, state State, last Message) Result {
	if IsDisagreement(last.Content) {
		message := s.gen.DisagreementClarification(ctx, state.interest())
		return Result{Message: message, State: reset(), Places: []types.Place{}}
	}
	// Anything else after the plan is a fresh conversation.
	return s.resetTurn(ctx)
}

func (s *Service) resetTurn(ctx context.Context) Result {
	return Result{
		Message: s.gen.ResetPrompt(ctx),
		State:   reset(),
		Places:  []types.Place{},
	}
}

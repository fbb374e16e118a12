package recommend

import (
	"context"
	"strings"
	"testing"

	"voyago/internal/ai"
	"voyago/internal/types"
)

// scriptedClient returns queued responses in order, then repeats the last.
type scriptedClient struct {
	responses []string
	calls     int
}

func (c *scriptedClient) Complete(ctx context.Context, system, user string, opts ai.Options) (string, error) {
	c.calls++
	if len(c.responses) == 0 {
		return "", nil
	}
	idx := c.calls - 1
	if idx >= len(c.responses) {
		idx = len(c.responses) - 1
	}
	return c.responses[idx], nil
}

type failingClient struct{}

func (failingClient) Complete(ctx context.Context, system, user string, opts ai.Options) (string, error) {
	return "", ai.ErrUnavailable
}

func TestWelcome_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})
	if got := g.Welcome(context.Background()); got != fallbackWelcome {
		t.Errorf("Welcome() = %q, want fallback", got)
	}
	if got := g.ResetPrompt(context.Background()); got != fallbackReset {
		t.Errorf("ResetPrompt() = %q, want fallback", got)
	}
}

func TestSuggestLocations_ParsesGeneratedCities(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Based on your interest in **food**, I recommend these amazing destinations:\n\n**Lyon** - bouchons\n**Bologna** - pasta heaven\n**Osaka** - street food\n\nWhere would you like to go?",
	}}
	g := NewGenerator(client)

	locations, text := g.SuggestLocations(context.Background(), "food", nil)
	if len(locations) != 3 {
		t.Fatalf("locations = %v, want 3", locations)
	}
	if locations[0] != "food" || locations[1] != "Lyon" || locations[2] != "Bologna" {
		t.Errorf("locations = %v", locations)
	}
	if !strings.Contains(text, "Lyon") {
		t.Errorf("text = %q", text)
	}
}

func TestSuggestLocations_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	locations, text := g.SuggestLocations(context.Background(), "food", nil)
	if locations[0] != "London" || locations[1] != "Paris" || locations[2] != "New York" {
		t.Errorf("locations = %v, want static fallback", locations)
	}
	if text != fallbackSuggestionText {
		t.Errorf("text = %q", text)
	}
}

func TestSuggestLocations_UnparseableTextKeepsFallbackLocations(t *testing.T) {
	client := &scriptedClient{responses: []string{"plenty of nice places to see everywhere."}}
	g := NewGenerator(client)

	locations, text := g.SuggestLocations(context.Background(), "food", nil)
	if locations[0] != "London" {
		t.Errorf("locations = %v, want static fallback", locations)
	}
	if text != "plenty of nice places to see everywhere." {
		t.Errorf("generated text should still be returned, got %q", text)
	}
}

func TestHandleDisagreement_SingleCallAndSplit(t *testing.T) {
	client := &scriptedClient{responses: []string{
		"Got it, let's find something better.\n\nBased on your interest in **food**, here are some alternative destinations:\n\n**Lima** - ceviche\n**Bangkok** - street markets\n\nWhere would you like to go?",
	}}
	g := NewGenerator(client)

	ack, locations, text := g.HandleDisagreement(context.Background(), "food", []string{"Lyon"})
	if client.calls != 1 {
		t.Errorf("calls = %d, want a single combined completion", client.calls)
	}
	if ack != "Got it, let's find something better." {
		t.Errorf("acknowledgment = %q", ack)
	}
	if !strings.HasPrefix(text, "Based on your interest") {
		t.Errorf("text = %q", text)
	}
	if locations[0] != "food" || locations[1] != "Lima" || locations[2] != "Bangkok" {
		t.Errorf("locations = %v", locations)
	}
}

func TestHandleDisagreement_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	ack, locations, text := g.HandleDisagreement(context.Background(), "food", nil)
	if ack != fallbackAcknowledgment || text != fallbackAlternatives {
		t.Errorf("ack = %q, text = %q", ack, text)
	}
	if locations[0] != "London" {
		t.Errorf("locations = %v", locations)
	}
}

func TestDisagreementClarification_FallbackOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})
	if got := g.DisagreementClarification(context.Background(), "food"); got != fallbackClarification {
		t.Errorf("got %q", got)
	}
}

func TestRecommendVenues_NoPlaces(t *testing.T) {
	g := NewGenerator(&scriptedClient{})

	got := g.RecommendVenues(context.Background(), "football", "Barcelona", nil, 0)
	if !strings.HasPrefix(got, NoVenueDataPrefix) {
		t.Errorf("got %q, want NoVenueDataPrefix message", got)
	}
	if !strings.Contains(got, "Barcelona") || !strings.Contains(got, "football") {
		t.Errorf("message should name interest and location: %q", got)
	}
}

func TestRecommendVenues_RetriesTruncatedOnce(t *testing.T) {
	truncated := "1. **Camp Nou** - the famous"
	complete := "1. **Camp Nou** - the famous stadium of FC Barcelona. A must-see!"
	client := &scriptedClient{responses: []string{truncated, complete}}
	g := NewGenerator(client)

	places := []types.Place{{Name: "Camp Nou Stadium", Address: "Barcelona"}}
	got := g.RecommendVenues(context.Background(), "football", "Barcelona", places, 0)
	if client.calls != 2 {
		t.Errorf("calls = %d, want retry after truncated response", client.calls)
	}
	if got != complete {
		t.Errorf("got %q", got)
	}
}

func TestRecommendVenues_StillTruncatedAfterRetryReturnsLast(t *testing.T) {
	truncated := "1. **Camp Nou** - the famous"
	client := &scriptedClient{responses: []string{truncated}}
	g := NewGenerator(client)

	places := []types.Place{{Name: "Camp Nou Stadium", Address: "Barcelona"}}
	got := g.RecommendVenues(context.Background(), "football", "Barcelona", places, 0)
	if client.calls != 2 {
		t.Errorf("calls = %d, want exactly one retry", client.calls)
	}
	if got != truncated {
		t.Errorf("got %q, want the last response rather than the static plan", got)
	}
}

func TestRecommendVenues_StaticPlanOnFailure(t *testing.T) {
	g := NewGenerator(failingClient{})

	places := []types.Place{
		{Name: "Camp Nou Stadium", Address: "C. d'Aristides Maillol"},
		{Name: "FC Barcelona Museum", Address: "Camp Nou"},
	}
	got := g.RecommendVenues(context.Background(), "football", "Barcelona", places, 0)
	if !strings.Contains(got, "1. **Camp Nou Stadium**") || !strings.Contains(got, "2. **FC Barcelona Museum**") {
		t.Errorf("static plan should number the supplied venues in order: %q", got)
	}
}

func TestRecommendVenues_BudgetInPrompt(t *testing.T) {
	var capturedSystem, capturedUser string
	client := &captureClient{system: &capturedSystem, user: &capturedUser}
	g := NewGenerator(client)

	places := []types.Place{{Name: "Camp Nou Stadium", Address: "Barcelona"}}
	g.RecommendVenues(context.Background(), "football", "Barcelona", places, 100)

	if !strings.Contains(capturedSystem, "€100/day") {
		t.Errorf("system prompt missing budget: %q", capturedSystem)
	}
	if !strings.Contains(capturedUser, "€100") {
		t.Errorf("user prompt missing budget: %q", capturedUser)
	}
}

type captureClient struct {
	system, user *string
}

func (c *captureClient) Complete(ctx context.Context, system, user string, opts ai.Options) (string, error) {
	*c.system = system
	*c.user = user
	return "A complete plan ending properly.", nil
}

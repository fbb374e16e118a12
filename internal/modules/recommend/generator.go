// Package recommend builds the LLM prompts behind every assistant message
// and parses the generated text back into structured pieces. Every operation
// absorbs provider failures into a static fallback; callers never see an
// error from this package.
package recommend

import (
	"context"
	"fmt"
	"log"
	"strings"

	"voyago/internal/ai"
	"voyago/internal/types"
)

const defaultTemperature = 0.7

// NoVenueDataPrefix marks the "could not find venues" message. The
// conversation service matches this prefix to roll the dialogue back a
// stage instead of presenting an empty plan.
const NoVenueDataPrefix = "I couldn't find"

const (
	fallbackWelcome = "Hi! What are you interested in for your trip?"
	fallbackReset   = "What do you like?"

	fallbackAcknowledgment = "I understand those suggestions weren't what you were looking for. Could you tell me more about what you're interested in?"
	fallbackAlternatives   = "Here are some alternatives: London, Paris, New York. Where would you like to go?"

	fallbackClarification = "I understand those suggestions weren't what you were looking for. Could you tell me more about what you're interested in for your trip? What activities or experiences would you prefer?"

	fallbackSuggestionText = "I can recommend London, Paris, New York. Where do you want to go?"
)

func fallbackLocations() []string {
	return []string{"London", "Paris", "New York"}
}

// Generator turns conversation context into assistant text via the
// configured completion client.
type Generator struct {
	ai ai.Client
}

// NewGenerator creates a Generator backed by the given completion client.
func NewGenerator(client ai.Client) *Generator {
	return &Generator{ai: client}
}

// personaPrompt is the base system prompt shared by the conversational
// (non-structured) generations.
func personaPrompt(interest, location string) string {
	var b strings.Builder
	b.WriteString("You are an enthusiastic travel assistant helping users plan trips based on their interests, dont over explain or use unnecessary words.\n")
	if interest != "" {
		fmt.Fprintf(&b, "The user is interested in: %s\n", interest)
	}
	if location != "" {
		fmt.Fprintf(&b, "The user wants to go to: %s\n", location)
	}
	b.WriteString("Be friendly, knowledgeable, and exciting about travel opportunities. Keep responses concise but engaging.")
	return b.String()
}

// complete runs one generation and flattens every failure to "".
func (g *Generator) complete(ctx context.Context, system, user string, maxTokens int) string {
	text, err := g.ai.Complete(ctx, system, user, ai.Options{
		Temperature: defaultTemperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		log.Printf("recommend: completion failed, using fallback: %v", err)
		return ""
	}
	return text
}

// Welcome greets the user and asks for their interests.
func (g *Generator) Welcome(ctx context.Context) string {
	text := g.complete(ctx, personaPrompt("", ""),
		"Greet the user briefly and ask what they like or are interested in for their trip planning. Be friendly but concise, no excessive enthusiasm.",
		1500)
	if text == "" {
		return fallbackWelcome
	}
	return text
}

// ResetPrompt asks the user for a fresh set of interests after the
// conversation restarts.
func (g *Generator) ResetPrompt(ctx context.Context) string {
	text := g.complete(ctx, personaPrompt("", ""),
		"The user wants to start a new conversation. Politely ask what they like or are interested in for their next trip.",
		1500)
	if text == "" {
		return fallbackReset
	}
	return text
}

func exclusionPrompt(excluded []string) string {
	if len(excluded) == 0 {
		return ""
	}
	return fmt.Sprintf("Do not suggest these locations as they were previously rejected: %s. Suggest different ones.",
		strings.Join(excluded, ", "))
}

// SuggestLocations asks for exactly three real destinations matching the
// interest, excluding previously rejected ones. The returned slice always
// has length three regardless of what the model produced.
func (g *Generator) SuggestLocations(ctx context.Context, interest string, excluded []string) ([]string, string) {
	system := fmt.Sprintf(`You are a knowledgeable travel expert. Based on the user's interest, suggest 3 real cities/destinations that are genuinely known for that interest. Be specific and accurate.
%s

Format your response with proper markdown formatting:
- Use **bold** for city names and important highlights
- Use bullet points (-) for listing benefits or features
- Use line breaks for better readability

Structure: "Based on your interest in **[interest]**, I recommend these amazing destinations:

**[City 1]** - [brief description]
**[City 2]** - [brief description]
**[City 3]** - [brief description]

[Brief explanation of why these places are perfect with bullet points if applicable]

Where would you like to go?"`, exclusionPrompt(excluded))

	text := g.complete(ctx, system,
		fmt.Sprintf("I'm interested in %s. What are 3 real destinations that are famous for this?", interest),
		500)
	if text == "" {
		return fallbackLocations(), fallbackSuggestionText
	}

	locations, ok := parseLocations(text)
	if !ok {
		locations = fallbackLocations()
	}
	return locations, text
}

// HandleDisagreement combines a short acknowledgment with three fresh
// suggestions in a single completion call; two sequential model calls per
// disagreement turn cost too much latency.
func (g *Generator) HandleDisagreement(ctx context.Context, interest string, excluded []string) (acknowledgment string, locations []string, text string) {
	system := fmt.Sprintf(`You are a travel assistant. The user has disagreed with your previous location recommendations for %s.
First, politely acknowledge their disagreement and ask them to clarify preferences (keep this concise, 1-2 sentences).
Then, suggest 3 new real cities/destinations known for %s. %s

Format your response exactly like this (use markdown):
[Acknowledgment text here]

Based on your interest in **%s**, here are some alternative destinations:

**[City 1]** - [brief description]
**[City 2]** - [brief description]
**[City 3]** - [brief description]

[Brief explanation if needed]

Where would you like to go?`, interest, interest, exclusionPrompt(excluded), interest)

	response := g.complete(ctx, system,
		fmt.Sprintf("I don't like the locations you suggested for %s. Can you suggest others?", interest),
		400)
	if response == "" {
		return fallbackAcknowledgment, fallbackLocations(), fallbackAlternatives
	}

	acknowledgment, text = splitAcknowledgment(response)
	locations, ok := parseLocations(text)
	if !ok {
		locations = fallbackLocations()
	}
	return acknowledgment, locations, text
}

// DisagreementClarification acknowledges a rejection of the final
// recommendations and asks the user to restate their preferences.
func (g *Generator) DisagreementClarification(ctx context.Context, interest string) string {
	system := fmt.Sprintf(`You are a travel assistant. The user has disagreed with your previous recommendations for %s.
Politely acknowledge their disagreement and ask them to clarify their preferences or interests.
Ask what specific activities, experiences, or types of places they're looking for.
Be helpful and encouraging. Keep the response concise and focused on understanding their needs better.`, interest)

	text := g.complete(ctx, system,
		fmt.Sprintf("I dont like what you suggested for %s, can you suggest other things ?", interest),
		300)
	if text == "" {
		return fallbackClarification
	}
	return text
}

// RecommendVenues produces the venue-level plan text. An empty places slice
// yields the NoVenueDataPrefix message; a truncated-looking generation is
// retried once before the static template takes over.
func (g *Generator) RecommendVenues(ctx context.Context, interest, location string, places []types.Place, budgetPerDay int) string {
	if len(places) == 0 {
		return fmt.Sprintf("%s specific venue details for %s in %s right now. Would you like suggestions for a different location or more details on your preferences?",
			NoVenueDataPrefix, interest, location)
	}

	budgetContext := "Include estimated costs (€) for each place when possible."
	if budgetPerDay > 0 {
		budgetContext = fmt.Sprintf("Budget: €%d/day. Recommend a smart mix of budget-friendly and mid-range options. Include estimated costs (€) for each place.", budgetPerDay)
	}

	venueList := make([]string, 0, len(places))
	for _, p := range places {
		venueList = append(venueList, fmt.Sprintf("%s (%s)", p.Name, p.Address))
	}

	system := fmt.Sprintf(`You are a local travel expert for %s ONLY. Create a detailed trip plan STRICTLY for %s and the interest in %s. Do NOT mix in other locations or unrelated activities.

MUST use these real venues as the basis: %s. Expand with genuine details but stay accurate.

%s

Use proper markdown formatting:
- **Bold** for venue names and important highlights
- Use bullet points (-) for features, tips, and details
- Clear numbering (1., 2., 3., etc.) for the main venues
- Line breaks for better readability
- Include **💰 Cost:** for each venue (e.g., "💰 Cost: €15-25 per person")

Include:
1. Top 5 real, specific venues/places in %s related to the user's interest
2. Brief description of each place with key features
3. Estimated costs per person
4. Practical tips or recommendations using bullet points
5. Best times to visit

Be specific with real place names, addresses when possible, and genuine local knowledge. Format as a well-structured numbered list with descriptions using markdown formatting.

IMPORTANT:
- Do NOT repeat the user's exact words in venue names
- Use proper venue names (e.g., "Camp Nou", "Sagrada Familia", not "Football Center")
- Always complete your response. Do not stop mid-sentence.
- Keep it concise but informative`, location, location, interest, strings.Join(venueList, ", "), budgetContext, location)

	user := fmt.Sprintf("I'm interested in %s and I'm going to %s. Give me a detailed trip plan with the top 5 real places I should visit, including specific venues, attractions, or experiences.", interest, location)
	if budgetPerDay > 0 {
		user += fmt.Sprintf(" My daily budget is €%d.", budgetPerDay)
	}

	var lastResponse string
	for attempt := 0; attempt < 2; attempt++ {
		response := g.complete(ctx, system, user, 2000)
		if response != "" && !looksTruncated(response) {
			return response
		}
		if response != "" {
			log.Printf("recommend: venue plan looks truncated on attempt %d", attempt+1)
		}
		lastResponse = response
	}
	if lastResponse != "" {
		return lastResponse
	}
	return staticVenuePlan(interest, location, places)
}

// staticVenuePlan is the last-resort plan: a plain numbered list naming the
// supplied venues in order.
func staticVenuePlan(interest, location string, places []types.Place) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Here are some great places for %s in %s:\n", interest, location)
	for i, p := range places {
		fmt.Fprintf(&b, "\n%d. **%s** - %s", i+1, p.Name, p.Address)
	}
	return b.String()
}

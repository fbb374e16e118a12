package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"voyago/internal/ai"
	"voyago/internal/cache"
	"voyago/internal/images"
	"voyago/internal/maps"
	"voyago/internal/modules/conversation"
	"voyago/internal/modules/enrichment"
	"voyago/internal/modules/recommend"
)

// Runs a scripted conversation against the live providers so the whole
// pipeline can be eyeballed without standing up the HTTP server.
func main() {
	_ = godotenv.Load()

	ctx := context.Background()

	var client ai.Client
	if key := os.Getenv("GEMINI_API_KEY"); os.Getenv("VOYAGO_AI_PROVIDER") == "gemini" && key != "" {
		gemini, err := ai.NewGeminiClient(ctx, key)
		if err != nil {
			log.Fatalf("Failed to initialize AI client: %v", err)
		}
		defer gemini.Close()
		client = gemini
	} else {
		client = ai.NewGroqClient(os.Getenv("GROQ_API_KEY"))
	}

	placesSvc, err := maps.NewPlacesService(os.Getenv("GOOGLE_MAPS_API_KEY"))
	if err != nil {
		log.Fatalf("Failed to initialize places service: %v", err)
	}

	imageSvc := images.NewService(os.Getenv("UNSPLASH_ACCESS_KEY"), cache.NewMemory(images.ImageCacheTTL))
	svc := conversation.NewService(
		recommend.NewGenerator(client),
		placesSvc,
		enrichment.NewService(imageSvc),
	)

	script := []string{
		"hi",
		"football",
		"Barcelona sounds great",
	}
	trip := &conversation.TripDetails{Budget: 500, StartDate: "2026-09-10", EndDate: "2026-09-15"}

	state := conversation.NewState()
	var transcript []conversation.Message

	for _, line := range script {
		fmt.Printf("User: %s\n", line)
		transcript = append(transcript, conversation.Message{Content: line, Role: "user"})

		result, err := svc.HandleTurn(ctx, state, transcript, trip)
		if err != nil {
			log.Fatalf("Turn failed: %v", err)
		}

		fmt.Printf("Assistant: %s\n", result.Message)
		fmt.Printf("Stage: %s\n\n", result.State.Stage)

		transcript = append(transcript, conversation.Message{Content: result.Message, Role: "assistant"})
		state = result.State

		for _, place := range result.Places {
			fmt.Printf("  %s (%.1f) %s [%s]\n", place.Name, place.Rating, place.EstimatedCost, place.PriceLevel)
		}
	}
}

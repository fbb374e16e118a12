// README: Entry point; loads config, wires adapters and the dialogue
// service, starts the HTTP server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"voyago/internal/ai"
	"voyago/internal/cache"
	"voyago/internal/config"
	httptransport "voyago/internal/http"
	"voyago/internal/images"
	"voyago/internal/infra"
	"voyago/internal/maps"
	"voyago/internal/modules/conversation"
	"voyago/internal/modules/enrichment"
	"voyago/internal/modules/recommend"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var imageCache, geoCache cache.Store
	if cfg.Redis.Addr != "" {
		redisClient := infra.NewRedis(cfg.Redis.Addr)
		imageCache = cache.NewRedis(redisClient, "images:", images.ImageCacheTTL)
		geoCache = cache.NewRedis(redisClient, "geocode:", maps.GeocodeCacheTTL)
	} else {
		imageCache = cache.NewMemory(images.ImageCacheTTL)
		geoCache = cache.NewMemory(maps.GeocodeCacheTTL)
	}

	var aiClient ai.Client
	switch cfg.AI.Provider {
	case "gemini":
		gemini, err := ai.NewGeminiClient(ctx, cfg.AI.GeminiKey)
		if err != nil {
			log.Fatalf("gemini init: %v", err)
		}
		defer gemini.Close()
		aiClient = gemini
	default:
		aiClient = ai.NewGroqClient(cfg.AI.GroqKey)
	}

	placesSvc, err := maps.NewPlacesService(cfg.Maps.APIKey)
	if err != nil {
		log.Fatalf("places init: %v", err)
	}
	geoSvc, err := maps.NewGeocodingService(cfg.Maps.APIKey, geoCache)
	if err != nil {
		log.Fatalf("geocoding init: %v", err)
	}

	imageSvc := images.NewService(cfg.Unsplash.AccessKey, imageCache)
	enrichSvc := enrichment.NewService(imageSvc)
	generator := recommend.NewGenerator(aiClient)
	chatSvc := conversation.NewService(generator, placesSvc, enrichSvc)

	server := &http.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: httptransport.NewRouter(chatSvc, geoSvc),
	}

	go func() {
		<-ctx.Done()
		_ = server.Shutdown(context.Background())
	}()

	log.Printf("listening on %s", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}

// README: Config loader with env defaults for HTTP, Redis, and provider keys.
package config

import (
	"os"
)

type Config struct {
	HTTP struct {
		Addr string
	}
	Redis struct {
		// Addr is optional; when empty the services use in-memory caches.
		Addr string
	}
	AI struct {
		// Provider selects the completion backend: "groq" or "gemini".
		Provider  string
		GroqKey   string
		GeminiKey string
	}
	Maps struct {
		APIKey string
	}
	Unsplash struct {
		AccessKey string
	}
}

// Load reads configuration from the environment. Provider keys are allowed
// to be empty: every adapter degrades to its static fallback when its
// provider is unreachable, so a key-less process still serves coherent
// conversations.
func Load() (Config, error) {
	var cfg Config
	cfg.HTTP.Addr = envOrDefault("VOYAGO_HTTP_ADDR", ":8080")
	cfg.Redis.Addr = os.Getenv("VOYAGO_REDIS_ADDR")
	cfg.AI.Provider = envOrDefault("VOYAGO_AI_PROVIDER", "groq")
	cfg.AI.GroqKey = os.Getenv("GROQ_API_KEY")
	cfg.AI.GeminiKey = os.Getenv("GEMINI_API_KEY")
	cfg.Maps.APIKey = os.Getenv("GOOGLE_MAPS_API_KEY")
	cfg.Unsplash.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

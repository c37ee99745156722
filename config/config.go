package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataDir     string
	DatasetPath string
	JWTSecret   string

	// Assistant settings. The endpoint is OpenAI-compatible, so a local
	// proxy or OpenRouter works too.
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string

	// WatchDataset rebuilds the catalog when the USDA file changes on disk.
	WatchDataset bool

	// ExcludeJunkFood drops processed/junk rows from the catalog before
	// grouping. Off by default.
	ExcludeJunkFood bool
}

func Load() (Config, error) {
	// .env is optional; deployed environments set variables directly.
	_ = godotenv.Load()

	cfg := Config{
		Port:            envOrDefault("PORT", "8080"),
		DataDir:         envOrDefault("DATA_DIR", "data"),
		DatasetPath:     envOrDefault("USDA_DATASET", "USDA.csv"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		OpenAIAPIKey:    os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:   envOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:     envOrDefault("OPENAI_MODEL", "gpt-4o-mini"),
		WatchDataset:    os.Getenv("WATCH_DATASET") == "true",
		ExcludeJunkFood: os.Getenv("EXCLUDE_JUNK_FOOD") == "true",
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is required")
	}
	return cfg, nil
}

func envOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

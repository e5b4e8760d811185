package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config contains application-wide settings sourced from the environment.
type Config struct {
	DatabaseURL    string
	DBConnectWait  time.Duration
	Addr           string
	AllowedOrigins []string
	GoogleMapsKey  string
	MediaDir       string
	MediaBaseURL   string
	LogLevel       string
	LogFormat      string
	SeedDemoData   bool
}

func loadConfig() (Config, error) {
	_ = godotenv.Load("config/local.env")

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return Config{}, errors.New("DATABASE_URL env var is required")
	}

	addr := fmt.Sprintf(":%s", envOrDefault("PORT", "8080"))
	origins := parseAllowedOrigins(envOrDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000"))

	connectWait, err := time.ParseDuration(envOrDefault("DB_CONNECT_WAIT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid DB_CONNECT_WAIT: %w", err)
	}

	return Config{
		DatabaseURL:    dsn,
		DBConnectWait:  connectWait,
		Addr:           addr,
		AllowedOrigins: origins,
		GoogleMapsKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		MediaDir:       envOrDefault("MEDIA_DIR", "media"),
		MediaBaseURL:   envOrDefault("MEDIA_BASE_URL", "/media"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "json"),
		SeedDemoData:   os.Getenv("SEED_DEMO_DATA") == "true",
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func parseAllowedOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	var origins []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

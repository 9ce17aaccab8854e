package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

// Config holds the runtime configuration, loaded from environment variables.
type Config struct {
	Port      string
	Env       string
	JWTSecret string
	JWTExpiry time.Duration

	// StaticDir, when set, is served as the frontend at the router root.
	StaticDir string

	// AllowedOrigins configures CORS; "*" allows every origin.
	AllowedOrigins []string

	// GuestTotalPolicy selects the totalGuests formula: "party-size"
	// (respondent plus extra guests) or "extra-guests" (extras only).
	// Two deployments computed this differently; configurable until
	// product settles on one.
	GuestTotalPolicy string
}

// Load reads configuration from the environment, applying defaults.
func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:        24 * time.Hour,
		StaticDir:        getEnv("STATIC_DIR", ""),
		AllowedOrigins:   splitList(getEnv("ALLOWED_ORIGINS", "*")),
		GuestTotalPolicy: getEnv("GUEST_TOTAL_POLICY", "party-size"),
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

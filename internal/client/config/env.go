package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognized by the client.
const (
	envAPIBaseURL     = "TEAMHUB_API_URL"
	envRequestTimeout = "TEAMHUB_REQUEST_TIMEOUT"
	envDatabaseDSN    = "TEAMHUB_DB"
)

// parseEnv overlays Config with values from a .env file (if one exists in
// the working directory) and the process environment. A missing .env file
// is not an error; malformed values are ignored in favor of the current
// setting.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(envDatabaseDSN); v != "" {
		cfg.DatabaseDSN = v
	}
}

// Package config assembles runtime settings for the TeamHub CLI from
// several sources. Later sources take precedence over earlier ones:
//
//	defaults → .env / environment → JSON file (-c/-config) → command-line flags
package config

import "time"

// Config holds runtime settings for the TeamHub CLI.
//
// Fields:
//   - APIBaseURL: base URL of the TeamHub REST API, including the /api prefix.
//   - RequestTimeout: per-request HTTP timeout.
//   - DatabaseDSN: path/DSN of the local SQLite database.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabaseDSN    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabaseDSN = "teamhub.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present) and command-line flags
// (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

package config

import "time"

// Config holds runtime settings for the helpdesk CLI.
//
// Fields:
//   - BaseURL: root of the backend HTTP API, including the /api prefix.
//   - RequestTimeout: client-wide HTTP timeout applied to every request.
//   - DatabasePath: location of the local credential database.
type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	DatabasePath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "credentials.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

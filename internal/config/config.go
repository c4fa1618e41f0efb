// Package config loads runtime settings for the blogkeeper client.
//
// Sources are applied in order, later ones overriding earlier ones:
// defaults -> JSON file -> environment -> command-line flags.
package config

import (
	"context"
	"time"
)

// Config holds runtime settings for the blogkeeper CLI.
type Config struct {
	// ServerBaseURL is the backend API root, including the /api base path.
	ServerBaseURL string `env:"BLOG_SERVER_URL, overwrite"`
	// RequestTimeout is the transport-level ceiling per HTTP call.
	RequestTimeout time.Duration `env:"BLOG_REQUEST_TIMEOUT, overwrite"`
	// DatabasePath is the sqlite file holding the persisted credential record.
	DatabasePath string `env:"BLOG_DB_PATH, overwrite"`
	// CookieHeader is an optional raw Cookie header forwarded with every
	// request; the XSRF-TOKEN pair in it feeds the anti-forgery header.
	CookieHeader string `env:"BLOG_COOKIE_HEADER, overwrite"`
	LogLevel     string `env:"BLOG_LOG_LEVEL, overwrite"`
	LogPretty    bool   `env:"BLOG_LOG_PRETTY, overwrite"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8080/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "blogkeeper.db"
	c.LogLevel = "info"
	c.LogPretty = true
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig(ctx context.Context) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(ctx, cfg); err != nil {
		return nil, err
	}
	parseFlags(cfg)
	return cfg, nil
}

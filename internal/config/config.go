package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment
// variables. Remote credentials are optional: when absent or left at their
// placeholder values the process falls back to the local store.
type Config struct {
	Port string `env:"PORT" envDefault:"3000"`

	// Remote store endpoint (host:port) and access key. Both must be
	// present and non-placeholder for remote mode.
	RemoteURL string `env:"CAMPUS_REMOTE_URL"`
	RemoteKey string `env:"CAMPUS_REMOTE_KEY"`

	LocalDBPath string `env:"CAMPUS_LOCAL_DB" envDefault:"./data/campusconnect.db"`

	JWTSecret string `env:"JWT_SECRET"`

	// Cookie domain and CORS origins for the web client.
	Domain         string `env:"DOMAIN"`
	ClientURL      string `env:"CLIENT_URL"`
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// RemoteConfigured reports whether valid remote-store credentials are
// present. Placeholder values left over from a config template count as
// absent.
func (c *Config) RemoteConfigured() bool {
	if c.RemoteURL == "" || c.RemoteKey == "" {
		return false
	}
	if strings.Contains(c.RemoteURL, "YOUR_PROJECT_REF") || c.RemoteKey == "YOUR_ACCESS_KEY" {
		return false
	}
	return true
}

// RemoteDSN assembles the connection string for the hosted relational
// store from the configured endpoint and access key.
func (c *Config) RemoteDSN() string {
	return fmt.Sprintf("postgres://postgres:%s@%s/postgres?sslmode=require", c.RemoteKey, c.RemoteURL)
}

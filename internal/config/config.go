// Package config loads service configuration from the environment
package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Port    string `envconfig:"PORT" default:"8080"`
	GinMode string `envconfig:"GIN_MODE" default:"debug"`

	MongodbURL      string `envconfig:"MONGODB_URL" required:"true"`
	MongodbDatabase string `envconfig:"MONGODB_DATABASE" default:"melodex"`

	// ValkeyURL enables the artist read-through cache when set
	ValkeyURL string `envconfig:"VALKEY_URL"`

	// AuthMode selects the write-gate strategy at startup:
	// disabled | token | jwt
	AuthMode  string `envconfig:"AUTH_MODE" default:"disabled"`
	AuthToken string `envconfig:"AUTH_TOKEN"`
	JWTSecret string `envconfig:"JWT_SECRET"`

	// Debug adds the underlying error detail to 500 responses. Never
	// enable in production.
	Debug bool `envconfig:"DEBUG" default:"false"`

	// MediaCheckTimeoutSeconds bounds the admin media reachability probe
	MediaCheckTimeoutSeconds int `envconfig:"MEDIA_CHECK_TIMEOUT_SECONDS" default:"5"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}
	return &cfg, nil
}

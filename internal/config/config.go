// Package config loads configuration for the plenty command-line helper from
// environment variables and an optional .env file. The library itself takes
// credentials as call arguments; this package only serves the CLI.
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultBaseURL mirrors the library default so the CLI works without any
// configuration at all.
const DefaultBaseURL = "https://www.plentymarkets.co.uk/rest/"

// Config holds the CLI configuration.
type Config struct {
	BaseURL        string        `mapstructure:"plenty_base_url"`
	Email          string        `mapstructure:"plenty_email"`
	Password       string        `mapstructure:"plenty_password"`
	PlentyID       int           `mapstructure:"plenty_id"`
	TimeoutSeconds int64         `mapstructure:"plenty_timeout_seconds"`
	Timeout        time.Duration `mapstructure:"-"`
	LogLevel       string        `mapstructure:"log_level"`
}

// Load reads configuration from environment variables, with a .env file as
// fallback when present.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("plenty_base_url", DefaultBaseURL)
	v.SetDefault("plenty_email", "")
	v.SetDefault("plenty_password", "")
	v.SetDefault("plenty_id", 0)
	v.SetDefault("plenty_timeout_seconds", 30)
	v.SetDefault("log_level", "info")

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("plenty_base_url must not be empty")
	}
	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid plenty_timeout_seconds (must be positive seconds)")
	}
	cfg.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second

	return &cfg, nil
}

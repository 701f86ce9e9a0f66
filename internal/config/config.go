// Package config loads CLI configuration from defaults, an optional YAML
// file, and environment variables.
//
// Precedence (low to high):
//  1. defaults (Default)
//  2. YAML file named by NFLDATA_CONFIG, if set
//  3. environment variables with the NFLDATA_ prefix
//     (NFLDATA_CACHE_DIR, NFLDATA_LOG_LEVEL, ...)
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds CLI settings.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// CacheDir is where downloaded files are cached when caching is enabled.
	CacheDir string `koanf:"cache_dir"`

	// TimeoutSeconds bounds a single download.
	TimeoutSeconds int `koanf:"timeout_seconds"`

	// UserAgent is sent with every request.
	UserAgent string `koanf:"user_agent"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel:       "info",
		CacheDir:       "~/.cache/nfl-data",
		TimeoutSeconds: 60,
		UserAgent:      "",
	}
}

// Load builds a Config by layering defaults, the optional file, and env vars.
func Load() (*Config, error) {
	base := Default()

	k := koanf.New(".")

	if path := os.Getenv("NFLDATA_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// NFLDATA_CACHE_DIR -> cache_dir, matching the koanf tags above.
	envProvider := env.Provider("NFLDATA_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "nfldata_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, errors.New("timeout_seconds must be positive")
	}
	if cfg.CacheDir == "" {
		return nil, errors.New("cache_dir must not be empty")
	}
	return &cfg, nil
}

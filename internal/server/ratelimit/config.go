package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig sets limits for one endpoint pattern. Paths match by
// prefix.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // requests per window
	Window time.Duration
	Burst  int           // burst capacity, defaults to Limit
}

// Config holds the limiter configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// DefaultConfig returns the built-in limiter configuration.
func DefaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		EndpointConfigs: defaultEndpointConfigs(),
	}
}

// LoadConfig builds the limiter configuration from environment variables,
// falling back to defaults.
func LoadConfig() *Config {
	cfg := DefaultConfig()
	cfg.Enabled = getEnvBool("RATE_LIMIT_ENABLED", cfg.Enabled)
	if !cfg.Enabled {
		return &Config{Enabled: false}
	}
	cfg.DefaultLimit = getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", cfg.DefaultLimit)
	cfg.DefaultWindow = getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", cfg.DefaultWindow)
	cfg.CleanupInterval = getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}

// defaultEndpointConfigs tiers the API: pipeline runs are expensive and
// tightly limited, score-only checks are moderate, reads use the default.
func defaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/v1/resume", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},
		{Path: "/v1/score", Method: "POST", Limit: 120, Window: time.Hour, Burst: 10},
	}
}

// lookup resolves the limit, window, and burst for an endpoint. The health
// endpoint is never limited.
func (c *Config) lookup(path, method string) (limit int, window time.Duration, burst int) {
	if path == "/healthz" {
		return 0, 0, 0
	}
	for _, ec := range c.EndpointConfigs {
		if ec.Method == method && strings.HasPrefix(path, ec.Path) {
			burst = ec.Burst
			if burst <= 0 {
				burst = ec.Limit
			}
			return ec.Limit, ec.Window, burst
		}
	}
	return c.DefaultLimit, c.DefaultWindow, c.DefaultLimit
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

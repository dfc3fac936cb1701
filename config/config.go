package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Batch     BatchConfig
	Webhook   WebhookConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"

	// ShutdownTimeout is the grace period for in-flight requests.
	ShutdownTimeout time.Duration // default: 5s
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false (the calculator is often run locally)

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 10

	// Burst is the maximum burst size per API key.
	Burst int // default: 20
}

// CacheConfig controls the calculation response cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached responses.
	MaxEntries int // default: 1000
}

// BatchConfig controls batch calculation jobs.
type BatchConfig struct {
	// MaxItems is the maximum number of calculations per batch.
	MaxItems int // default: 100

	// MaxConcurrent is the number of calculations processed in parallel.
	MaxConcurrent int // default: 5

	// JobTTL is how long finished jobs stay queryable.
	JobTTL time.Duration // default: 1h
}

// WebhookConfig controls batch-completion webhook delivery.
type WebhookConfig struct {
	// Secret signs webhook payloads with HMAC-SHA256 when non-empty.
	Secret string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            envOr("HOLDCALC_HOST", "0.0.0.0"),
			Port:            envIntOr("HOLDCALC_PORT", 8080),
			Mode:            envOr("HOLDCALC_MODE", "release"),
			ShutdownTimeout: envDurationOr("HOLDCALC_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("HOLDCALC_AUTH_ENABLED", false),
			APIKeys: envSliceOr("HOLDCALC_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("HOLDCALC_RATE_RPS", 10.0),
			Burst:             envIntOr("HOLDCALC_RATE_BURST", 20),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("HOLDCALC_CACHE_MAX_ENTRIES", 1000),
		},
		Batch: BatchConfig{
			MaxItems:      envIntOr("HOLDCALC_BATCH_MAX_ITEMS", 100),
			MaxConcurrent: envIntOr("HOLDCALC_BATCH_CONCURRENCY", 5),
			JobTTL:        envDurationOr("HOLDCALC_BATCH_JOB_TTL", time.Hour),
		},
		Webhook: WebhookConfig{
			Secret: os.Getenv("HOLDCALC_WEBHOOK_SECRET"),
		},
		Log: LogConfig{
			Level:  envOr("HOLDCALC_LOG_LEVEL", "info"),
			Format: envOr("HOLDCALC_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}

// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Defaults live in New(); Load layers an optional YAML file and env vars on top.
// - External errors are wrapped via this package's sentinel errors.
package config

import (
	"github.com/sashabaranov/go-openai"
)

// Config contains process configuration for the scoring engine.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9090".
	Addr string `koanf:"addr"`

	// MaxKeywords caps the active keyword set of a session.
	MaxKeywords int `koanf:"max_keywords"`

	// OpenAIKey authenticates against the semantic enrichment backend.
	// When empty the engine runs without enrichment and keyword metrics
	// complete with neutral fallback values.
	OpenAIKey string `koanf:"openai_key"`

	// OpenAIModel selects the model used for enrichment calls.
	OpenAIModel string `koanf:"openai_model"`

	// EnrichmentTimeoutMS bounds a single enrichment call. A timeout is
	// treated like a failed call and yields fallback values.
	EnrichmentTimeoutMS int `koanf:"enrichment_timeout_ms"`

	// EnrichmentRetryAttempts sets how often a failed enrichment call is
	// retried before falling back.
	EnrichmentRetryAttempts int `koanf:"enrichment_retry_attempts"`

	// EnrichmentRetryDelayMS sets the initial backoff delay between retries.
	EnrichmentRetryDelayMS int `koanf:"enrichment_retry_delay_ms"`

	// EnrichmentBreakerEnabled toggles the circuit breaker around the
	// enrichment backend.
	EnrichmentBreakerEnabled bool `koanf:"enrichment_breaker_enabled"`
}

// New creates a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:                 "info",
		Addr:                     ":9090",
		MaxKeywords:              2,
		OpenAIModel:              openai.GPT4oMini,
		EnrichmentTimeoutMS:      10_000,
		EnrichmentRetryAttempts:  3,
		EnrichmentRetryDelayMS:   1_000,
		EnrichmentBreakerEnabled: true,
	}
}

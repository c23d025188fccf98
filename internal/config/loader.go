package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if SEOSCORE_CONFIG is set
//  3. env (prefix SEOSCORE_)
func Load(_ context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("SEOSCORE_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: SEOSCORE_ADDR, SEOSCORE_OPENAI_KEY, ...
	// Map env keys like SEOSCORE_MAX_KEYWORDS -> max_keywords (flat keys).
	envProvider := env.Provider("SEOSCORE_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "seoscore_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.MaxKeywords < 1:
		return fmt.Errorf("%w: max_keywords must be positive", ErrInvalidConfig)
	case c.EnrichmentTimeoutMS <= 0:
		return fmt.Errorf("%w: enrichment_timeout_ms must be positive", ErrInvalidConfig)
	case c.EnrichmentRetryAttempts < 0:
		return fmt.Errorf("%w: enrichment_retry_attempts must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Package config loads tobichat settings from .tobichat.yml with
// TOBICHAT_* environment overrides, and carries the interactive setup
// wizard.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/alukotobi/tobichat/internal/classifier"
)

// DefaultPath is where Load looks for the config file by default.
const DefaultPath = ".tobichat.yml"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (TOBICHAT_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// TOBICHAT_PROVIDER -> provider, TOBICHAT_TUNING_MAX_KEYWORDS stays
	// flat; nested keys are uncommon enough in env overrides to skip.
	if err := k.Load(env.Provider("TOBICHAT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "TOBICHAT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel(cfg.Provider)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validProviders = map[ProviderType]bool{
	ProviderLocal:     true,
	ProviderAnthropic: true,
	ProviderOpenAI:    true,
	ProviderOllama:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !validProviders[c.Provider] {
		return fmt.Errorf("invalid provider %q: must be one of local, anthropic, openai, ollama", c.Provider)
	}

	if c.Provider != ProviderLocal && c.Model == "" {
		return fmt.Errorf("model is required for provider %q", c.Provider)
	}

	if c.EmbeddingProvider != "" && c.EmbeddingProvider != ProviderLocal && !validProviders[c.EmbeddingProvider] {
		return fmt.Errorf("invalid embedding_provider %q", c.EmbeddingProvider)
	}

	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.RemoteTimeoutSecs <= 0 {
		return fmt.Errorf("remote_timeout_seconds must be positive")
	}

	if c.RequestsPerMin < 0 {
		return fmt.Errorf("requests_per_minute must be non-negative")
	}

	if c.Tuning.SimilarityThreshold < 0 || c.Tuning.SimilarityThreshold > 1 {
		return fmt.Errorf("tuning.similarity_threshold must be in [0,1]")
	}

	return nil
}

// RemoteEnabled reports whether a remote chat backend is configured.
func (c *Config) RemoteEnabled() bool {
	return c.Provider != "" && c.Provider != ProviderLocal
}

// RemoteTimeout returns the remote call bound as a duration.
func (c *Config) RemoteTimeout() time.Duration {
	return time.Duration(c.RemoteTimeoutSecs) * time.Second
}

// ClassifierTuning maps the config knobs onto the full classifier tuning
// set, leaving unreferenced knobs at their defaults.
func (c *Config) ClassifierTuning() classifier.Tuning {
	t := classifier.DefaultTuning()
	if c.Tuning.SimilarityThreshold > 0 {
		t.SimilarityThreshold = c.Tuning.SimilarityThreshold
	}
	if c.Tuning.BaseConfidence > 0 {
		t.BaseConfidence = c.Tuning.BaseConfidence
	}
	if c.Tuning.MaxKeywords > 0 {
		t.MaxKeywords = c.Tuning.MaxKeywords
	}
	return t
}

// APIKeyEnvVar returns the conventional environment variable name for
// the API key of the given provider.
func APIKeyEnvVar(provider ProviderType) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return ""
	}
}

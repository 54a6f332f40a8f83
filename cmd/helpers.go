package cmd

import (
	"fmt"
	"os"

	"github.com/alukotobi/tobichat/internal/assistant"
	"github.com/alukotobi/tobichat/internal/config"
	"github.com/alukotobi/tobichat/internal/embeddings"
	"github.com/alukotobi/tobichat/internal/llm"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `tobichat init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// buildAssistant assembles the assistant from config, wiring the remote
// backend (rate limited) when one is configured.
func buildAssistant(cfg *config.Config) (*assistant.Assistant, error) {
	tuning := cfg.ClassifierTuning()
	opts := assistant.Options{
		Model:         cfg.Model,
		Temperature:   cfg.Temperature,
		RemoteTimeout: cfg.RemoteTimeout(),
		Tuning:        &tuning,
		Seed:          cfg.Seed,
	}

	if cfg.RemoteEnabled() {
		provider, err := llm.NewProvider(string(cfg.Provider), cfg.Model)
		if err != nil {
			return nil, fmt.Errorf("creating chat backend: %w", err)
		}
		if cfg.RequestsPerMin > 0 {
			provider = llm.NewRateLimitedProvider(provider, cfg.RequestsPerMin)
		}
		opts.Provider = provider
	}

	return assistant.New(opts), nil
}

// createEmbedderFromConfig creates an embeddings.Embedder based on config.
func createEmbedderFromConfig(cfg *config.Config) (embeddings.Embedder, error) {
	provider := cfg.EmbeddingProvider
	if provider == "" {
		provider = config.ProviderOpenAI
	}

	switch provider {
	case config.ProviderOllama:
		return embeddings.NewOllamaEmbedder(cfg.EmbeddingModel, os.Getenv("OLLAMA_HOST")), nil
	case config.ProviderOpenAI:
		apiKey := os.Getenv(config.APIKeyEnvVar(config.ProviderOpenAI))
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable is required for OpenAI embeddings")
		}
		return embeddings.NewOpenAIEmbedder(apiKey, cfg.EmbeddingModel), nil
	default:
		return nil, fmt.Errorf("provider %q has no embedding support", provider)
	}
}

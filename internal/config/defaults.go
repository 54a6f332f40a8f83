package config

// defaultModels picks a chat model per provider when the config leaves
// model empty.
var defaultModels = map[ProviderType]string{
	ProviderAnthropic: "claude-sonnet-4-5-20250929",
	ProviderOpenAI:    "gpt-4o-mini",
	ProviderOllama:    "llama3.2",
}

// DefaultConfig returns a Config with sensible defaults: local-only mode
// on port 8080 with the stock classifier tuning.
func DefaultConfig() *Config {
	return &Config{
		Provider:          ProviderLocal,
		Temperature:       0.7,
		RemoteTimeoutSecs: 15,
		RequestsPerMin:    20,
		Port:              8080,
		EmbeddingProvider: ProviderOpenAI,
		EmbeddingModel:    "text-embedding-3-small",
		SemanticSearch:    false,
		Tuning: TuningConfig{
			SimilarityThreshold: 0.2,
			BaseConfidence:      0.5,
			MaxKeywords:         10,
		},
	}
}

// DefaultModel returns the stock chat model for the given provider, or
// empty for local mode.
func DefaultModel(provider ProviderType) string {
	return defaultModels[provider]
}

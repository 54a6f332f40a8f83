package config

// ProviderType identifies a chat or embedding backend.
type ProviderType string

const (
	// ProviderLocal disables the remote backend; every turn is answered
	// by the rule-based pipeline.
	ProviderLocal     ProviderType = "local"
	ProviderAnthropic ProviderType = "anthropic"
	ProviderOpenAI    ProviderType = "openai"
	ProviderOllama    ProviderType = "ollama"
)

// TuningConfig exposes the classifier knobs worth adjusting from a
// config file.
type TuningConfig struct {
	SimilarityThreshold float64 `yaml:"similarity_threshold" koanf:"similarity_threshold"`
	BaseConfidence      float64 `yaml:"base_confidence" koanf:"base_confidence"`
	MaxKeywords         int     `yaml:"max_keywords" koanf:"max_keywords"`
}

// Config is the top-level tobichat configuration, corresponding to
// .tobichat.yml.
type Config struct {
	Provider          ProviderType `yaml:"provider" koanf:"provider"`
	Model             string       `yaml:"model" koanf:"model"`
	Temperature       float64      `yaml:"temperature" koanf:"temperature"`
	RemoteTimeoutSecs int          `yaml:"remote_timeout_seconds" koanf:"remote_timeout_seconds"`
	RequestsPerMin    int          `yaml:"requests_per_minute" koanf:"requests_per_minute"`
	Port              int          `yaml:"port" koanf:"port"`
	EmbeddingProvider ProviderType `yaml:"embedding_provider" koanf:"embedding_provider"`
	EmbeddingModel    string       `yaml:"embedding_model" koanf:"embedding_model"`
	SemanticSearch    bool         `yaml:"semantic_search" koanf:"semantic_search"`
	Seed              int64        `yaml:"seed" koanf:"seed"`
	Tuning            TuningConfig `yaml:"tuning" koanf:"tuning"`
}

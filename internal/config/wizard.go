package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to .tobichat.yml.
func RunWizard() (*Config, error) {
	fmt.Println("Welcome to tobichat! Let's configure your assistant.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Backend selection.
	providerPrompt := promptui.Select{
		Label: "Select chat backend",
		Items: []string{
			"local     — rule-based pipeline only, no API key needed",
			"anthropic — Claude via the Anthropic API",
			"openai    — GPT via the OpenAI API",
			"ollama    — a model running on a local Ollama server",
		},
	}
	providerIdx, _, err := providerPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("backend selection: %w", err)
	}
	providers := []ProviderType{ProviderLocal, ProviderAnthropic, ProviderOpenAI, ProviderOllama}
	cfg.Provider = providers[providerIdx]

	// 2. Model, for remote backends.
	if cfg.Provider != ProviderLocal {
		modelPrompt := promptui.Prompt{
			Label:   "Chat model",
			Default: DefaultModel(cfg.Provider),
		}
		model, err := modelPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("model: %w", err)
		}
		cfg.Model = model

		if envVar := APIKeyEnvVar(cfg.Provider); envVar != "" && os.Getenv(envVar) == "" {
			fmt.Printf("\nNote: %s is not set. Set it before starting the server or the assistant will run local-only.\n\n", envVar)
		}
	}

	// 3. HTTP port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port for the chat widget",
		Default: strconv.Itoa(cfg.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a port between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 4. Semantic knowledge search.
	semanticPrompt := promptui.Select{
		Label: "Enable semantic knowledge search (needs an embedding backend)",
		Items: []string{"no", "yes"},
	}
	semanticIdx, _, err := semanticPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("semantic search: %w", err)
	}
	cfg.SemanticSearch = semanticIdx == 1

	if cfg.SemanticSearch {
		embedPrompt := promptui.Select{
			Label: "Select embedding backend",
			Items: []string{"openai", "ollama"},
		}
		_, embedStr, err := embedPrompt.Run()
		if err != nil {
			return nil, fmt.Errorf("embedding backend: %w", err)
		}
		cfg.EmbeddingProvider = ProviderType(embedStr)
		if cfg.EmbeddingProvider == ProviderOllama {
			cfg.EmbeddingModel = "nomic-embed-text"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultPath); err != nil {
		return nil, err
	}
	fmt.Printf("\nConfiguration saved to %s\n", DefaultPath)

	return cfg, nil
}

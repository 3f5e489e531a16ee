package config

import "fmt"

// DefaultGeminiModel is the model used when none is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// ValidProviders lists all supported LLM providers.
var ValidProviders = []string{"gemini"}

// LLMConfig configures the generative model used for unmatched queries.
type LLMConfig struct {
	Provider string `yaml:"provider"`
	APIKey   string `yaml:"api_key"`
	Model    string `yaml:"model"`
}

func (l LLMConfig) validate() error {
	if l.APIKey == "" {
		return fmt.Errorf("LLM API key not configured (set GEMINI_API_KEY or api_key)")
	}
	for _, p := range ValidProviders {
		if l.Provider == p {
			return nil
		}
	}
	return fmt.Errorf("invalid LLM provider: %s (valid: %v)", l.Provider, ValidProviders)
}

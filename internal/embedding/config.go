package embedding

import "fmt"

// Config holds embedding provider configuration.
type Config struct {
	// Provider selects which embedding provider to use.
	// Values: "openai", "gemini", "mock"
	Provider string

	OpenAI OpenAIConfig
	Gemini GeminiConfig
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "text-embedding-3-small"
	BaseURL string // Optional. Override for compatible APIs.
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "text-embedding-004"
}

// DefaultConfig returns a Config with sensible defaults. The default
// models are small, fast general-purpose sentence encoders.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "text-embedding-3-small",
		},
		Gemini: GeminiConfig{
			Model: "text-embedding-004",
		},
	}
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("QAGATE_OPENAI_API_KEY is required for the openai embedding provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("QAGATE_GEMINI_API_KEY is required for the gemini embedding provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown embedding provider: %q", c.Provider)
	}
	return nil
}

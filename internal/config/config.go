// Package config loads qagate configuration from the environment, with
// optional .env file support, and validates it before any scoring runs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/aruiz/qagate/internal/chatbot"
	"github.com/aruiz/qagate/internal/embedding"
	"github.com/aruiz/qagate/internal/quality"
)

// defaultAPIURL is the QA endpoint used when QAGATE_API_URL is unset.
const defaultAPIURL = "https://magicloops.dev/api/loop/7e391b7e-f45a-49ec-bd71-bd23b9ad711e/run"

// Config holds all qagate configuration.
type Config struct {
	// Chatbot configures the answer transport.
	Chatbot chatbot.Config

	// Quality configures the scoring engine (threshold, weights).
	Quality quality.Config

	// Embedding configures the semantic-relevance model.
	Embedding embedding.Config

	// DBPath is the response log location. Empty means the default
	// XDG data path.
	DBPath string
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Chatbot: chatbot.Config{
			BaseURL:    defaultAPIURL,
			Timeout:    10 * time.Second,
			MaxRetries: 3,
			MockDelay:  500 * time.Millisecond,
		},
		Quality:   quality.DefaultConfig(),
		Embedding: embedding.DefaultConfig(),
	}
}

// Load builds a Config from environment variables, reading a .env file
// first when present, and validates it. Invalid configuration is a hard
// error: the pipeline must not start with a bad threshold or weight set.
func Load() (Config, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("QAGATE_API_URL"); v != "" {
		cfg.Chatbot.BaseURL = v
	}
	if v := os.Getenv("QAGATE_USE_MOCK"); v != "" {
		cfg.Chatbot.UseMock = v == "true" || v == "1"
	}

	var err error
	if cfg.Chatbot.Timeout, err = envDuration("QAGATE_API_TIMEOUT", cfg.Chatbot.Timeout); err != nil {
		return Config{}, err
	}
	if cfg.Chatbot.MaxRetries, err = envUint("QAGATE_RETRY_COUNT", cfg.Chatbot.MaxRetries); err != nil {
		return Config{}, err
	}

	if cfg.Quality.Threshold, err = envFloat("QAGATE_QUALITY_THRESHOLD", cfg.Quality.Threshold); err != nil {
		return Config{}, err
	}
	if cfg.Quality.Weights.Structural, err = envFloat("QAGATE_STRUCTURAL_WEIGHT", cfg.Quality.Weights.Structural); err != nil {
		return Config{}, err
	}
	if cfg.Quality.Weights.Content, err = envFloat("QAGATE_CONTENT_WEIGHT", cfg.Quality.Weights.Content); err != nil {
		return Config{}, err
	}
	if cfg.Quality.Weights.Semantic, err = envFloat("QAGATE_SEMANTIC_WEIGHT", cfg.Quality.Weights.Semantic); err != nil {
		return Config{}, err
	}

	cfg.Embedding.Provider = ""
	if v := os.Getenv("QAGATE_EMBEDDING_PROVIDER"); v != "" {
		cfg.Embedding.Provider = v
	}
	if v := os.Getenv("QAGATE_EMBEDDING_MODEL"); v != "" {
		cfg.Embedding.OpenAI.Model = v
		cfg.Embedding.Gemini.Model = v
	}
	if v := os.Getenv("QAGATE_OPENAI_API_KEY"); v != "" {
		cfg.Embedding.OpenAI.APIKey = v
	} else if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.Embedding.OpenAI.APIKey = v
	}
	if v := os.Getenv("QAGATE_OPENAI_BASE_URL"); v != "" {
		cfg.Embedding.OpenAI.BaseURL = v
	}
	if v := os.Getenv("QAGATE_GEMINI_API_KEY"); v != "" {
		cfg.Embedding.Gemini.APIKey = v
	} else if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Embedding.Gemini.APIKey = v
	}

	// Provider discovery: when none is named, pick the first provider
	// whose API key is present, falling back to the offline mock.
	if cfg.Embedding.Provider == "" {
		switch {
		case cfg.Embedding.OpenAI.APIKey != "":
			cfg.Embedding.Provider = "openai"
		case cfg.Embedding.Gemini.APIKey != "":
			cfg.Embedding.Provider = "gemini"
		default:
			cfg.Embedding.Provider = "mock"
		}
	}

	cfg.DBPath = os.Getenv("QAGATE_DB")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every configuration invariant.
func (c Config) Validate() error {
	if c.Chatbot.BaseURL == "" {
		return fmt.Errorf("QAGATE_API_URL must not be empty")
	}
	if c.Chatbot.Timeout <= 0 {
		return fmt.Errorf("QAGATE_API_TIMEOUT must be positive, got %s", c.Chatbot.Timeout)
	}
	if err := c.Quality.Validate(); err != nil {
		return err
	}
	return c.Embedding.Validate()
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid float %q", key, v)
	}
	return f, nil
}

func envUint(key string, fallback uint64) (uint64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid count %q", key, v)
	}
	return n, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	// Accept both bare seconds ("10") and Go durations ("10s").
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}

package config

import (
	"testing"
	"time"
)

// clearEnv blanks every variable Load reads so tests see only what they set.
func clearEnv(t *testing.T) {
	t.Helper()
	keys := []string{
		"QAGATE_API_URL", "QAGATE_USE_MOCK", "QAGATE_API_TIMEOUT", "QAGATE_RETRY_COUNT",
		"QAGATE_QUALITY_THRESHOLD", "QAGATE_STRUCTURAL_WEIGHT", "QAGATE_CONTENT_WEIGHT",
		"QAGATE_SEMANTIC_WEIGHT", "QAGATE_EMBEDDING_PROVIDER", "QAGATE_EMBEDDING_MODEL",
		"QAGATE_OPENAI_API_KEY", "QAGATE_OPENAI_BASE_URL", "QAGATE_GEMINI_API_KEY",
		"QAGATE_DB", "OPENAI_API_KEY", "GEMINI_API_KEY",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Chatbot.BaseURL != defaultAPIURL {
		t.Errorf("unexpected base URL %q", cfg.Chatbot.BaseURL)
	}
	if cfg.Chatbot.Timeout != 10*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Chatbot.Timeout)
	}
	if cfg.Chatbot.MaxRetries != 3 {
		t.Errorf("unexpected retries %d", cfg.Chatbot.MaxRetries)
	}
	if cfg.Quality.Threshold != 0.85 {
		t.Errorf("unexpected threshold %v", cfg.Quality.Threshold)
	}
	if w := cfg.Quality.Weights; w.Structural != 0.20 || w.Content != 0.40 || w.Semantic != 0.40 {
		t.Errorf("unexpected weights %+v", w)
	}
	// Without any API key the provider falls back to the offline mock.
	if cfg.Embedding.Provider != "mock" {
		t.Errorf("unexpected provider %q", cfg.Embedding.Provider)
	}
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGATE_API_URL", "https://qa.example.com/ask")
	t.Setenv("QAGATE_API_TIMEOUT", "30s")
	t.Setenv("QAGATE_RETRY_COUNT", "5")
	t.Setenv("QAGATE_QUALITY_THRESHOLD", "0.9")
	t.Setenv("QAGATE_STRUCTURAL_WEIGHT", "0.1")
	t.Setenv("QAGATE_CONTENT_WEIGHT", "0.3")
	t.Setenv("QAGATE_SEMANTIC_WEIGHT", "0.6")
	t.Setenv("QAGATE_USE_MOCK", "true")
	t.Setenv("QAGATE_EMBEDDING_PROVIDER", "mock")
	t.Setenv("QAGATE_DB", "/tmp/qagate-test.db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Chatbot.BaseURL != "https://qa.example.com/ask" {
		t.Errorf("unexpected base URL %q", cfg.Chatbot.BaseURL)
	}
	if cfg.Chatbot.Timeout != 30*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Chatbot.Timeout)
	}
	if cfg.Chatbot.MaxRetries != 5 {
		t.Errorf("unexpected retries %d", cfg.Chatbot.MaxRetries)
	}
	if !cfg.Chatbot.UseMock {
		t.Error("expected mock transport")
	}
	if cfg.Quality.Threshold != 0.9 {
		t.Errorf("unexpected threshold %v", cfg.Quality.Threshold)
	}
	if w := cfg.Quality.Weights; w.Structural != 0.1 || w.Content != 0.3 || w.Semantic != 0.6 {
		t.Errorf("unexpected weights %+v", w)
	}
	if cfg.DBPath != "/tmp/qagate-test.db" {
		t.Errorf("unexpected db path %q", cfg.DBPath)
	}
}

func TestLoad_BareSecondsTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGATE_API_TIMEOUT", "45")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Chatbot.Timeout != 45*time.Second {
		t.Errorf("unexpected timeout %s", cfg.Chatbot.Timeout)
	}
}

func TestLoad_ProviderDiscovery(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGATE_OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.Provider != "openai" {
		t.Errorf("expected openai, got %q", cfg.Embedding.Provider)
	}

	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "g-test")

	cfg, err = Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.Provider != "gemini" {
		t.Errorf("expected gemini, got %q", cfg.Embedding.Provider)
	}
}

func TestLoad_NamedProviderNeedsKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGATE_EMBEDDING_PROVIDER", "openai")

	if _, err := Load(); err == nil {
		t.Error("expected error for openai provider without API key")
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"bad threshold syntax", "QAGATE_QUALITY_THRESHOLD", "high"},
		{"threshold out of range", "QAGATE_QUALITY_THRESHOLD", "1.5"},
		{"bad weight", "QAGATE_CONTENT_WEIGHT", "lots"},
		{"weights no longer sum to one", "QAGATE_STRUCTURAL_WEIGHT", "0.5"},
		{"bad retry count", "QAGATE_RETRY_COUNT", "-1"},
		{"bad timeout", "QAGATE_API_TIMEOUT", "soon"},
		{"unknown provider", "QAGATE_EMBEDDING_PROVIDER", "tfidf"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tc.key, tc.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tc.key, tc.value)
			}
		})
	}
}

func TestLoad_ZeroTimeoutRejected(t *testing.T) {
	clearEnv(t)
	t.Setenv("QAGATE_API_TIMEOUT", "0")

	if _, err := Load(); err == nil {
		t.Error("expected error for zero timeout")
	}
}

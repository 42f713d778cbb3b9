package embedding

import (
	"context"
	"strings"
	"testing"
)

func TestNew_Mock(t *testing.T) {
	e, err := New(context.Background(), Config{Provider: "mock"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.ModelID() != "mock" {
		t.Errorf("unexpected model id %q", e.ModelID())
	}
}

func TestNew_OpenAI(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OpenAI.APIKey = "sk-test"

	e, err := New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if e.ModelID() != "text-embedding-3-small" {
		t.Errorf("unexpected model id %q", e.ModelID())
	}
}

func TestNew_OpenAIMissingKey(t *testing.T) {
	if _, err := New(context.Background(), Config{Provider: "openai"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNew_GeminiMissingKey(t *testing.T) {
	if _, err := New(context.Background(), Config{Provider: "gemini"}); err == nil {
		t.Error("expected error for missing API key")
	}
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), Config{Provider: "bert"})
	if err == nil {
		t.Fatal("expected error for unknown provider")
	}
	if !strings.Contains(err.Error(), "bert") {
		t.Errorf("error should name the provider, got %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"mock needs nothing", Config{Provider: "mock"}, false},
		{"openai with key", Config{Provider: "openai", OpenAI: OpenAIConfig{APIKey: "sk"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g"}}, false},
		{"gemini without key", Config{Provider: "gemini"}, true},
		{"unknown provider", Config{Provider: "word2vec"}, true},
	}

	for _, tc := range cases {
		err := tc.cfg.Validate()
		if (err != nil) != tc.wantErr {
			t.Errorf("%s: got err=%v, wantErr=%v", tc.name, err, tc.wantErr)
		}
	}
}

package embedding

import (
	"context"
	"fmt"
)

// New creates an Embedder from configuration.
func New(ctx context.Context, cfg Config) (Embedder, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIEmbedder(cfg.OpenAI)
	case "gemini":
		return NewGeminiEmbedder(ctx, cfg.Gemini)
	case "mock":
		return NewMockEmbedder(), nil
	default:
		return nil, fmt.Errorf("unknown embedding provider: %q", cfg.Provider)
	}
}

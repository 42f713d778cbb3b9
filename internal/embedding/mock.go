package embedding

import (
	"context"
	"hash/fnv"
	"strings"
	"sync"
)

// mockDim is the vector width of the mock embedder.
const mockDim = 64

// MockEmbedder is a deterministic Embedder for testing. It hashes each
// lowercase token into a fixed-width bag-of-words vector, so texts that
// share words score high cosine similarity and identical texts score 1.0.
// It records all calls and can be forced to fail.
type MockEmbedder struct {
	mu    sync.Mutex
	Calls [][]string

	// Err, when set, is returned by every Embed call.
	Err error
}

// NewMockEmbedder creates a MockEmbedder.
func NewMockEmbedder() *MockEmbedder {
	return &MockEmbedder{}
}

func (m *MockEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, texts)
	err := m.Err
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}

	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = hashVector(t)
	}
	return out, nil
}

// ModelID returns "mock".
func (m *MockEmbedder) ModelID() string {
	return "mock"
}

// CallCount returns the number of Embed calls made.
func (m *MockEmbedder) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// hashVector folds the text's tokens into a fixed-width vector.
func hashVector(text string) []float32 {
	v := make([]float32, mockDim)
	for _, tok := range strings.Fields(strings.ToLower(text)) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		v[h.Sum32()%mockDim]++
	}
	return v
}

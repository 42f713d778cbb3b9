package chatbot

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/aruiz/qagate/internal/quality"
)

// MockClient is a deterministic Client for testing and for running the
// pipeline when the real endpoint is not configured. It returns a canned
// QA-automation answer with simulated latency and records all questions.
type MockClient struct {
	delay time.Duration

	mu        sync.Mutex
	Questions []string
}

// NewMockClient creates a MockClient with the given simulated delay.
func NewMockClient(delay time.Duration) *MockClient {
	return &MockClient{delay: delay}
}

func (m *MockClient) Ask(ctx context.Context, question string) (*quality.Response, error) {
	m.mu.Lock()
	m.Questions = append(m.Questions, question)
	m.mu.Unlock()

	start := time.Now()
	if m.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(m.delay):
		}
	}
	responseTime := time.Since(start).Seconds()

	answer := fmt.Sprintf(
		"This is a mock response for the question: %q. "+
			"In a real scenario, this would be the LLM's response about QA automation.",
		question,
	)

	data := map[string]any{
		"answer": answer,
		"best_practices": []any{
			"Use automation for regression testing",
			"Implement CI/CD pipelines",
			"Write maintainable test code",
			"Follow the pyramid testing strategy",
			"Use meaningful assertions",
			"Test behavior, not implementation",
			"Keep tests independent",
		},
		"recommended_frameworks": []any{
			"pytest (Python)",
			"unittest (Python)",
			"Selenium (Browser automation)",
			"Cypress (Browser automation)",
			"Robot Framework",
			"TestNG (Java)",
			"JUnit (Java)",
		},
	}

	statusCode := http.StatusOK

	return &quality.Response{
		Data:         data,
		StatusCode:   &statusCode,
		ResponseTime: &responseTime,
		Question:     question,
	}, nil
}

// HealthCheck always succeeds for the mock.
func (m *MockClient) HealthCheck(_ context.Context) bool {
	return true
}

// Close is a no-op for the mock.
func (m *MockClient) Close() error {
	return nil
}

// CallCount returns the number of Ask calls made.
func (m *MockClient) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Questions)
}

// Package chatbot fetches answers from the conversational QA endpoint.
// It owns transport concerns — timeout, retry, response shaping — so the
// scoring core never sees a network.
package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	retry "github.com/sethvargo/go-retry"

	"github.com/aruiz/qagate/internal/quality"
)

// Client fetches an answer for a question.
type Client interface {
	// Ask sends the question to the endpoint and returns the raw answer
	// record with transport metadata attached.
	Ask(ctx context.Context, question string) (*quality.Response, error)

	// HealthCheck reports whether the endpoint is reachable and answering.
	HealthCheck(ctx context.Context) bool

	// Close releases transport resources.
	Close() error
}

// ErrEmptyBody indicates the endpoint returned a 2xx response with no
// usable body.
var ErrEmptyBody = errors.New("empty response body from API")

// Config holds transport configuration.
type Config struct {
	// BaseURL is the QA endpoint to POST questions to.
	BaseURL string

	// Timeout bounds a single request attempt.
	Timeout time.Duration

	// MaxRetries is the number of additional attempts after the first
	// for transient failures (429, 5xx, network errors).
	MaxRetries uint64

	// UseMock selects the canned client instead of the HTTP transport.
	UseMock bool

	// MockDelay is the simulated latency of the canned client.
	MockDelay time.Duration
}

// New creates a Client from configuration: the canned client when
// UseMock is set, the HTTP transport otherwise.
func New(cfg Config) Client {
	if cfg.UseMock {
		return NewMockClient(cfg.MockDelay)
	}
	return NewHTTPClient(cfg)
}

// HTTPClient is the real transport. It retries transient failures with
// Fibonacci backoff and measures response time across all attempts.
type HTTPClient struct {
	baseURL    string
	maxRetries uint64
	httpClient *http.Client
}

// NewHTTPClient creates an HTTPClient.
func NewHTTPClient(cfg Config) *HTTPClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &HTTPClient{
		baseURL:    cfg.BaseURL,
		maxRetries: cfg.MaxRetries,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Ask sends the question and wraps the endpoint's JSON object into a
// quality.Response. Transport failures, non-success status codes after
// retries, and malformed bodies propagate as errors — the caller decides
// whether to score a degraded record or give up.
func (c *HTTPClient) Ask(ctx context.Context, question string) (*quality.Response, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question must not be empty")
	}

	start := time.Now()

	var statusCode int
	var body []byte

	b := retry.NewFibonacci(1 * time.Second)
	err := retry.Do(ctx, retry.WithMaxRetries(c.maxRetries, b), func(ctx context.Context) error {
		code, data, err := c.post(ctx, question)
		if err != nil {
			// Network errors are treated as transient.
			return retry.RetryableError(err)
		}
		if code == http.StatusTooManyRequests || code >= 500 {
			return retry.RetryableError(fmt.Errorf("API returned status %d", code))
		}
		statusCode = code
		body = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ask %q: %w", truncate(question, 50), err)
	}

	responseTime := time.Since(start).Seconds()

	if statusCode < 200 || statusCode >= 300 {
		return nil, fmt.Errorf("ask %q: API returned status %d", truncate(question, 50), statusCode)
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("ask %q: %w", truncate(question, 50), ErrEmptyBody)
	}

	var data map[string]any
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("ask %q: invalid JSON response: %w", truncate(question, 50), err)
	}

	slog.Debug("answer received", "question", truncate(question, 50), "seconds", responseTime)

	return &quality.Response{
		Data:         data,
		StatusCode:   &statusCode,
		ResponseTime: &responseTime,
		Question:     question,
	}, nil
}

// post performs one request attempt.
func (c *HTTPClient) post(ctx context.Context, question string) (int, []byte, error) {
	payload, err := json.Marshal(map[string]string{"question": question})
	if err != nil {
		return 0, nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return 0, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read body: %w", err)
	}

	return resp.StatusCode, body, nil
}

// HealthCheck asks a trivial question and checks for a 200.
func (c *HTTPClient) HealthCheck(ctx context.Context) bool {
	resp, err := c.Ask(ctx, "test")
	if err != nil {
		slog.Warn("health check failed", "error", err)
		return false
	}
	return resp.StatusCode != nil && *resp.StatusCode == http.StatusOK
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}

// truncate shortens s for log and error messages.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package embedding

import "fmt"

// ErrRateLimit indicates the provider returned a rate limit error (429).
type ErrRateLimit struct {
	Err error
}

func (e *ErrRateLimit) Error() string {
	return fmt.Sprintf("embedding rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrUnavailable indicates the embedding provider is down or unreachable.
type ErrUnavailable struct {
	Err error
}

func (e *ErrUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("embedding provider unavailable: %v", e.Err)
	}
	return "embedding provider unavailable"
}

func (e *ErrUnavailable) Unwrap() error { return e.Err }

// ErrInvalidResult indicates the provider returned a malformed embedding
// response (wrong vector count, empty vectors).
type ErrInvalidResult struct {
	Err error
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid embedding result: %v", e.Err)
}

func (e *ErrInvalidResult) Unwrap() error { return e.Err }

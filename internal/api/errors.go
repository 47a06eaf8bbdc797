package api

import (
	"fmt"
)

// Error represents a non-2xx response from the Voicenotes API.
// It carries everything the public classifier needs: the HTTP status,
// the decoded error envelope, the Retry-After header value (if any),
// and the request path the failure occurred on.
type Error struct {
	StatusCode int
	Message    string
	Code       string
	Details    map[string]any
	RetryAfter int // seconds, from the Retry-After header on 429 responses
	Path       string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// NetworkError represents a failure before any response was obtained
// (DNS, connection, TLS, context cancellation). These are never retried.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

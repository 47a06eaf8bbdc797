package api

import (
	"context"
	"time"
)

// RetryConfig configures retry behavior for failed HTTP requests.
//
// The retry loop resubmits any request whose response status is in the
// retryable set, including POSTs. The Voicenotes API has no idempotency-key
// mechanism, so a retried create can duplicate a resource if the first
// attempt succeeded server-side; callers who cannot tolerate that should
// set MaxRetries to 0 on write-heavy clients.
type RetryConfig struct {
	// MaxRetries is the maximum number of retry attempts after the
	// initial request. 0 disables retries.
	MaxRetries int
	// BaseDelay is the delay before the first retry. The delay doubles
	// on each subsequent attempt (BaseDelay × 2^attempt, no jitter).
	BaseDelay time.Duration
	// RetryableStatuses is the set of HTTP status codes that trigger a retry.
	RetryableStatuses []int
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:        3,
		BaseDelay:         time.Second,
		RetryableStatuses: []int{408, 429, 500, 502, 503, 504},
	}
}

// ShouldRetry reports whether a request that has already been attempted
// attempt+1 times and failed with statusCode should be resubmitted.
func (r *RetryConfig) ShouldRetry(attempt int, statusCode int) bool {
	if attempt >= r.MaxRetries {
		return false
	}
	for _, s := range r.RetryableStatuses {
		if s == statusCode {
			return true
		}
	}
	return false
}

// Delay returns the backoff delay before retry number attempt+1.
func (r *RetryConfig) Delay(attempt int) time.Duration {
	return r.BaseDelay * (1 << attempt)
}

// Wait sleeps for the backoff delay, returning early if the context is
// cancelled.
func (r *RetryConfig) Wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.Delay(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

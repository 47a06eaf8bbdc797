package voicenotes

import (
	"net/http"
	"time"
)

// Default client settings. Retry defaults match the hosted API's documented
// recommendations: three retries with a one second base delay on transient
// statuses.
const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRetries   = 3
	defaultRetryDelay   = time.Second
	defaultWaitTimeout  = 2 * time.Minute
	defaultPollInterval = 2 * time.Second
)

// defaultRetryOn returns the default retryable status set.
func defaultRetryOn() []int {
	return []int{408, 429, 500, 502, 503, 504}
}

// clientConfig holds configuration for the client. It is assembled once
// in New by merging options over defaults and is immutable afterwards.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	maxRetries int
	retryDelay time.Duration
	retryOn    []int
}

// waitConfig holds configuration for transcription polling.
type waitConfig struct {
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// WaitOption configures transcription waiting.
type WaitOption func(*waitConfig)

// WithBaseURL overrides the base URL resolved from the credential prefix.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client. When set, WithTimeout is
// ignored; the custom client's own timeout applies.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithMaxRetries sets the maximum number of retries for transient failures.
// 0 disables retries entirely.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		if count >= 0 {
			c.maxRetries = count
		}
	}
}

// WithRetryDelay sets the base backoff delay. The delay doubles on each
// subsequent retry.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		c.retryDelay = delay
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithWaitTimeout sets the overall timeout for WaitForTranscription.
func WithWaitTimeout(timeout time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the polling interval for WaitForTranscription.
func WithPollInterval(interval time.Duration) WaitOption {
	return func(c *waitConfig) {
		c.pollInterval = interval
	}
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

// Default transport settings.
const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "voicenotes-go/1.0.0"
)

// Config configures the API client.
type Config struct {
	BaseURL    string
	APIKey     string
	APISecret  string
	UserAgent  string
	HTTPClient *http.Client
	Retry      *RetryConfig
}

// Client is the HTTP transport for the Voicenotes API. It owns header
// injection, JSON encoding, the retry loop, and error-envelope parsing.
// All configuration is immutable after NewClient returns, so a single
// Client is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	apiSecret  string
	userAgent  string
	httpClient *http.Client
	retry      *RetryConfig
}

// NewClient creates a new API client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.APISecret == "" {
		return nil, fmt.Errorf("API secret is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}

	c := &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		apiSecret: cfg.APISecret,
		userAgent: cfg.UserAgent,
		retry:     cfg.Retry,
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.retry == nil {
		c.retry = DefaultRetryConfig()
	}
	c.httpClient = cfg.HTTPClient
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	return c, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Retry returns the retry configuration.
func (c *Client) Retry() *RetryConfig {
	return c.retry
}

// Do sends a JSON request and decodes the JSON response body into result.
// Responses with a retryable status code are resubmitted with exponential
// backoff per the retry configuration; the marshaled body is replayed
// byte-for-byte on every attempt. Failures that produce no response
// (network errors) propagate immediately as *NetworkError without retry.
func (c *Client) Do(ctx context.Context, method, path string, body, result any) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path

	for attempt := 0; ; attempt++ {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("X-Api-Key", c.apiKey)
		req.Header.Set("X-Api-Secret", c.apiSecret)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return &NetworkError{Err: err, URL: url}
		}

		if c.retry.ShouldRetry(attempt, resp.StatusCode) {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
			if err := c.retry.Wait(ctx, attempt); err != nil {
				return &NetworkError{Err: err, URL: url}
			}
			continue
		}

		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return c.parseErrorResponse(resp, path)
		}

		if result != nil {
			if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	}
}

// parseErrorResponse decodes the {"error": {...}} envelope into an *Error.
// A body that is not valid JSON degrades to the raw text as the message.
func (c *Client) parseErrorResponse(resp *http.Response, path string) error {
	body, _ := io.ReadAll(resp.Body)

	apiErr := &Error{
		StatusCode: resp.StatusCode,
		Path:       path,
	}

	if ra := resp.Header.Get("Retry-After"); ra != "" {
		if secs, err := strconv.Atoi(ra); err == nil {
			apiErr.RetryAfter = secs
		}
	}

	var envelope struct {
		Error struct {
			Message string         `json:"message"`
			Code    string         `json:"code"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		apiErr.Message = envelope.Error.Message
		apiErr.Code = envelope.Error.Code
		apiErr.Details = envelope.Error.Details
	} else {
		apiErr.Message = string(bytes.TrimSpace(body))
	}

	return apiErr
}

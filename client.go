package voicenotes

import (
	"net/http"

	"github.com/voicenotes/client-go/internal/api"
)

// Client is the main Voicenotes API client. It is safe for concurrent use:
// all configuration is immutable after New returns, and each request
// carries its own attempt state.
type Client struct {
	apiClient *api.Client

	voicenotes *VoicenotesService
	webhooks   *WebhooksService
	apiKeys    *APIKeysService
	account    *AccountService
}

// buildAPIClient creates and configures a transport client from the
// given credentials and config.
func buildAPIClient(apiKey, apiSecret string, cfg *clientConfig) (*api.Client, error) {
	httpClient := cfg.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.timeout}
	}

	return api.NewClient(api.Config{
		BaseURL:    cfg.baseURL,
		APIKey:     apiKey,
		APISecret:  apiSecret,
		UserAgent:  cfg.userAgent,
		HTTPClient: httpClient,
		Retry: &api.RetryConfig{
			MaxRetries:        cfg.maxRetries,
			BaseDelay:         cfg.retryDelay,
			RetryableStatuses: cfg.retryOn,
		},
	})
}

// New creates a new Voicenotes client from an API key and secret.
// The key prefix selects the environment: sk_live_ keys talk to the
// production API, sk_test_ keys to the sandbox.
func New(apiKey, apiSecret string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if apiSecret == "" {
		return nil, ErrMissingAPISecret
	}

	cfg := &clientConfig{
		baseURL:    resolveBaseURL(apiKey),
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
		retryOn:    defaultRetryOn(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, apiSecret, cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{apiClient: apiClient}
	c.voicenotes = &VoicenotesService{api: apiClient}
	c.webhooks = &WebhooksService{api: apiClient}
	c.apiKeys = &APIKeysService{api: apiClient}
	c.account = &AccountService{api: apiClient}

	return c, nil
}

// Voicenotes returns the voicenotes accessor.
func (c *Client) Voicenotes() *VoicenotesService {
	return c.voicenotes
}

// Webhooks returns the webhooks accessor.
func (c *Client) Webhooks() *WebhooksService {
	return c.webhooks
}

// APIKeys returns the API keys accessor.
func (c *Client) APIKeys() *APIKeysService {
	return c.apiKeys
}

// Account returns the account accessor.
func (c *Client) Account() *AccountService {
	return c.account
}

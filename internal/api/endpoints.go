package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// dataResponse is the {"data": T} success envelope.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// listResponse is the success envelope for paginated collections.
type listResponse[T any] struct {
	Data       []T            `json:"data"`
	Pagination *PaginationDTO `json:"pagination"`
}

// ListVoicenotes retrieves one page of voicenotes.
func (c *Client) ListVoicenotes(ctx context.Context, q ListVoicenotesQuery) ([]VoicenoteDTO, *PaginationDTO, error) {
	values := url.Values{}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.From != "" {
		values.Set("from", q.From)
	}
	if q.To != "" {
		values.Set("to", q.To)
	}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))

	var result listResponse[VoicenoteDTO]
	if err := c.Do(ctx, "GET", "/voicenotes?"+values.Encode(), nil, &result); err != nil {
		return nil, nil, err
	}
	return result.Data, result.Pagination, nil
}

// GetVoicenote retrieves a single voicenote by id.
func (c *Client) GetVoicenote(ctx context.Context, id string) (*VoicenoteDTO, error) {
	path := fmt.Sprintf("/voicenotes/%s", url.PathEscape(id))
	var result dataResponse[VoicenoteDTO]
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// UpdateVoicenote updates mutable voicenote fields.
func (c *Client) UpdateVoicenote(ctx context.Context, id string, req UpdateVoicenoteRequest) (*VoicenoteDTO, error) {
	path := fmt.Sprintf("/voicenotes/%s", url.PathEscape(id))
	var result dataResponse[VoicenoteDTO]
	if err := c.Do(ctx, "PATCH", path, req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// DeleteVoicenote deletes a voicenote and its transcription.
func (c *Client) DeleteVoicenote(ctx context.Context, id string) error {
	path := fmt.Sprintf("/voicenotes/%s", url.PathEscape(id))
	return c.Do(ctx, "DELETE", path, nil, nil)
}

// GetTranscription retrieves the transcription of a voicenote.
func (c *Client) GetTranscription(ctx context.Context, voicenoteID string) (*TranscriptionDTO, error) {
	path := fmt.Sprintf("/voicenotes/%s/transcription", url.PathEscape(voicenoteID))
	var result dataResponse[TranscriptionDTO]
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// ListWebhooks retrieves all registered webhooks.
func (c *Client) ListWebhooks(ctx context.Context) ([]WebhookDTO, error) {
	var result dataResponse[[]WebhookDTO]
	if err := c.Do(ctx, "GET", "/webhooks", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateWebhook registers a new webhook endpoint.
func (c *Client) CreateWebhook(ctx context.Context, req CreateWebhookRequest) (*WebhookDTO, error) {
	var result dataResponse[WebhookDTO]
	if err := c.Do(ctx, "POST", "/webhooks", req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// GetWebhook retrieves a webhook by id.
func (c *Client) GetWebhook(ctx context.Context, id string) (*WebhookDTO, error) {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))
	var result dataResponse[WebhookDTO]
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// UpdateWebhook updates a webhook's URL, events, or enabled flag.
func (c *Client) UpdateWebhook(ctx context.Context, id string, req UpdateWebhookRequest) (*WebhookDTO, error) {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))
	var result dataResponse[WebhookDTO]
	if err := c.Do(ctx, "PATCH", path, req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// DeleteWebhook removes a webhook registration.
func (c *Client) DeleteWebhook(ctx context.Context, id string) error {
	path := fmt.Sprintf("/webhooks/%s", url.PathEscape(id))
	return c.Do(ctx, "DELETE", path, nil, nil)
}

// ListAPIKeys retrieves all API keys. Secrets are never included.
func (c *Client) ListAPIKeys(ctx context.Context) ([]APIKeyDTO, error) {
	var result dataResponse[[]APIKeyDTO]
	if err := c.Do(ctx, "GET", "/api-keys", nil, &result); err != nil {
		return nil, err
	}
	return result.Data, nil
}

// CreateAPIKey creates a new API key. The response is the only time the
// server returns the key's secret.
func (c *Client) CreateAPIKey(ctx context.Context, req CreateAPIKeyRequest) (*APIKeyDTO, error) {
	var result dataResponse[APIKeyDTO]
	if err := c.Do(ctx, "POST", "/api-keys", req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// GetAPIKey retrieves an API key by id, without its secret.
func (c *Client) GetAPIKey(ctx context.Context, id string) (*APIKeyDTO, error) {
	path := fmt.Sprintf("/api-keys/%s", url.PathEscape(id))
	var result dataResponse[APIKeyDTO]
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// DeleteAPIKey revokes an API key.
func (c *Client) DeleteAPIKey(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api-keys/%s", url.PathEscape(id))
	return c.Do(ctx, "DELETE", path, nil, nil)
}

// GetAccount retrieves the tenant account.
func (c *Client) GetAccount(ctx context.Context) (*AccountDTO, error) {
	var result dataResponse[AccountDTO]
	if err := c.Do(ctx, "GET", "/account", nil, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// UpdateAccount updates mutable account fields.
func (c *Client) UpdateAccount(ctx context.Context, req UpdateAccountRequest) (*AccountDTO, error) {
	var result dataResponse[AccountDTO]
	if err := c.Do(ctx, "PATCH", "/account", req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

// GenerateToken issues a short-lived delegated JWT for a frontend identity.
func (c *Client) GenerateToken(ctx context.Context, req GenerateTokenRequest) (*TokenDTO, error) {
	var result dataResponse[TokenDTO]
	if err := c.Do(ctx, "POST", "/auth/tokens", req, &result); err != nil {
		return nil, err
	}
	return &result.Data, nil
}

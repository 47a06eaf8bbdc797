package voicenotes

import (
	"context"
	"time"

	"github.com/voicenotes/client-go/internal/api"
)

// WebhookEvent represents the type of event that triggers a webhook.
type WebhookEvent string

const (
	// WebhookEventVoicenoteCreated is triggered when a voicenote is uploaded.
	WebhookEventVoicenoteCreated WebhookEvent = "voicenote.created"
	// WebhookEventVoicenoteDeleted is triggered when a voicenote is deleted.
	WebhookEventVoicenoteDeleted WebhookEvent = "voicenote.deleted"
	// WebhookEventTranscriptionCompleted is triggered when a transcription finishes.
	WebhookEventTranscriptionCompleted WebhookEvent = "transcription.completed"
	// WebhookEventTranscriptionFailed is triggered when a transcription fails.
	WebhookEventTranscriptionFailed WebhookEvent = "transcription.failed"
)

// Webhook represents a webhook registration.
type Webhook struct {
	ID string
	// URL is the endpoint that receives webhook deliveries.
	URL    string
	Events []WebhookEvent
	// Secret is the shared signing secret for verifying deliveries.
	Secret    string
	Enabled   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// WebhooksService provides access to webhook registrations.
type WebhooksService struct {
	api *api.Client
}

// webhookFromDTO converts a wire DTO to the public type.
func webhookFromDTO(dto *api.WebhookDTO) *Webhook {
	if dto == nil {
		return nil
	}
	w := &Webhook{
		ID:        dto.ID,
		URL:       dto.URL,
		Secret:    dto.Secret,
		Enabled:   dto.Enabled,
		CreatedAt: dto.CreatedAt,
		UpdatedAt: dto.UpdatedAt,
	}
	w.Events = make([]WebhookEvent, len(dto.Events))
	for i, e := range dto.Events {
		w.Events[i] = WebhookEvent(e)
	}
	return w
}

// List retrieves all webhook registrations.
func (s *WebhooksService) List(ctx context.Context) ([]*Webhook, error) {
	dtos, err := s.api.ListWebhooks(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	webhooks := make([]*Webhook, len(dtos))
	for i := range dtos {
		webhooks[i] = webhookFromDTO(&dtos[i])
	}
	return webhooks, nil
}

// WebhookCreateParams configures a new webhook registration.
type WebhookCreateParams struct {
	URL    string
	Events []WebhookEvent
}

// Create registers a new webhook endpoint. The returned webhook carries
// the signing secret to use with NewWebhookValidator.
func (s *WebhooksService) Create(ctx context.Context, params WebhookCreateParams) (*Webhook, error) {
	events := make([]string, len(params.Events))
	for i, e := range params.Events {
		events[i] = string(e)
	}
	dto, err := s.api.CreateWebhook(ctx, api.CreateWebhookRequest{
		URL:    params.URL,
		Events: events,
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return webhookFromDTO(dto), nil
}

// Item returns a handle addressing a single webhook by id.
func (s *WebhooksService) Item(id string) *WebhookHandle {
	return &WebhookHandle{svc: s, id: id}
}

// WebhookHandle addresses a single webhook.
type WebhookHandle struct {
	svc *WebhooksService
	id  string
}

// ID returns the webhook id this handle addresses.
func (h *WebhookHandle) ID() string {
	return h.id
}

// Get retrieves the webhook.
func (h *WebhookHandle) Get(ctx context.Context) (*Webhook, error) {
	dto, err := h.svc.api.GetWebhook(ctx, h.id)
	if err != nil {
		return nil, classifyError(err)
	}
	return webhookFromDTO(dto), nil
}

// WebhookUpdateParams holds mutable webhook fields. Nil fields are left
// unchanged.
type WebhookUpdateParams struct {
	URL     *string
	Events  []WebhookEvent
	Enabled *bool
}

// Update modifies the webhook and returns the updated registration.
func (h *WebhookHandle) Update(ctx context.Context, params WebhookUpdateParams) (*Webhook, error) {
	req := api.UpdateWebhookRequest{
		URL:     params.URL,
		Enabled: params.Enabled,
	}
	if params.Events != nil {
		req.Events = make([]string, len(params.Events))
		for i, e := range params.Events {
			req.Events[i] = string(e)
		}
	}
	dto, err := h.svc.api.UpdateWebhook(ctx, h.id, req)
	if err != nil {
		return nil, classifyError(err)
	}
	return webhookFromDTO(dto), nil
}

// Delete removes the webhook registration.
func (h *WebhookHandle) Delete(ctx context.Context) error {
	if err := h.svc.api.DeleteWebhook(ctx, h.id); err != nil {
		return classifyError(err)
	}
	return nil
}

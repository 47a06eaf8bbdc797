package api

import (
	"time"
)

// PaginationDTO represents the pagination block on list responses.
type PaginationDTO struct {
	Page    int  `json:"page"`
	Limit   int  `json:"limit"`
	Total   int  `json:"total"`
	HasMore bool `json:"has_more"`
}

// VoicenoteDTO represents a voicenote resource on the wire.
type VoicenoteDTO struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	DurationSeconds float64   `json:"duration_seconds"`
	Status          string    `json:"status"`
	Tags            []string  `json:"tags,omitempty"`
	TranscriptionID string    `json:"transcription_id,omitempty"`
	RecordedAt      time.Time `json:"recorded_at"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TranscriptionDTO represents a transcription resource on the wire.
type TranscriptionDTO struct {
	ID          string    `json:"id"`
	VoicenoteID string    `json:"voicenote_id"`
	Status      string    `json:"status"`
	Text        string    `json:"text"`
	Language    string    `json:"language,omitempty"`
	Confidence  float64   `json:"confidence,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// WebhookDTO represents a webhook resource on the wire.
type WebhookDTO struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Events    []string  `json:"events"`
	Secret    string    `json:"secret,omitempty"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// APIKeyDTO represents an API key resource on the wire. Secret is only
// populated on the create response; the server never returns it again.
type APIKeyDTO struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Prefix     string     `json:"prefix"`
	Scopes     []string   `json:"scopes,omitempty"`
	Secret     string     `json:"secret,omitempty"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// AccountDTO represents the account resource on the wire.
type AccountDTO struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Plan            string    `json:"plan"`
	MinutesUsed     float64   `json:"minutes_used"`
	MinutesIncluded float64   `json:"minutes_included"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TokenDTO represents the POST /auth/tokens response payload.
type TokenDTO struct {
	JWTToken  string `json:"jwt_token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

// ListVoicenotesQuery holds query parameters for GET /voicenotes.
type ListVoicenotesQuery struct {
	Status string
	From   string // ISO 8601 date, inclusive lower bound on recorded_at
	To     string // ISO 8601 date, inclusive upper bound on recorded_at
	Page   int
	Limit  int
}

// UpdateVoicenoteRequest represents the PATCH /voicenotes/{id} body.
type UpdateVoicenoteRequest struct {
	Title *string  `json:"title,omitempty"`
	Tags  []string `json:"tags,omitempty"`
}

// CreateWebhookRequest represents the POST /webhooks body.
type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

// UpdateWebhookRequest represents the PATCH /webhooks/{id} body.
type UpdateWebhookRequest struct {
	URL     *string  `json:"url,omitempty"`
	Events  []string `json:"events,omitempty"`
	Enabled *bool    `json:"enabled,omitempty"`
}

// CreateAPIKeyRequest represents the POST /api-keys body.
type CreateAPIKeyRequest struct {
	Name   string   `json:"name"`
	Scopes []string `json:"scopes,omitempty"`
}

// UpdateAccountRequest represents the PATCH /account body.
type UpdateAccountRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}

// GenerateTokenRequest represents the POST /auth/tokens body.
type GenerateTokenRequest struct {
	Identity  string   `json:"identity"`
	ExpiresIn int      `json:"expires_in,omitempty"`
	Scopes    []string `json:"scopes,omitempty"`
}

package voicenotes

import (
	"context"
	"time"

	"github.com/voicenotes/client-go/internal/api"
)

// APIKey represents an API key.
type APIKey struct {
	ID   string
	Name string
	// Prefix is the non-sensitive leading portion of the key, e.g. "sk_live_3f".
	Prefix string
	Scopes []string
	// Secret is the full key material. The server returns it only in the
	// create response; Get and List always leave it empty, and the client
	// never caches it.
	Secret     string
	LastUsedAt *time.Time
	CreatedAt  time.Time
}

// APIKeysService provides access to API key management.
type APIKeysService struct {
	api *api.Client
}

// apiKeyFromDTO converts a wire DTO to the public type.
func apiKeyFromDTO(dto *api.APIKeyDTO) *APIKey {
	if dto == nil {
		return nil
	}
	return &APIKey{
		ID:         dto.ID,
		Name:       dto.Name,
		Prefix:     dto.Prefix,
		Scopes:     dto.Scopes,
		Secret:     dto.Secret,
		LastUsedAt: dto.LastUsedAt,
		CreatedAt:  dto.CreatedAt,
	}
}

// List retrieves all API keys, without secrets.
func (s *APIKeysService) List(ctx context.Context) ([]*APIKey, error) {
	dtos, err := s.api.ListAPIKeys(ctx)
	if err != nil {
		return nil, classifyError(err)
	}
	keys := make([]*APIKey, len(dtos))
	for i := range dtos {
		keys[i] = apiKeyFromDTO(&dtos[i])
	}
	return keys, nil
}

// APIKeyCreateParams configures a new API key.
type APIKeyCreateParams struct {
	Name   string
	Scopes []string
}

// Create creates a new API key. The returned key's Secret is the only
// copy the server will ever hand out; store it immediately.
func (s *APIKeysService) Create(ctx context.Context, params APIKeyCreateParams) (*APIKey, error) {
	dto, err := s.api.CreateAPIKey(ctx, api.CreateAPIKeyRequest{
		Name:   params.Name,
		Scopes: params.Scopes,
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return apiKeyFromDTO(dto), nil
}

// Item returns a handle addressing a single API key by id.
func (s *APIKeysService) Item(id string) *APIKeyHandle {
	return &APIKeyHandle{svc: s, id: id}
}

// APIKeyHandle addresses a single API key.
type APIKeyHandle struct {
	svc *APIKeysService
	id  string
}

// ID returns the API key id this handle addresses.
func (h *APIKeyHandle) ID() string {
	return h.id
}

// Get retrieves the API key, without its secret.
func (h *APIKeyHandle) Get(ctx context.Context) (*APIKey, error) {
	dto, err := h.svc.api.GetAPIKey(ctx, h.id)
	if err != nil {
		return nil, classifyError(err)
	}
	return apiKeyFromDTO(dto), nil
}

// Delete revokes the API key.
func (h *APIKeyHandle) Delete(ctx context.Context) error {
	if err := h.svc.api.DeleteAPIKey(ctx, h.id); err != nil {
		return classifyError(err)
	}
	return nil
}

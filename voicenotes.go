package voicenotes

import (
	"context"
	"time"

	"github.com/voicenotes/client-go/internal/api"
)

// VoicenoteStatus represents the processing state of a voicenote.
type VoicenoteStatus string

const (
	// VoicenoteStatusProcessing indicates transcription is in progress.
	VoicenoteStatusProcessing VoicenoteStatus = "processing"
	// VoicenoteStatusCompleted indicates the transcription is ready.
	VoicenoteStatusCompleted VoicenoteStatus = "completed"
	// VoicenoteStatusFailed indicates transcription failed.
	VoicenoteStatusFailed VoicenoteStatus = "failed"
)

// List limit bounds. Requests outside [MinListLimit, MaxListLimit] are
// clamped client-side; the server enforces the same bounds.
const (
	MinListLimit     = 1
	MaxListLimit     = 100
	DefaultListLimit = 50
)

// Voicenote represents a recorded voice note. Each API call returns a
// fresh snapshot; the client never caches or mutates these.
type Voicenote struct {
	ID              string
	Title           string
	Duration        time.Duration
	Status          VoicenoteStatus
	Tags            []string
	TranscriptionID string
	RecordedAt      time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Pagination describes one page of a list response.
type Pagination struct {
	Page    int
	Limit   int
	Total   int
	HasMore bool
}

// VoicenoteListParams filters and paginates a voicenote listing.
// The zero value lists the first page with the default limit.
type VoicenoteListParams struct {
	// Status filters by processing state.
	Status VoicenoteStatus
	// From is the inclusive lower bound on RecordedAt.
	From time.Time
	// To is the inclusive upper bound on RecordedAt.
	To time.Time
	// Page is the zero-based page index.
	Page int
	// Limit is the page size, clamped to [1, 100]. 0 means 50.
	Limit int
}

// VoicenoteList is one page of voicenotes plus pagination metadata.
type VoicenoteList struct {
	Voicenotes []*Voicenote
	Pagination Pagination
}

// VoicenotesService provides access to the voicenotes collection.
type VoicenotesService struct {
	api *api.Client
}

// voicenoteFromDTO converts a wire DTO to the public type.
func voicenoteFromDTO(dto *api.VoicenoteDTO) *Voicenote {
	if dto == nil {
		return nil
	}
	return &Voicenote{
		ID:              dto.ID,
		Title:           dto.Title,
		Duration:        time.Duration(dto.DurationSeconds * float64(time.Second)),
		Status:          VoicenoteStatus(dto.Status),
		Tags:            dto.Tags,
		TranscriptionID: dto.TranscriptionID,
		RecordedAt:      dto.RecordedAt,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
}

// listQuery converts public list params into a wire query, applying the
// page and limit bounds.
func listQuery(params *VoicenoteListParams) api.ListVoicenotesQuery {
	q := api.ListVoicenotesQuery{Limit: DefaultListLimit}
	if params == nil {
		return q
	}

	q.Status = string(params.Status)
	if !params.From.IsZero() {
		q.From = params.From.UTC().Format(time.RFC3339)
	}
	if !params.To.IsZero() {
		q.To = params.To.UTC().Format(time.RFC3339)
	}
	if params.Page > 0 {
		q.Page = params.Page
	}
	switch {
	case params.Limit == 0:
		q.Limit = DefaultListLimit
	case params.Limit < MinListLimit:
		q.Limit = MinListLimit
	case params.Limit > MaxListLimit:
		q.Limit = MaxListLimit
	default:
		q.Limit = params.Limit
	}
	return q
}

// List retrieves one page of voicenotes.
func (s *VoicenotesService) List(ctx context.Context, params *VoicenoteListParams) (*VoicenoteList, error) {
	dtos, pg, err := s.api.ListVoicenotes(ctx, listQuery(params))
	if err != nil {
		return nil, classifyError(err)
	}

	list := &VoicenoteList{
		Voicenotes: make([]*Voicenote, len(dtos)),
	}
	for i := range dtos {
		list.Voicenotes[i] = voicenoteFromDTO(&dtos[i])
	}
	if pg != nil {
		list.Pagination = Pagination{
			Page:    pg.Page,
			Limit:   pg.Limit,
			Total:   pg.Total,
			HasMore: pg.HasMore,
		}
	}
	return list, nil
}

// Iterate returns a lazy iterator over individual voicenotes, fetching
// pages on demand starting at params.Page. No page is fetched before the
// first Next call, and abandoning the iterator issues no further requests.
// The iterator is single-pass; call Iterate again for a fresh sequence.
func (s *VoicenotesService) Iterate(ctx context.Context, params *VoicenoteListParams) *VoicenoteIterator {
	var p VoicenoteListParams
	if params != nil {
		p = *params
	}
	return &VoicenoteIterator{
		ctx:    ctx,
		svc:    s,
		params: p,
		page:   p.Page,
	}
}

// Item returns a handle addressing a single voicenote by id.
func (s *VoicenotesService) Item(id string) *VoicenoteHandle {
	return &VoicenoteHandle{svc: s, id: id}
}

// VoicenoteHandle addresses a single voicenote.
type VoicenoteHandle struct {
	svc *VoicenotesService
	id  string
}

// ID returns the voicenote id this handle addresses.
func (h *VoicenoteHandle) ID() string {
	return h.id
}

// Get retrieves the voicenote.
func (h *VoicenoteHandle) Get(ctx context.Context) (*Voicenote, error) {
	dto, err := h.svc.api.GetVoicenote(ctx, h.id)
	if err != nil {
		return nil, classifyError(err)
	}
	return voicenoteFromDTO(dto), nil
}

// VoicenoteUpdateParams holds mutable voicenote fields. Nil fields are
// left unchanged.
type VoicenoteUpdateParams struct {
	Title *string
	Tags  []string
}

// Update modifies the voicenote and returns the updated snapshot.
func (h *VoicenoteHandle) Update(ctx context.Context, params VoicenoteUpdateParams) (*Voicenote, error) {
	dto, err := h.svc.api.UpdateVoicenote(ctx, h.id, api.UpdateVoicenoteRequest{
		Title: params.Title,
		Tags:  params.Tags,
	})
	if err != nil {
		return nil, classifyError(err)
	}
	return voicenoteFromDTO(dto), nil
}

// Delete removes the voicenote and its transcription.
func (h *VoicenoteHandle) Delete(ctx context.Context) error {
	if err := h.svc.api.DeleteVoicenote(ctx, h.id); err != nil {
		return classifyError(err)
	}
	return nil
}

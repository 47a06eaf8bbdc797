package voicenotes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/voicenotes/client-go/internal/api"
)

// TranscriptionStatus represents the state of a transcription.
type TranscriptionStatus string

const (
	// TranscriptionStatusProcessing indicates the transcription is not ready yet.
	TranscriptionStatusProcessing TranscriptionStatus = "processing"
	// TranscriptionStatusCompleted indicates the transcription is ready.
	TranscriptionStatusCompleted TranscriptionStatus = "completed"
	// TranscriptionStatusFailed indicates the transcription failed.
	TranscriptionStatusFailed TranscriptionStatus = "failed"
)

// Transcription represents the transcription of a voicenote.
type Transcription struct {
	ID          string
	VoicenoteID string
	Status      TranscriptionStatus
	Text        string
	Language    string
	Confidence  float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// transcriptionFromDTO converts a wire DTO to the public type.
func transcriptionFromDTO(dto *api.TranscriptionDTO) *Transcription {
	if dto == nil {
		return nil
	}
	return &Transcription{
		ID:          dto.ID,
		VoicenoteID: dto.VoicenoteID,
		Status:      TranscriptionStatus(dto.Status),
		Text:        dto.Text,
		Language:    dto.Language,
		Confidence:  dto.Confidence,
		CreatedAt:   dto.CreatedAt,
		UpdatedAt:   dto.UpdatedAt,
	}
}

// Transcription retrieves the transcription of this voicenote. A missing
// transcription surfaces as ErrTranscriptionNotFound, including when the
// voicenote itself does not exist.
func (h *VoicenoteHandle) Transcription(ctx context.Context) (*Transcription, error) {
	dto, err := h.svc.api.GetTranscription(ctx, h.id)
	if err != nil {
		return nil, classifyError(err)
	}
	return transcriptionFromDTO(dto), nil
}

// WaitForTranscription polls until the transcription completes. A
// not-found or processing transcription keeps the poll going; a failed
// transcription returns ErrTranscriptionFailed. The wait is bounded by
// WithWaitTimeout (default 2 minutes) and the caller's context.
func (h *VoicenoteHandle) WaitForTranscription(ctx context.Context, opts ...WaitOption) (*Transcription, error) {
	cfg := &waitConfig{
		timeout:      defaultWaitTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.timeout)
	defer cancel()

	ticker := time.NewTicker(cfg.pollInterval)
	defer ticker.Stop()

	for {
		tr, err := h.Transcription(ctx)
		switch {
		case errors.Is(err, ErrTranscriptionNotFound):
			// Not ready yet, keep polling.
		case err != nil:
			return nil, err
		case tr.Status == TranscriptionStatusCompleted:
			return tr, nil
		case tr.Status == TranscriptionStatusFailed:
			return nil, fmt.Errorf("%w: voicenote %s", ErrTranscriptionFailed, h.id)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

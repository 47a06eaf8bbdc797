package voicenotes

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transcriptionJSON(status string) string {
	return fmt.Sprintf(`{
		"id": "tr_1",
		"voicenote_id": "vn_1",
		"status": %q,
		"text": "let's ship it on friday",
		"language": "en",
		"confidence": 0.97,
		"created_at": "2026-08-20T09:01:00Z",
		"updated_at": "2026-08-20T09:05:00Z"
	}`, status)
}

func TestTranscription_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/voicenotes/vn_1/transcription", r.URL.Path)
		fmt.Fprintf(w, `{"data":%s}`, transcriptionJSON("completed"))
	})

	tr, err := client.Voicenotes().Item("vn_1").Transcription(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tr_1", tr.ID)
	assert.Equal(t, "vn_1", tr.VoicenoteID)
	assert.Equal(t, TranscriptionStatusCompleted, tr.Status)
	assert.Equal(t, "let's ship it on friday", tr.Text)
	assert.Equal(t, "en", tr.Language)
	assert.InDelta(t, 0.97, tr.Confidence, 1e-9)
}

func TestTranscription_NotFoundCarriesVoicenoteID(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"transcription not ready"}}`))
	})

	_, err := client.Voicenotes().Item("vn_1").Transcription(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranscriptionNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrVoicenoteNotFound)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindTranscriptionNotFound, typed.Kind)
	assert.Equal(t, "transcription", typed.Context.ResourceType)
	assert.Equal(t, "vn_1", typed.Context.ResourceID)
}

func TestWaitForTranscription_PollsUntilCompleted(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		switch calls {
		case 1:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"message":"not ready"}}`))
		case 2:
			fmt.Fprintf(w, `{"data":%s}`, transcriptionJSON("processing"))
		default:
			fmt.Fprintf(w, `{"data":%s}`, transcriptionJSON("completed"))
		}
	})

	tr, err := client.Voicenotes().Item("vn_1").WaitForTranscription(context.Background(),
		WithPollInterval(time.Millisecond))
	require.NoError(t, err)

	assert.Equal(t, TranscriptionStatusCompleted, tr.Status)
	assert.Equal(t, 3, calls)
}

func TestWaitForTranscription_FailedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"data":%s}`, transcriptionJSON("failed"))
	})

	_, err := client.Voicenotes().Item("vn_1").WaitForTranscription(context.Background(),
		WithPollInterval(time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranscriptionFailed)
	assert.Contains(t, err.Error(), "vn_1")
}

func TestWaitForTranscription_Timeout(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"not ready"}}`))
	})

	_, err := client.Voicenotes().Item("vn_1").WaitForTranscription(context.Background(),
		WithWaitTimeout(30*time.Millisecond),
		WithPollInterval(5*time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForTranscription_NonRetriableErrorStopsPolling(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"bad key"}}`))
	})

	_, err := client.Voicenotes().Item("vn_1").WaitForTranscription(context.Background(),
		WithPollInterval(time.Millisecond))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, 1, calls)
}

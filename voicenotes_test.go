package voicenotes

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func voicenoteJSON(id string) string {
	return fmt.Sprintf(`{
		"id": %q,
		"title": "Standup notes",
		"duration_seconds": 92.5,
		"status": "completed",
		"tags": ["work", "daily"],
		"transcription_id": "tr_1",
		"recorded_at": "2026-08-20T09:00:00Z",
		"created_at": "2026-08-20T09:01:00Z",
		"updated_at": "2026-08-20T09:05:00Z"
	}`, id)
}

func TestVoicenotes_List(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/voicenotes", r.URL.Path)
		fmt.Fprintf(w, `{"data":[%s,%s],"pagination":{"page":0,"limit":50,"total":2,"has_more":false}}`,
			voicenoteJSON("vn_1"), voicenoteJSON("vn_2"))
	})

	list, err := client.Voicenotes().List(context.Background(), nil)
	require.NoError(t, err)

	require.Len(t, list.Voicenotes, 2)
	vn := list.Voicenotes[0]
	assert.Equal(t, "vn_1", vn.ID)
	assert.Equal(t, "Standup notes", vn.Title)
	assert.Equal(t, 92500*time.Millisecond, vn.Duration)
	assert.Equal(t, VoicenoteStatusCompleted, vn.Status)
	assert.Equal(t, []string{"work", "daily"}, vn.Tags)
	assert.Equal(t, "tr_1", vn.TranscriptionID)
	assert.Equal(t, time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC), vn.RecordedAt)

	assert.Equal(t, 2, list.Pagination.Total)
	assert.False(t, list.Pagination.HasMore)
}

func TestVoicenotes_ListQueryParams(t *testing.T) {
	var query map[string]string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = map[string]string{}
		for k := range r.URL.Query() {
			query[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"data":[],"pagination":{"page":2,"limit":10,"total":0,"has_more":false}}`))
	})

	from := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	_, err := client.Voicenotes().List(context.Background(), &VoicenoteListParams{
		Status: VoicenoteStatusProcessing,
		From:   from,
		To:     to,
		Page:   2,
		Limit:  10,
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"status": "processing",
		"from":   "2026-08-01T00:00:00Z",
		"to":     "2026-08-20T00:00:00Z",
		"page":   "2",
		"limit":  "10",
	}, query)
}

func TestVoicenotes_ListLimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit string
	}{
		{"zero defaults to 50", 0, "50"},
		{"below minimum clamped to 1", -5, "1"},
		{"above maximum clamped to 100", 500, "100"},
		{"in range passed through", 25, "25"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotLimit string
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotLimit = r.URL.Query().Get("limit")
				w.Write([]byte(`{"data":[],"pagination":{"page":0,"limit":0,"total":0,"has_more":false}}`))
			})

			_, err := client.Voicenotes().List(context.Background(), &VoicenoteListParams{Limit: tt.limit})
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, gotLimit)
		})
	}
}

// pagedHandler serves two pages of two voicenotes each and counts the
// list calls it receives.
func pagedHandler(t *testing.T, calls *int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*calls++
		switch r.URL.Query().Get("page") {
		case "0":
			fmt.Fprintf(w, `{"data":[%s,%s],"pagination":{"page":0,"limit":2,"total":4,"has_more":true}}`,
				voicenoteJSON("vn_1"), voicenoteJSON("vn_2"))
		case "1":
			fmt.Fprintf(w, `{"data":[%s,%s],"pagination":{"page":1,"limit":2,"total":4,"has_more":false}}`,
				voicenoteJSON("vn_3"), voicenoteJSON("vn_4"))
		default:
			t.Errorf("unexpected page %q", r.URL.Query().Get("page"))
			w.WriteHeader(http.StatusBadRequest)
		}
	}
}

func TestVoicenotes_IterateAllPages(t *testing.T) {
	var calls int
	client := newTestClient(t, pagedHandler(t, &calls))

	it := client.Voicenotes().Iterate(context.Background(), &VoicenoteListParams{Limit: 2})

	var ids []string
	for it.Next() {
		ids = append(ids, it.Voicenote().ID)
	}
	require.NoError(t, it.Err())

	assert.Equal(t, []string{"vn_1", "vn_2", "vn_3", "vn_4"}, ids)
	assert.Equal(t, 2, calls)

	// The iterator is single-pass: once exhausted it stays exhausted.
	assert.False(t, it.Next())
	assert.Equal(t, 2, calls)
}

func TestVoicenotes_IterateStopsFetchingOnBreak(t *testing.T) {
	var calls int
	client := newTestClient(t, pagedHandler(t, &calls))

	it := client.Voicenotes().Iterate(context.Background(), &VoicenoteListParams{Limit: 2})

	var seen int
	for it.Next() {
		seen++
		if seen == 2 {
			break
		}
	}
	require.NoError(t, it.Err())

	assert.Equal(t, 2, seen)
	assert.Equal(t, 1, calls)
}

func TestVoicenotes_IterateIsLazy(t *testing.T) {
	var calls int
	client := newTestClient(t, pagedHandler(t, &calls))

	_ = client.Voicenotes().Iterate(context.Background(), nil)

	// Creating the iterator must not issue a request.
	assert.Zero(t, calls)
}

func TestVoicenotes_IterateSurfacesErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"message":"scope missing"}}`))
	})

	it := client.Voicenotes().Iterate(context.Background(), nil)

	assert.False(t, it.Next())
	assert.ErrorIs(t, it.Err(), ErrForbidden)
	assert.False(t, it.Next())
}

func TestVoicenotes_IterateEmptyCollection(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"data":[],"pagination":{"page":0,"limit":50,"total":0,"has_more":false}}`))
	})

	it := client.Voicenotes().Iterate(context.Background(), nil)

	assert.False(t, it.Next())
	require.NoError(t, it.Err())
	assert.Equal(t, 1, calls)
}

func TestVoicenotes_Get(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/voicenotes/vn_1", r.URL.Path)
		fmt.Fprintf(w, `{"data":%s}`, voicenoteJSON("vn_1"))
	})

	vn, err := client.Voicenotes().Item("vn_1").Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vn_1", vn.ID)
}

func TestVoicenotes_GetNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"message":"no such voicenote"}}`))
	})

	_, err := client.Voicenotes().Item("vn_missing").Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVoicenoteNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, "vn_missing", typed.Context.ResourceID)
}

func TestVoicenotes_Update(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PATCH", r.Method)
		assert.Equal(t, "/voicenotes/vn_1", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Renamed", body["title"])
		assert.Equal(t, []any{"archived"}, body["tags"])

		fmt.Fprintf(w, `{"data":%s}`, voicenoteJSON("vn_1"))
	})

	title := "Renamed"
	_, err := client.Voicenotes().Item("vn_1").Update(context.Background(), VoicenoteUpdateParams{
		Title: &title,
		Tags:  []string{"archived"},
	})
	require.NoError(t, err)
}

func TestVoicenotes_Delete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		assert.Equal(t, "/voicenotes/vn_1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.Voicenotes().Item("vn_1").Delete(context.Background())
	require.NoError(t, err)
}

func TestVoicenotes_IDsAreEscapedInPaths(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voicenotes/vn%2F..%2Fsneaky", r.URL.EscapedPath())
		fmt.Fprintf(w, `{"data":%s}`, voicenoteJSON("vn/../sneaky"))
	})

	_, err := client.Voicenotes().Item("vn/../sneaky").Get(context.Background())
	require.NoError(t, err)
}

package voicenotes

import (
	"errors"
	"strings"

	"github.com/voicenotes/client-go/internal/api"
)

// classifyError converts a transport-level failure into the richest
// applicable typed *Error. It never fails: anything it cannot recognize
// becomes a KindUnknown error with the original message preserved.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	// Already classified: pass through unchanged.
	var typed *Error
	if errors.As(err, &typed) {
		return typed
	}

	// Not an HTTP failure (marshal error, network failure, cancellation).
	var apiErr *api.Error
	if !errors.As(err, &apiErr) {
		return &Error{
			Kind:    KindUnknown,
			Message: err.Error(),
			cause:   err,
		}
	}

	message := apiErr.Message
	if message == "" {
		message = "An error occurred"
	}

	resourceType, resourceID := inferResource(apiErr.Path)

	e := &Error{
		Message:    message,
		StatusCode: apiErr.StatusCode,
		Code:       apiErr.Code,
		Details:    apiErr.Details,
		Context: ErrorContext{
			ResourceType: resourceType,
			ResourceID:   resourceID,
			Endpoint:     apiErr.Path,
		},
		cause: apiErr,
	}

	switch apiErr.StatusCode {
	case 401:
		e.Kind = KindAuthentication
	case 403:
		e.Kind = KindAuthorization
	case 400:
		e.Kind = KindValidation
	case 404:
		switch resourceType {
		case resourceVoicenote:
			e.Kind = KindVoicenoteNotFound
		case resourceWebhook:
			e.Kind = KindWebhookNotFound
		case resourceTranscription:
			e.Kind = KindTranscriptionNotFound
		case resourceAPIKey:
			e.Kind = KindAPIKeyNotFound
		default:
			e.Kind = KindNotFound
		}
	case 409:
		e.Kind = KindConflict
	case 429:
		e.Kind = KindRateLimited
		e.RetryAfter = apiErr.RetryAfter
	default:
		if apiErr.StatusCode >= 500 {
			e.Kind = KindServer
		} else {
			e.Kind = KindUnknown
		}
	}

	if e.Context.Suggestion == "" {
		e.Context.Suggestion = defaultSuggestion(e)
	}

	return e
}

// Resource type names used in error context.
const (
	resourceVoicenote     = "voicenote"
	resourceTranscription = "transcription"
	resourceWebhook       = "webhook"
	resourceAPIKey        = "api_key"
)

// inferResource derives a resource type and id from a request path using
// ordered rules, most specific first: the transcription sub-route under a
// voicenote wins over the voicenote itself. The id is the path segment
// immediately following the collection name. Works for absolute and
// relative paths; a trailing query string is ignored.
func inferResource(path string) (resourceType, resourceID string) {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	segments := strings.Split(strings.Trim(path, "/"), "/")

	for i, seg := range segments {
		var id string
		if i+1 < len(segments) {
			id = segments[i+1]
		}
		switch seg {
		case "voicenotes":
			if i+2 < len(segments) && segments[i+2] == "transcription" {
				return resourceTranscription, id
			}
			return resourceVoicenote, id
		case "webhooks":
			return resourceWebhook, id
		case "api-keys":
			return resourceAPIKey, id
		}
	}
	return "", ""
}

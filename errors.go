package voicenotes

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checks.
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrMissingAPISecret is returned when no API secret is provided.
	ErrMissingAPISecret = errors.New("API secret is required")

	// ErrMissingWebhookSecret is returned when a webhook validator is
	// constructed without a signing secret.
	ErrMissingWebhookSecret = errors.New("webhook secret is required")

	// ErrUnauthorized is returned when the credentials are invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired credentials")

	// ErrForbidden is returned when the credentials lack permission.
	ErrForbidden = errors.New("operation not permitted")

	// ErrValidation is returned when the request was rejected as invalid.
	ErrValidation = errors.New("request validation failed")

	// ErrNotFound is returned when a resource is not found.
	ErrNotFound = errors.New("resource not found")

	// ErrVoicenoteNotFound is returned when a voicenote is not found.
	ErrVoicenoteNotFound = errors.New("voicenote not found")

	// ErrWebhookNotFound is returned when a webhook is not found.
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrTranscriptionNotFound is returned when a transcription is not found.
	ErrTranscriptionNotFound = errors.New("transcription not found")

	// ErrAPIKeyNotFound is returned when an API key is not found.
	ErrAPIKeyNotFound = errors.New("API key not found")

	// ErrConflict is returned when the request conflicts with server state.
	ErrConflict = errors.New("resource conflict")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrServer is returned for 5xx responses once retries are exhausted.
	ErrServer = errors.New("server error")

	// ErrTranscriptionFailed is returned by WaitForTranscription when the
	// service reports the transcription as failed.
	ErrTranscriptionFailed = errors.New("transcription failed")
)

// ErrorKind identifies one kind in the SDK error taxonomy. Every failed
// API call returns exactly one *Error; callers branch on Kind (or use
// errors.Is with the sentinels above) instead of inspecting status codes.
type ErrorKind string

const (
	// KindUnknown is the fallback for unclassified failures.
	KindUnknown ErrorKind = "unknown"
	// KindAuthentication maps 401 responses.
	KindAuthentication ErrorKind = "authentication"
	// KindAuthorization maps 403 responses.
	KindAuthorization ErrorKind = "authorization"
	// KindValidation maps 400 responses.
	KindValidation ErrorKind = "validation"
	// KindNotFound maps 404 responses on unrecognized paths.
	KindNotFound ErrorKind = "not_found"
	// KindVoicenoteNotFound maps 404 responses on voicenote paths.
	KindVoicenoteNotFound ErrorKind = "voicenote_not_found"
	// KindWebhookNotFound maps 404 responses on webhook paths.
	KindWebhookNotFound ErrorKind = "webhook_not_found"
	// KindTranscriptionNotFound maps 404 responses on transcription paths.
	KindTranscriptionNotFound ErrorKind = "transcription_not_found"
	// KindAPIKeyNotFound maps 404 responses on API key paths.
	KindAPIKeyNotFound ErrorKind = "api_key_not_found"
	// KindConflict maps 409 responses.
	KindConflict ErrorKind = "conflict"
	// KindRateLimited maps 429 responses.
	KindRateLimited ErrorKind = "rate_limited"
	// KindServer maps 5xx responses.
	KindServer ErrorKind = "server"
)

// ErrorContext carries structured context about where an error occurred
// and what the caller can do about it.
type ErrorContext struct {
	ResourceType string
	ResourceID   string
	Endpoint     string
	Suggestion   string
}

// Error is the typed error returned by every failed SDK operation.
// It is constructed once at classification time and never mutated.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
	Code       string // service-defined error code, e.g. "invalid_audio_format"
	Details    map[string]any
	RetryAfter int // seconds, populated on rate-limit errors when known
	Context    ErrorContext

	cause error
}

// Error returns the composite human-readable message: base message,
// resource annotation, and suggestion.
func (e *Error) Error() string {
	var b strings.Builder
	if e.Message != "" {
		b.WriteString(e.Message)
	} else {
		b.WriteString("an error occurred")
	}
	if e.Context.ResourceType != "" {
		if e.Context.ResourceID != "" {
			fmt.Fprintf(&b, " [%s %s]", e.Context.ResourceType, e.Context.ResourceID)
		} else {
			fmt.Fprintf(&b, " [%s]", e.Context.ResourceType)
		}
	}
	if e.Context.Suggestion != "" {
		fmt.Fprintf(&b, " (%s)", e.Context.Suggestion)
	}
	return b.String()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is implements errors.Is for sentinel error matching. Resource-specific
// not-found kinds also match the generic ErrNotFound.
func (e *Error) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		return target == ErrUnauthorized
	case KindAuthorization:
		return target == ErrForbidden
	case KindValidation:
		return target == ErrValidation
	case KindNotFound:
		return target == ErrNotFound
	case KindVoicenoteNotFound:
		return target == ErrVoicenoteNotFound || target == ErrNotFound
	case KindWebhookNotFound:
		return target == ErrWebhookNotFound || target == ErrNotFound
	case KindTranscriptionNotFound:
		return target == ErrTranscriptionNotFound || target == ErrNotFound
	case KindAPIKeyNotFound:
		return target == ErrAPIKeyNotFound || target == ErrNotFound
	case KindConflict:
		return target == ErrConflict
	case KindRateLimited:
		return target == ErrRateLimited
	case KindServer:
		return target == ErrServer
	}
	return false
}

// MarshalJSON serializes the error as a flat record suitable for telemetry.
func (e *Error) MarshalJSON() ([]byte, error) {
	record := map[string]any{
		"kind":    string(e.Kind),
		"message": e.Message,
	}
	if e.StatusCode != 0 {
		record["status_code"] = e.StatusCode
	}
	if e.Code != "" {
		record["error_code"] = e.Code
	}
	if len(e.Details) > 0 {
		record["details"] = e.Details
	}
	if e.RetryAfter != 0 {
		record["retry_after"] = e.RetryAfter
	}
	if e.Context.ResourceType != "" {
		record["resource_type"] = e.Context.ResourceType
	}
	if e.Context.ResourceID != "" {
		record["resource_id"] = e.Context.ResourceID
	}
	if e.Context.Endpoint != "" {
		record["endpoint"] = e.Context.Endpoint
	}
	if e.Context.Suggestion != "" {
		record["suggestion"] = e.Context.Suggestion
	}
	return json.Marshal(record)
}

// defaultSuggestion returns the fixed guidance text for an error kind.
// Validation errors carry no default; the server message is already specific.
func defaultSuggestion(e *Error) string {
	switch e.Kind {
	case KindAuthentication:
		return "verify your API key and secret are correct and active"
	case KindAuthorization:
		return "check that your credentials have permission for this operation"
	case KindNotFound:
		return "check the requested resource identifier"
	case KindVoicenoteNotFound:
		return "verify the voicenote ID exists and belongs to your account"
	case KindWebhookNotFound:
		return "verify the webhook ID; it may have been deleted"
	case KindTranscriptionNotFound:
		return "the transcription may still be processing; check the voicenote status first"
	case KindAPIKeyNotFound:
		return "verify the API key ID; it may have been revoked"
	case KindRateLimited:
		if e.RetryAfter > 0 {
			return fmt.Sprintf("rate limit exceeded; retry after %d seconds", e.RetryAfter)
		}
		return "rate limit exceeded; retry with backoff"
	case KindServer:
		return "transient server problem; retry later or contact support if it persists"
	}
	return ""
}

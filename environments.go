package voicenotes

import "strings"

// Credential prefixes determine which environment a client talks to.
const (
	livePrefix = "sk_live_"
	testPrefix = "sk_test_"

	liveBaseURL    = "https://api.voicenotes.com/v1"
	sandboxBaseURL = "https://api-sandbox.voicenotes.com/v1"
)

// resolveBaseURL maps an API key prefix to the environment base URL.
// Unrecognized prefixes resolve to the live endpoint; the server rejects
// bad credentials, so no error is raised here.
func resolveBaseURL(apiKey string) string {
	switch {
	case strings.HasPrefix(apiKey, livePrefix):
		return liveBaseURL
	case strings.HasPrefix(apiKey, testPrefix):
		return sandboxBaseURL
	default:
		return liveBaseURL
	}
}

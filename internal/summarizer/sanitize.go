package summarizer

import (
	"context"
	"errors"
	"strings"
)

const genericFailure = "Summarization service error: provider temporarily unavailable"

// checked in order, first match wins
var clientSafePatterns = []struct {
	pattern string
	message string
}{
	{"rate limit", "rate limit exceeded"},
	{"resource_exhausted", "quota exceeded"},
	{"quota", "quota exceeded"},
	{"timeout", "request timed out"},
	{"context dead", "request timed out"},
	{"canceled", "request cancelled"},
	{"api key", "authentication failed with provider"},
	{"invalid api", "authentication failed with provider"},
	{"unauthorized", "authentication failed with provider"},
	{"permission_denied", "access denied by provider"},
	{"forbidden", "access denied by provider"},
	{"safety", "content was blocked by the provider"},
	{"empty response", "provider returned an empty summary"},
}

// ClientMessage turns a provider error into a message that is safe to return to callers.
// Keys, URLs and raw upstream payloads never reach the client.
func ClientMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "Summarization service error: request timed out"
	}
	if errors.Is(err, context.Canceled) {
		return "Summarization service error: request cancelled"
	}
	lower := strings.ToLower(err.Error())
	for _, p := range clientSafePatterns {
		if strings.Contains(lower, p.pattern) {
			return "Summarization service error: " + p.message
		}
	}
	return genericFailure
}

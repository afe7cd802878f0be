package domain

import "errors"

// Message roles accepted by the completion providers.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrGenerationFailed covers every completion failure: network errors,
// non-2xx upstream status, and malformed response bodies. Callers map it to
// a generic 500 without exposing the wrapped detail.
var ErrGenerationFailed = errors.New("failed to generate response from LLM")

// ErrMissingCredential is raised at construction time when the selected
// provider requires an API key that was not configured. It is never raised
// mid-request: a misconfigured provider fails fast at startup.
var ErrMissingCredential = errors.New("missing LLM API credential")

// Message is one turn of a chat exchange. Messages are transient: they live
// for the duration of a single request and are never persisted.
type Message struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

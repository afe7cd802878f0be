package ports

import (
	"context"

	"github.com/smartshop/assistant-api/internal/core/domain"
)

// Generator is the single capability interface in front of the completion
// providers. Both the hosted chat-completions provider and the local
// generation provider implement it; which one is active is a configuration
// decision made at startup.
type Generator interface {
	// Generate issues one synchronous completion call and returns the
	// extracted completion text. Failures of any kind wrap
	// domain.ErrGenerationFailed.
	Generate(ctx context.Context, messages []domain.Message) (string, error)
}

// ChatInput accepts both wire shapes the storefront sends: a full message
// list, or a single message with optional prior history.
type ChatInput struct {
	Messages []domain.Message
	Message  string
	History  []domain.Message
}

// Preferences is the structured form of the caller-supplied preference
// payload. All fields are optional.
type Preferences struct {
	Categories []string `json:"categories,omitempty"`
	Brands     []string `json:"brands,omitempty"`
	MaxPrice   float64  `json:"maxPrice,omitempty"`
	Notes      string   `json:"notes,omitempty"`
}

// Purchase is one entry of the caller-supplied purchase history.
type Purchase struct {
	ProductName string  `json:"productName"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price,omitempty"`
}

// AssistantService defines the chat and recommendation use cases.
type AssistantService interface {
	Chat(ctx context.Context, input ChatInput) (string, error)
	// Recommend returns product name suggestions. A completion that cannot
	// be parsed as a JSON array yields an empty list, not an error.
	Recommend(ctx context.Context, prefs Preferences, history []Purchase) ([]string, error)
}

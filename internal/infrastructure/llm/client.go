// Package llm implements the completion provider clients. Two providers
// exist behind the single ports.Generator interface: a hosted
// chat-completions API and a local generation API. The active provider is a
// startup-time configuration decision.
package llm

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/core/ports"
	"github.com/smartshop/assistant-api/internal/infrastructure/config"
)

// New returns the Generator selected by cfg.Provider. httpClient may be nil,
// in which case a client with transport defaults is used.
func New(cfg config.LLMConfig, httpClient *http.Client, logger zerolog.Logger) (ports.Generator, error) {
	switch cfg.Provider {
	case config.ProviderTogether:
		return NewTogetherClient(cfg, httpClient, logger)
	case config.ProviderOllama:
		return NewOllamaClient(cfg, httpClient, logger), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.Provider)
	}
}

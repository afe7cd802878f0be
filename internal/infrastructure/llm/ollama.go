package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/api/metrics"
	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/infrastructure/config"
)

const (
	defaultOllamaEndpoint = "http://localhost:11434/api/generate"
	defaultOllamaModel    = "llama3"
)

// OllamaClient calls a local generation API that takes a flat prompt rather
// than a message list. No credential is required.
type OllamaClient struct {
	endpoint   string
	model      string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewOllamaClient(cfg config.LLMConfig, httpClient *http.Client, logger zerolog.Logger) *OllamaClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	c := &OllamaClient{
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		httpClient: httpClient,
		logger:     logger,
	}
	if c.endpoint == "" {
		c.endpoint = defaultOllamaEndpoint
	}
	if c.model == "" {
		c.model = defaultOllamaModel
	}
	return c
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate flattens the message list into a single prompt, posts it to the
// generate endpoint, and returns the response text.
func (c *OllamaClient) Generate(ctx context.Context, messages []domain.Message) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: flattenMessages(messages),
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", domain.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.LLMRequestDuration.WithLabelValues(config.ProviderOllama).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderOllama, "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderOllama, "error").Inc()
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("generation request rejected")
		return "", fmt.Errorf("%w: upstream status %s", domain.ErrGenerationFailed, resp.Status)
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderOllama, "error").Inc()
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}

	metrics.LLMRequestsTotal.WithLabelValues(config.ProviderOllama, "success").Inc()
	return out.Response, nil
}

// flattenMessages renders a message list as a role-prefixed transcript. The
// generate API has no notion of roles, so the transcript ends with an open
// assistant turn for the model to complete.
func flattenMessages(messages []domain.Message) string {
	var b strings.Builder
	for _, m := range messages {
		switch m.Role {
		case domain.RoleSystem:
			b.WriteString(m.Content)
			b.WriteString("\n\n")
		case domain.RoleAssistant:
			b.WriteString("Assistant: ")
			b.WriteString(m.Content)
			b.WriteString("\n")
		default:
			b.WriteString("User: ")
			b.WriteString(m.Content)
			b.WriteString("\n")
		}
	}
	b.WriteString("Assistant:")
	return b.String()
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/api/metrics"
	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/infrastructure/config"
)

const (
	defaultTogetherEndpoint = "https://api.together.xyz/v1/chat/completions"
	defaultTogetherModel    = "mistralai/Mixtral-8x7B-Instruct-v0.1"
)

// TogetherClient calls a hosted chat-completions API (Together AI wire
// format). It issues exactly one synchronous POST per Generate call: no
// streaming, no retries, no caching.
type TogetherClient struct {
	endpoint    string
	apiKey      string
	model       string
	temperature float64
	maxTokens   int
	httpClient  *http.Client
	logger      zerolog.Logger
}

// NewTogetherClient builds the hosted-provider client. A missing API key is
// a configuration error surfaced here, before any network call is made.
func NewTogetherClient(cfg config.LLMConfig, httpClient *http.Client, logger zerolog.Logger) (*TogetherClient, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingCredential
	}
	if httpClient == nil {
		// Transport defaults only: the adapter deliberately enforces no
		// timeout of its own.
		httpClient = &http.Client{}
	}

	c := &TogetherClient{
		endpoint:    cfg.Endpoint,
		apiKey:      cfg.APIKey,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		httpClient:  httpClient,
		logger:      logger,
	}
	if c.endpoint == "" {
		c.endpoint = defaultTogetherEndpoint
	}
	if c.model == "" {
		c.model = defaultTogetherModel
	}
	return c, nil
}

type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []domain.Message `json:"messages"`
	Temperature float64          `json:"temperature"`
	MaxTokens   int              `json:"max_tokens"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Generate sends the message list to the chat-completions endpoint and
// returns the first choice's content.
func (c *TogetherClient) Generate(ctx context.Context, messages []domain.Message) (string, error) {
	body, err := json.Marshal(chatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temperature,
		MaxTokens:   c.maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request: %v", domain.ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", domain.ErrGenerationFailed, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.LLMRequestDuration.WithLabelValues(config.ProviderTogether).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderTogether, "error").Inc()
		return "", fmt.Errorf("%w: %v", domain.ErrGenerationFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderTogether, "error").Inc()
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("body", string(detail)).
			Msg("chat completion request rejected")
		return "", fmt.Errorf("%w: upstream status %s", domain.ErrGenerationFailed, resp.Status)
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderTogether, "error").Inc()
		return "", fmt.Errorf("%w: decode response: %v", domain.ErrGenerationFailed, err)
	}
	if len(out.Choices) == 0 {
		metrics.LLMRequestsTotal.WithLabelValues(config.ProviderTogether, "error").Inc()
		return "", fmt.Errorf("%w: response contained no choices", domain.ErrGenerationFailed)
	}

	metrics.LLMRequestsTotal.WithLabelValues(config.ProviderTogether, "success").Inc()
	return out.Choices[0].Message.Content, nil
}

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/api/metrics"
	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

const chatSystemPrompt = "You are SmartShop AI, a helpful shopping assistant. " +
	"Respond to the user's message in a helpful, friendly way."

const recommendationPromptFormat = `Based on the following user preferences and purchase history, suggest 5 products they might like:

User preferences: %s
Purchase history: %s

Return only product names in a JSON array format.`

// AssistantService implements chat and recommendation composition on top of
// a completion provider.
type AssistantService struct {
	generator ports.Generator
	logger    zerolog.Logger
}

func NewAssistantService(generator ports.Generator, logger zerolog.Logger) *AssistantService {
	return &AssistantService{generator: generator, logger: logger}
}

// Chat forwards one exchange to the completion provider. When the caller
// supplied a full message list it is sent as-is (prefixed with the system
// prompt if absent); the legacy single-message shape is converted to a
// history + user-turn list.
func (s *AssistantService) Chat(ctx context.Context, input ports.ChatInput) (string, error) {
	messages := input.Messages
	if len(messages) == 0 {
		messages = append(messages, input.History...)
		messages = append(messages, domain.Message{Role: domain.RoleUser, Content: input.Message})
	}
	if len(messages) == 0 || messages[0].Role != domain.RoleSystem {
		messages = append([]domain.Message{{Role: domain.RoleSystem, Content: chatSystemPrompt}}, messages...)
	}

	reply, err := s.generator.Generate(ctx, messages)
	if err != nil {
		s.logger.Error().Err(err).Msg("chat completion failed")
		return "", err
	}
	return reply, nil
}

// Recommend builds a recommendation prompt from the structured preference
// and history payloads and interprets the completion as a JSON array of
// product names. An unparseable completion degrades to an empty list: a
// malformed model reply must not fail the request.
func (s *AssistantService) Recommend(ctx context.Context, prefs ports.Preferences, history []ports.Purchase) ([]string, error) {
	prefsJSON, err := json.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("marshal preferences: %w", err)
	}
	historyJSON, err := json.Marshal(history)
	if err != nil {
		return nil, fmt.Errorf("marshal history: %w", err)
	}

	prompt := fmt.Sprintf(recommendationPromptFormat, prefsJSON, historyJSON)

	reply, err := s.generator.Generate(ctx, []domain.Message{
		{Role: domain.RoleUser, Content: prompt},
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("recommendation completion failed")
		return nil, err
	}

	return s.parseRecommendations(reply), nil
}

// parseRecommendations extracts product names from the raw completion text.
// Non-string array elements are skipped; anything that is not a JSON array
// yields an empty list.
func (s *AssistantService) parseRecommendations(reply string) []string {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(reply), &items); err != nil {
		s.logger.Warn().Err(err).Msg("completion is not a JSON array, returning no recommendations")
		metrics.RecommendationParsesTotal.WithLabelValues("failure").Inc()
		return []string{}
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		var name string
		if err := json.Unmarshal(item, &name); err != nil {
			continue
		}
		names = append(names, name)
	}
	metrics.RecommendationParsesTotal.WithLabelValues("success").Inc()
	return names
}

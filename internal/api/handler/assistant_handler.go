package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartshop/assistant-api/internal/core/domain"
	"github.com/smartshop/assistant-api/internal/core/ports"
)

// AssistantHandler handles the chat, recommendation, and visual-search
// endpoints. Completion failures are logged with their cause and surfaced to
// the caller as a generic 500: upstream detail never leaves the process.
type AssistantHandler struct {
	service ports.AssistantService
	logger  zerolog.Logger
}

func NewAssistantHandler(service ports.AssistantService, logger zerolog.Logger) *AssistantHandler {
	return &AssistantHandler{service: service, logger: logger}
}

// Chat handles POST /chat.
//
// @Summary      Chat with the shopping assistant
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Either a messages list or a single message with optional chatHistory"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /chat [post]
func (h *AssistantHandler) Chat(c echo.Context) error {
	var req chatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if len(req.Messages) == 0 && req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message or messages is required")
	}

	reply, err := h.service.Chat(c.Request().Context(), ports.ChatInput{
		Messages: toMessages(req.Messages),
		Message:  req.Message,
		History:  toMessages(req.ChatHistory),
	})
	if err != nil {
		h.logger.Error().Err(err).Msg("chat request failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to process chat request"})
	}
	return c.JSON(http.StatusOK, chatResponse{Response: reply})
}

// Recommendations handles POST /recommendations.
//
// @Summary      Recommend products from preferences and purchase history
// @Tags         assistant
// @Accept       json
// @Produce      json
// @Param        body  body      recommendationsRequest  true  "Preferences and history"
// @Success      200   {object}  recommendationsResponse
// @Failure      400   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /recommendations [post]
func (h *AssistantHandler) Recommendations(c echo.Context) error {
	var req recommendationsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	history := make([]ports.Purchase, 0, len(req.History))
	for _, p := range req.History {
		history = append(history, ports.Purchase{
			ProductName: p.ProductName,
			Category:    p.Category,
			Price:       p.Price,
		})
	}

	recommendations, err := h.service.Recommend(c.Request().Context(), ports.Preferences{
		Categories: req.Preferences.Categories,
		Brands:     req.Preferences.Brands,
		MaxPrice:   req.Preferences.MaxPrice,
		Notes:      req.Preferences.Notes,
	}, history)
	if err != nil {
		h.logger.Error().Err(err).Msg("recommendation request failed")
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "Failed to generate recommendations"})
	}
	return c.JSON(http.StatusOK, recommendationsResponse{Recommendations: recommendations})
}

// VisualSearch handles POST /visual-search. Image-based search needs an
// image analysis pipeline that does not exist yet; the route is a declared
// placeholder.
//
// @Summary      Visual product search (not implemented)
// @Tags         assistant
// @Produce      json
// @Failure      501  {object}  notImplementedResponse
// @Router       /visual-search [post]
func (h *AssistantHandler) VisualSearch(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, notImplementedResponse{Message: "Visual search not yet implemented"})
}

func toMessages(reqs []messageRequest) []domain.Message {
	if len(reqs) == 0 {
		return nil
	}
	out := make([]domain.Message, 0, len(reqs))
	for _, m := range reqs {
		out = append(out, domain.Message{ID: m.ID, Role: m.Role, Content: m.Content})
	}
	return out
}

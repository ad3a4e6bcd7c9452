package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/http/dto"
	"youmatter.app/server/internal/model"
)

// Responder runs one assistant turn. Satisfied by *chat.Orchestrator.
type Responder interface {
	Respond(ctx context.Context, transcript []model.Message, userMessage string) ([]model.Message, error)
}

type AssistantHandler struct {
	responder Responder
}

func NewAssistantHandler(responder Responder) *AssistantHandler {
	return &AssistantHandler{responder: responder}
}

func (h *AssistantHandler) Respond(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.AssistantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	out, err := h.responder.Respond(ctx, req.History, req.Message)
	if err != nil {
		slog.ErrorContext(ctx, "assistant turn failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "assistant unavailable"})
		return
	}

	// Return only what this turn appended; the client owns the rest.
	c.JSON(http.StatusOK, dto.AssistantResponse{Messages: out[len(req.History):]})
}

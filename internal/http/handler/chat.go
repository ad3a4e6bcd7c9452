package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"youmatter.app/server/internal/genai"
	"youmatter.app/server/internal/http/dto"
)

// RawGenerator forwards a prebuilt generateContent body to the provider.
// Satisfied by *genai.Client.
type RawGenerator interface {
	GenerateRaw(ctx context.Context, body []byte) (int, []byte, error)
}

// ChatHandler relays conversation turns to the provider, normalizing
// the request shapes clients send. The provider's response body passes
// through untouched; the key stays server-side.
type ChatHandler struct {
	generator RawGenerator
}

func NewChatHandler(generator RawGenerator) *ChatHandler {
	return &ChatHandler{generator: generator}
}

type providerContent struct {
	Role  string `json:"role"`
	Parts []struct {
		Text string `json:"text"`
	} `json:"parts"`
}

func (h *ChatHandler) Relay(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	contents, ok := normalizeContents(req)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request format"})
		return
	}

	body, err := json.Marshal(gin.H{"contents": contents})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build request"})
		return
	}

	status, raw, err := h.generator.GenerateRaw(ctx, body)
	if err != nil {
		slog.ErrorContext(ctx, "chat relay failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "provider unavailable"})
		return
	}

	c.Data(status, "application/json", raw)
}

// normalizeContents maps the three accepted shapes to provider
// contents: raw contents pass through, messages map assistant to the
// model role, and a bare string becomes a single user turn.
func normalizeContents(req dto.ChatRequest) (any, bool) {
	switch {
	case len(req.Contents) > 0:
		var contents []providerContent
		if err := json.Unmarshal(req.Contents, &contents); err != nil {
			return nil, false
		}
		return json.RawMessage(req.Contents), true

	case len(req.Messages) > 0:
		turns := make([]map[string]any, 0, len(req.Messages))
		for _, m := range req.Messages {
			role := "user"
			if m.Role == "assistant" || m.Role == "model" {
				role = "model"
			}
			turns = append(turns, map[string]any{
				"role":  role,
				"parts": []map[string]string{{"text": m.Content}},
			})
		}
		return turns, true

	case req.Message != "":
		return []map[string]any{{
			"role":  "user",
			"parts": []map[string]string{{"text": req.Message}},
		}}, true

	default:
		return nil, false
	}
}

// ResourceHandler serves the single-shot personalized resource feature.
type ResourceHandler struct {
	generator Generator
}

// Generator produces text from conversation turns. Satisfied by
// *genai.Client.
type Generator interface {
	Generate(ctx context.Context, turns []genai.Turn, opts genai.Options) (string, error)
}

func NewResourceHandler(generator Generator) *ResourceHandler {
	return &ResourceHandler{generator: generator}
}

const resourcePrompt = "You are a calm, empathetic mental wellness assistant.\n" +
	"Give supportive, practical guidance.\n\nUser says: "

func (h *ResourceHandler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query is required"})
		return
	}

	text, err := h.generator.Generate(ctx, []genai.Turn{
		{Role: "user", Text: resourcePrompt + req.Query},
	}, genai.Options{Temperature: 0.6, MaxOutputTokens: 2048})
	if err != nil {
		slog.ErrorContext(ctx, "resource generation failed", "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "provider unavailable"})
		return
	}

	c.JSON(http.StatusOK, dto.ResourceResponse{Text: text})
}

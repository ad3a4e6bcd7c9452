// Package chat runs the assistant pipeline: crisis screening, reply
// generation, and best-effort video suggestions, in that order.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"youmatter.app/server/common/logger"
	"youmatter.app/server/internal/crisis"
	"youmatter.app/server/internal/genai"
	"youmatter.app/server/internal/model"
	"youmatter.app/server/internal/youtube"
)

const systemPrompt = "You are a warm, empathetic companion in a mental wellness app. " +
	"Listen carefully, validate feelings, and respond in a few short supportive sentences. " +
	"Suggest gentle, practical steps when they fit. Never diagnose and never prescribe medication. " +
	"If the user seems to be in danger, encourage them to contact a helpline or someone they trust."

const systemAck = "I understand. I'm here to listen and support you."

const queryPrompt = `Give ONE short YouTube search query related to: "%s". Respond with only the query.`

// Fixed lines committed when the provider cannot produce a usable reply.
// FallbackReply covers empty 200s; FailureReply covers exhausted retries.
const (
	FallbackReply = "I'm here with you."
	FailureReply  = "I'm having trouble connecting right now. Please try again."
)

// Generator produces text from a conversation. Satisfied by *genai.Client.
type Generator interface {
	Generate(ctx context.Context, turns []genai.Turn, opts genai.Options) (string, error)
}

type Orchestrator struct {
	detector  *crisis.Detector
	generator Generator
	videos    youtube.Searcher
	retry     genai.RetryPolicy
}

func NewOrchestrator(detector *crisis.Detector, generator Generator, videos youtube.Searcher, retry genai.RetryPolicy) *Orchestrator {
	return &Orchestrator{
		detector:  detector,
		generator: generator,
		videos:    videos,
		retry:     retry,
	}
}

// Respond appends the user's message and the assistant's response
// messages to the transcript and returns the result. The transcript is
// client-held state; Respond never mutates its input slice beyond
// appending.
//
// Crisis messages short-circuit before any provider call. Provider
// failures degrade to fixed reply lines instead of an error; video
// suggestion is best-effort and can never undo a committed reply. Only
// context cancellation propagates as an error.
func (o *Orchestrator) Respond(ctx context.Context, transcript []model.Message, userMessage string) ([]model.Message, error) {
	turn := nextTurn(transcript)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Turn:      logger.Ptr(turn),
		Component: "youmatter.chat.orchestrator",
	})

	out := append(transcript, model.Message{Role: model.RoleUser, Text: userMessage, Turn: turn})

	if o.detector.Detect(userMessage) {
		slog.InfoContext(ctx, "crisis language detected, short-circuiting")
		return append(out, model.Message{
			Role: model.RoleCrisisResponse,
			Text: o.detector.Response(),
			Turn: turn,
		}), nil
	}

	reply, genErr := o.generateReply(ctx, out)
	if genErr != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		slog.ErrorContext(ctx, "reply generation failed", "error", genErr)
		return append(out, model.Message{Role: model.RoleAssistant, Text: FailureReply, Turn: turn}), nil
	}
	out = append(out, model.Message{Role: model.RoleAssistant, Text: reply, Turn: turn})

	// Everything past this point is best-effort enrichment. The reply
	// above is committed regardless of what happens here.
	query, err := o.deriveQuery(ctx, userMessage)
	if err != nil || query == "" {
		if err != nil {
			slog.WarnContext(ctx, "query derivation failed, skipping videos", "error", err)
		}
		return out, nil
	}

	videos, err := o.videos.Search(ctx, query)
	if err != nil {
		slog.WarnContext(ctx, "video search failed, skipping videos", "query", query, "error", err)
		return out, nil
	}
	if len(videos) == 0 {
		return out, nil
	}

	return append(out, model.Message{
		Role:   model.RoleVideoSuggestion,
		Text:   fmt.Sprintf("Helpful videos for %q", query),
		Videos: videos,
		Turn:   turn,
	}), nil
}

func (o *Orchestrator) generateReply(ctx context.Context, transcript []model.Message) (string, error) {
	turns := buildTurns(transcript)

	var reply string
	err := o.retry.Do(ctx, "generate reply", func() error {
		var genErr error
		reply, genErr = o.generator.Generate(ctx, turns, genai.Options{})
		return genErr
	})
	if err != nil {
		if errors.Is(err, genai.ErrEmptyResponse) {
			slog.WarnContext(ctx, "empty provider response, using fallback reply")
			return FallbackReply, nil
		}
		return "", err
	}
	return reply, nil
}

// deriveQuery asks the provider for a single search query. One attempt,
// no retry: a missed video suggestion is not worth more provider calls.
func (o *Orchestrator) deriveQuery(ctx context.Context, userMessage string) (string, error) {
	raw, err := o.generator.Generate(ctx, []genai.Turn{
		{Role: "user", Text: fmt.Sprintf(queryPrompt, userMessage)},
	}, genai.Options{})
	if err != nil {
		if errors.Is(err, genai.ErrEmptyResponse) {
			return "", nil
		}
		return "", err
	}

	query, _, _ := strings.Cut(strings.TrimSpace(raw), "\n")
	query = strings.Trim(query, `"'`)
	return strings.TrimSpace(query), nil
}

// buildTurns maps the transcript to provider turns. The persona goes
// first as a user/model exchange because generateContent has no system
// role. Only user and assistant messages reach the prompt: video
// suggestions are UI furniture and crisis responses are canned safety
// text, not model output.
func buildTurns(transcript []model.Message) []genai.Turn {
	turns := make([]genai.Turn, 0, len(transcript)+2)
	turns = append(turns,
		genai.Turn{Role: "user", Text: systemPrompt},
		genai.Turn{Role: "model", Text: systemAck},
	)
	for _, msg := range transcript {
		switch msg.Role {
		case model.RoleUser:
			turns = append(turns, genai.Turn{Role: "user", Text: msg.Text})
		case model.RoleAssistant:
			turns = append(turns, genai.Turn{Role: "model", Text: msg.Text})
		}
	}
	return turns
}

func nextTurn(transcript []model.Message) int {
	max := 0
	for _, msg := range transcript {
		if msg.Turn > max {
			max = msg.Turn
		}
	}
	return max + 1
}

// Package genai is a minimal client for the Gemini generateContent API.
// It speaks the wire format directly over net/http so the server fully
// owns the request going upstream; the provider key never reaches a browser.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultTimeout bounds a single generateContent round trip.
	DefaultTimeout = 60 * time.Second

	// maxResponseSize caps the upstream body read to keep a misbehaving
	// provider from exhausting memory.
	maxResponseSize = 10 * 1024 * 1024
)

// Turn is one entry of the conversation sent upstream. Role is "user"
// or "model" in Gemini terms.
type Turn struct {
	Role string
	Text string
}

// Options tune a single generation request.
type Options struct {
	Temperature     float64
	MaxOutputTokens int
}

// ErrEmptyResponse is returned when the provider answers 200 with no
// usable candidate text.
var ErrEmptyResponse = errors.New("genai: empty response from provider")

// UpstreamError is a non-2xx answer from the provider. The status code
// drives retry classification; the message is the provider's own text.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("genai: upstream status %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(apiKey, baseURL, model string) *Client {
	return &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

func (c *Client) Model() string {
	return c.model
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Role  string `json:"role"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends the turns upstream and returns the text of the first
// candidate, all parts concatenated. A 200 with no candidate text is
// ErrEmptyResponse so callers can substitute a fallback line.
func (c *Client) Generate(ctx context.Context, turns []Turn, opts Options) (string, error) {
	req := generateRequest{
		Contents: make([]content, 0, len(turns)),
	}
	for _, t := range turns {
		req.Contents = append(req.Contents, content{
			Role:  t.Role,
			Parts: []part{{Text: t.Text}},
		})
	}
	if opts.Temperature != 0 || opts.MaxOutputTokens != 0 {
		req.GenerationConfig = &generationConfig{
			Temperature:     opts.Temperature,
			MaxOutputTokens: opts.MaxOutputTokens,
		}
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("genai: marshal request: %w", err)
	}

	status, raw, err := c.post(ctx, c.model, body)
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		// Error bodies are not always JSON (proxies answer with HTML or
		// nothing at all); the status code alone must classify the failure.
		msg := http.StatusText(status)
		var parsed generateResponse
		if err := json.Unmarshal(raw, &parsed); err == nil && parsed.Error != nil && parsed.Error.Message != "" {
			msg = parsed.Error.Message
		}
		return "", &UpstreamError{StatusCode: status, Message: msg}
	}

	var parsed generateResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("genai: decode response: %w", err)
	}

	if len(parsed.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}

	return sb.String(), nil
}

// GenerateRaw forwards a caller-built generateContent body upstream and
// returns the provider's status and body verbatim. Used by the relay
// endpoint, which normalizes client payloads but does not interpret the
// provider's answer.
func (c *Client) GenerateRaw(ctx context.Context, body []byte) (int, []byte, error) {
	return c.post(ctx, c.model, body)
}

func (c *Client) post(ctx context.Context, model string, body []byte) (int, []byte, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return 0, nil, fmt.Errorf("genai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, nil, fmt.Errorf("genai: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return 0, nil, fmt.Errorf("genai: read response: %w", err)
	}

	slog.DebugContext(ctx, "genai request completed",
		"model", model,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds())

	return resp.StatusCode, raw, nil
}

// IsRetryable classifies an error from Generate. Rate limits, server
// errors, and network failures are worth another attempt; client errors
// and cancelled contexts are not.
func IsRetryable(ctx context.Context, err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		slog.DebugContext(ctx, "genai error not retryable: context cancelled or deadline exceeded")
		return false
	}

	if errors.Is(err, ErrEmptyResponse) {
		return false
	}

	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		switch {
		case upstream.StatusCode == http.StatusTooManyRequests:
			slog.WarnContext(ctx, "genai rate limited, will retry",
				"status_code", upstream.StatusCode)
			return true
		case upstream.StatusCode >= 500:
			slog.WarnContext(ctx, "genai server error, will retry",
				"status_code", upstream.StatusCode)
			return true
		default:
			slog.ErrorContext(ctx, "genai client error, not retryable",
				"status_code", upstream.StatusCode)
			return false
		}
	}

	// Network errors (no API response) are generally retryable
	slog.WarnContext(ctx, "genai network error, will retry", "error", err)
	return true
}

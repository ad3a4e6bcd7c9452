package dto

import "encoding/json"

// ChatRequest accepts the three shapes clients have historically sent:
// raw provider contents, a messages array, or a bare message string.
// Exactly one of the fields should be set.
type ChatRequest struct {
	Contents json.RawMessage `json:"contents,omitempty"`
	Messages []ChatMessage   `json:"messages,omitempty"`
	Message  string          `json:"message,omitempty"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

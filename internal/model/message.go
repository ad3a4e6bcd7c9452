package model

// Message roles in an assistant conversation. The transcript is
// client-held state; the server appends to whatever it is handed.
const (
	RoleUser            = "user"
	RoleAssistant       = "assistant"
	RoleVideoSuggestion = "video_suggestion"
	RoleCrisisResponse  = "crisis_response"
)

// Message is one entry in an assistant conversation transcript.
// Turn groups the messages produced in response to a single user message.
type Message struct {
	Role   string  `json:"role"`
	Text   string  `json:"text"`
	Videos []Video `json:"videos,omitempty"`
	Turn   int     `json:"turn"`
}

// Video is a suggested YouTube video attached to a video_suggestion message.
type Video struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

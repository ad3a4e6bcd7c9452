// Package crisis screens user messages for crisis language before any
// provider call is made. Detection is deterministic keyword matching so
// a struggling user never waits on (or is failed by) an upstream API.
package crisis

import "strings"

// DefaultKeywords are the phrases that trigger the crisis path. Matching
// is case-insensitive substring containment over the raw message.
var DefaultKeywords = []string{
	"suicidal",
	"kill myself",
	"want to die",
	"end my life",
	"self harm",
	"give up",
	"hopeless",
	"no point",
	"despair",
	"can't go on",
}

// DefaultResponse is the fixed helpline text returned on the crisis path.
const DefaultResponse = "It sounds like you are going through a really difficult time. " +
	"You don't have to face this alone. Please reach out to someone who can help right now:\n\n" +
	"Kiran Mental Health Helpline: 1800-599-0019 (24/7, toll-free)\n" +
	"AASRA: +91 9820466726 (24/7)\n\n" +
	"Please reach out. You matter."

type Detector struct {
	keywords []string
	response string
}

// NewDetector builds a detector over the given keyword list. Empty
// arguments fall back to the defaults.
func NewDetector(keywords []string, response string) *Detector {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}
	if response == "" {
		response = DefaultResponse
	}
	return &Detector{keywords: keywords, response: response}
}

// Detect reports whether the message contains crisis language.
func (d *Detector) Detect(message string) bool {
	lowered := strings.ToLower(message)
	for _, kw := range d.keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// Response returns the helpline text for the crisis path.
func (d *Detector) Response() string {
	return d.response
}

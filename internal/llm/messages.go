package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

const (
	DefaultBaseURL = "https://api.anthropic.com"
	APIVersion     = "2023-06-01"
	Model          = "claude-sonnet-4-20250514"
	MaxTokens      = 2048
)

// ErrNoContent is returned when a successful upstream response has an empty
// content list.
var ErrNoContent = errors.New("upstream response has no content segments")

// Generator turns a single-turn prompt into text. apiKey may be ignored by
// implementations that authenticate some other way.
type Generator interface {
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type MessagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

// NewMessagesRequest wraps prompt verbatim as the only user turn.
func NewMessagesRequest(prompt string) MessagesRequest {
	return MessagesRequest{
		Model:     Model,
		MaxTokens: MaxTokens,
		Messages:  []Message{{Role: "user", Content: prompt}},
	}
}

// UpstreamError is a non-2xx answer from the generative-text API.
type UpstreamError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.StatusCode, e.Message)
}

// ErrorMessage pulls error.message out of an upstream error body.
func ErrorMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return "Unknown error"
	}
	if m := gjson.GetBytes(body, "error.message"); m.Exists() && m.String() != "" {
		return m.String()
	}
	return "Unknown error"
}

// FirstText returns the text of the first content segment.
func FirstText(body []byte) (string, error) {
	if !gjson.ValidBytes(body) {
		return "", errors.New("upstream response is not valid JSON")
	}
	first := gjson.GetBytes(body, "content.0")
	if !first.Exists() {
		return "", ErrNoContent
	}
	return first.Get("text").String(), nil
}

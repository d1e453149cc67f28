// Package llm provides a uniform chat contract over OpenAI-compatible
// LLM providers, with token accounting and cost estimation.
package llm

import (
	"context"

	"github.com/easypath-ai/easypath/pkg/models"
)

// Message is one entry of the prompt sent to the provider.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the single capability every provider implements. Failures
// never surface as errors: they arrive inside the result with
// Success=false and a descriptive message.
type Client interface {
	Chat(ctx context.Context, messages []Message, temperature float32) models.LLMResult
}

// SystemMessage builds a system-role message.
func SystemMessage(content string) Message {
	return Message{Role: models.RoleSystem, Content: content}
}

// UserMessage builds a user-role message.
func UserMessage(content string) Message {
	return Message{Role: models.RoleUser, Content: content}
}

// AssistantMessage builds an assistant-role message.
func AssistantMessage(content string) Message {
	return Message{Role: models.RoleAssistant, Content: content}
}

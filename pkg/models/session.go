package models

import "time"

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is one entry in a session's conversation history.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatSession is the durable per-conversation state. It is owned
// exclusively by the in-flight turn; the session store holds the only
// persistent copy between turns.
type ChatSession struct {
	SessionID          string         `json:"session_id"`
	CurrentNodeID      string         `json:"current_node_id"`
	PreviousNodeID     string         `json:"previous_node_id,omitempty"`
	History            []Message      `json:"history"`
	ExtractedVariables map[string]any `json:"extracted_variables"`
}

// NewChatSession creates a session positioned at the flow's first node.
func NewChatSession(sessionID, firstNodeID string) *ChatSession {
	return &ChatSession{
		SessionID:          sessionID,
		CurrentNodeID:      firstNodeID,
		History:            []Message{},
		ExtractedVariables: map[string]any{},
	}
}

// AddMessage appends a message with the current timestamp.
func (s *ChatSession) AddMessage(role, content string) {
	s.History = append(s.History, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}

// LastUserMessage returns the most recent user message, or "" if none.
func (s *ChatSession) LastUserMessage() string {
	for i := len(s.History) - 1; i >= 0; i-- {
		if s.History[i].Role == RoleUser {
			return s.History[i].Content
		}
	}
	return ""
}

// RecentMessages returns up to the last n messages in order.
func (s *ChatSession) RecentMessages(n int) []Message {
	if len(s.History) <= n {
		return s.History
	}
	return s.History[len(s.History)-n:]
}

// MergeVariables copies the given values into the session's accumulated
// extracted variables, overwriting on name collision.
func (s *ChatSession) MergeVariables(vars map[string]any) {
	if s.ExtractedVariables == nil {
		s.ExtractedVariables = map[string]any{}
	}
	for k, v := range vars {
		s.ExtractedVariables[k] = v
	}
}

package models

import "time"

// CreateBotRequest registers a messaging-platform bot bound to a flow.
type CreateBotRequest struct {
	Platform string `json:"platform"`
	BotName  string `json:"bot_name"`
	BotToken string `json:"bot_token"`
	FlowID   int    `json:"flow_id"`
	OwnerID  string `json:"owner_id"`
}

// UpdateBotRequest carries partial updates for a bot configuration.
// Nil fields are left unchanged.
type UpdateBotRequest struct {
	BotName  *string `json:"bot_name,omitempty"`
	BotToken *string `json:"bot_token,omitempty"`
	FlowID   *int    `json:"flow_id,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// SessionSummary is one row of the sessions listing: a platform
// conversation joined with its bot and message count.
type SessionSummary struct {
	ID               int       `json:"id"`
	BotConfigID      int       `json:"bot_config_id"`
	BotName          string    `json:"bot_name"`
	Platform         string    `json:"platform"`
	PlatformUserID   string    `json:"platform_user_id"`
	PlatformUserName string    `json:"platform_user_name,omitempty"`
	SessionID        string    `json:"session_id"`
	Status           string    `json:"status"`
	MessageCount     int       `json:"message_count"`
	LastMessageAt    time.Time `json:"last_message_at"`
	CreatedAt        time.Time `json:"created_at"`
}

// MessageDetail is one persisted platform message.
type MessageDetail struct {
	ID        int       `json:"id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SessionDetail extends SessionSummary with the most recent messages,
// oldest first.
type SessionDetail struct {
	SessionSummary
	RecentMessages []MessageDetail `json:"recent_messages"`
}

// ConversationVariables groups a conversation's extracted variables
// into a flat name to value map.
type ConversationVariables struct {
	ConversationID   int               `json:"conversation_id"`
	PlatformUserID   string            `json:"platform_user_id"`
	PlatformUserName string            `json:"platform_user_name,omitempty"`
	Variables        map[string]string `json:"variables"`
	LastExtractedAt  time.Time         `json:"last_extracted_at"`
}

// BotDataSummary holds collection statistics for one bot.
type BotDataSummary struct {
	BotID                   int      `json:"bot_id"`
	BotName                 string   `json:"bot_name,omitempty"`
	TotalConversations      int      `json:"total_conversations"`
	ConversationsWithData   int      `json:"conversations_with_data"`
	TotalVariablesCollected int      `json:"total_variables_collected"`
	UniqueVariableNames     []string `json:"unique_variable_names"`
}

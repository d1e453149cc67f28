package api

import (
	"time"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/pkg/database"
)

// HealthCheck is one component's health entry.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Database *database.HealthStatus `json:"database,omitempty"`
	Checks   map[string]HealthCheck `json:"checks,omitempty"`
}

// ChatResponse is returned by the chat endpoints. Reply carries the
// whole turn; Replies keeps auto-advance messages separate.
type ChatResponse struct {
	SessionID     string   `json:"session_id"`
	Reply         string   `json:"reply"`
	Replies       []string `json:"replies,omitempty"`
	CurrentNodeID string   `json:"current_node_id,omitempty"`
	TimingMS      float64  `json:"timing_ms,omitempty"`
}

// BotResponse is the public shape of a bot configuration. The sealed
// token never leaves the service.
type BotResponse struct {
	ID         int       `json:"id"`
	Platform   string    `json:"platform"`
	BotName    string    `json:"bot_name,omitempty"`
	FlowID     int       `json:"flow_id"`
	OwnerID    string    `json:"owner_id"`
	IsActive   bool      `json:"is_active"`
	WebhookURL *string   `json:"webhook_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func botResponseFromEnt(bot *ent.BotConfig) BotResponse {
	return BotResponse{
		ID:         bot.ID,
		Platform:   string(bot.Platform),
		BotName:    bot.BotName,
		FlowID:     bot.FlowID,
		OwnerID:    bot.OwnerID,
		IsActive:   bot.IsActive,
		WebhookURL: bot.WebhookURL,
		CreatedAt:  bot.CreatedAt,
		UpdatedAt:  bot.UpdatedAt,
	}
}

// StatusResponse is the generic ack for lifecycle operations.
type StatusResponse struct {
	Status    string `json:"status"`
	Message   string `json:"message,omitempty"`
	SessionID string `json:"session_id,omitempty"`
}

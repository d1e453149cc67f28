// Package engineclient is the request/response HTTP client for the
// engine API, used by adapters as the fallback path when the streaming
// channel produced nothing.
package engineclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// messageTimeout covers a full LLM turn.
	messageTimeout = 60 * time.Second
	clearTimeout   = 5 * time.Second
)

// ChatRequest is the body of POST /chat/message-with-flow.
type ChatRequest struct {
	SessionID   string          `json:"session_id"`
	UserMessage string          `json:"user_message"`
	Flow        json.RawMessage `json:"flow"`
}

// ChatResponse is the engine's reply to one turn.
type ChatResponse struct {
	SessionID     string   `json:"session_id"`
	Reply         string   `json:"reply"`
	Replies       []string `json:"replies,omitempty"`
	CurrentNodeID string   `json:"current_node_id"`
	TimingMS      float64  `json:"timing_ms,omitempty"`
}

// Client talks to one engine instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the engine at baseURL (no trailing slash).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// SendMessage runs one turn through the engine. Returns nil on any
// failure; the caller treats that as "no fallback reply".
func (c *Client) SendMessage(ctx context.Context, sessionID, userMessage string, flowData json.RawMessage) *ChatResponse {
	body, err := json.Marshal(ChatRequest{
		SessionID:   sessionID,
		UserMessage: userMessage,
		Flow:        flowData,
	})
	if err != nil {
		slog.Error("Failed to encode engine request", "session_id", sessionID, "error", err)
		return nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, messageTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost,
		c.baseURL+"/chat/message-with-flow", bytes.NewReader(body))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Error("Engine request failed", "session_id", sessionID, "error", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		slog.Error("Engine returned error",
			"session_id", sessionID, "status", resp.StatusCode, "body", string(snippet))
		return nil
	}

	var result ChatResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Error("Failed to decode engine response", "session_id", sessionID, "error", err)
		return nil
	}

	slog.Info("Engine response received",
		"session_id", sessionID, "current_node_id", result.CurrentNodeID,
		"reply_len", len(result.Reply))
	return &result
}

// ClearSession removes a session from the engine's store. A 404 means
// the session was already gone and counts as success.
func (c *Client) ClearSession(ctx context.Context, sessionID string) error {
	reqCtx, cancel := context.WithTimeout(ctx, clearTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodDelete,
		c.baseURL+"/session/"+sessionID, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to clear session %s: %w", sessionID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusNotFound:
		return nil
	default:
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 500))
		return fmt.Errorf("engine returned %d clearing session %s: %s",
			resp.StatusCode, sessionID, string(snippet))
	}
}

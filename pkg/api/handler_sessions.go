package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/models"
)

const defaultSessionListLimit = 50

// listSessionsHandler handles GET /sessions with optional status, bot_id
// and limit filters.
func (s *Server) listSessionsHandler(c *echo.Context) error {
	botID := 0
	if raw := c.QueryParam("bot_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid bot_id")
		}
		botID = parsed
	}
	limit := queryLimit(c, defaultSessionListLimit)

	sessions, err := s.conversations.ListSessions(c.Request().Context(), c.QueryParam("status"), botID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// getSessionHandler handles GET /sessions/:id.
func (s *Server) getSessionHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := s.conversations.GetSessionDetail(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, detail)
}

// closeSessionHandler handles POST /sessions/:id/close.
func (s *Server) closeSessionHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sessionID, err := s.conversations.CloseSession(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	s.clearEngineState(c.Request().Context(), sessionID)

	return c.JSON(http.StatusOK, &StatusResponse{Status: "success", Message: "session closed", SessionID: sessionID})
}

// resetSessionHandler handles POST /sessions/:id/reset. The conversation
// gets a fresh session id and an empty history; the retired id's engine
// state is cleared so it cannot leak into the new session.
func (s *Server) resetSessionHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	oldSessionID, err := s.conversations.ResetSession(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	s.clearEngineState(c.Request().Context(), oldSessionID)

	return c.JSON(http.StatusOK, &StatusResponse{Status: "success", Message: "session reset", SessionID: oldSessionID})
}

// deleteSessionHandler handles DELETE /sessions/:id.
func (s *Server) deleteSessionHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	sessionID, err := s.conversations.DeleteSession(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	s.clearEngineState(c.Request().Context(), sessionID)

	return c.JSON(http.StatusOK, &StatusResponse{Status: "success", Message: "session deleted", SessionID: sessionID})
}

// botConversationsHandler handles GET /bots/:id/conversations.
func (s *Server) botConversationsHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit := queryLimit(c, defaultSessionListLimit)

	sessions, err := s.conversations.ListSessions(c.Request().Context(), c.QueryParam("status"), botID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, sessions)
}

// conversationMessagesHandler handles GET /conversations/:id/messages,
// oldest first.
func (s *Server) conversationMessagesHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit := queryLimit(c, defaultSessionListLimit)

	messages, err := s.conversations.RecentMessages(c.Request().Context(), conversationID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]models.MessageDetail, 0, len(messages))
	for _, msg := range messages {
		out = append(out, models.MessageDetail{
			ID:        msg.ID,
			Role:      strings.ToLower(string(msg.Role)),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, out)
}

// clearEngineState drops the engine-side conversation state for a
// retired session id. Failures are logged only; the gateway-side
// lifecycle change already happened.
func (s *Server) clearEngineState(ctx context.Context, sessionID string) {
	if s.runner == nil || sessionID == "" {
		return
	}
	if err := s.runner.ResetSession(ctx, sessionID); err != nil {
		slog.Warn("Failed to clear engine session state", "session_id", sessionID, "error", err)
	}
}

// queryLimit parses the limit query param, falling back to def.
func queryLimit(c *echo.Context, def int) int {
	raw := c.QueryParam("limit")
	if raw == "" {
		return def
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 {
		return def
	}
	return limit
}

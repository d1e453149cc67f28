package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/events"
)

const wsGreetingTimeout = 5 * time.Second

// wsHandler handles GET /ws/session/:session_id. The connect-time
// frames are written directly to the socket; the hub only fans out
// events produced after the client is registered, so going through the
// publisher here would race the registration and drop them.
func (s *Server) wsHandler(c *echo.Context) error {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.connManager == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "websocket hub not available")
	}

	// An optional flow_id resolves a server-side flow so clients do not
	// have to attach flow_data to every frame.
	var defaultFlow []byte
	if raw := c.QueryParam("flow_id"); raw != "" && s.flows != nil {
		flowID, err := strconv.Atoi(raw)
		if err != nil || flowID <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid flow_id")
		}
		defaultFlow, err = s.flows(c.Request().Context(), flowID)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, "Flow not found")
		}
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		slog.Error("WebSocket accept failed", "session_id", sessionID, "error", err)
		return nil
	}

	ctx := c.Request().Context()
	started := events.SessionStartedPayload{
		Type:      events.EventTypeSessionStarted,
		SessionID: sessionID,
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
	}
	if err := writeFrame(ctx, conn, started); err != nil {
		slog.Warn("Failed to send session_started", "session_id", sessionID, "error", err)
	}

	// Replay the current execution state so a reconnecting client can
	// render the conversation without waiting for the next turn.
	if s.runner != nil {
		if snapshot, err := s.runner.SessionSnapshot(ctx, sessionID); err == nil && snapshot != nil {
			snapshot.Type = events.EventTypeFlowExecutionState
			snapshot.SessionID = sessionID
			snapshot.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
			if err := writeFrame(ctx, conn, snapshot); err != nil {
				slog.Warn("Failed to send flow_execution_state", "session_id", sessionID, "error", err)
			}
		}
	}

	s.connManager.HandleConnection(ctx, conn, sessionID, defaultFlow)
	return nil
}

func writeFrame(ctx context.Context, conn *websocket.Conn, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	writeCtx, cancel := context.WithTimeout(ctx, wsGreetingTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}

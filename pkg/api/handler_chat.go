package api

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"
	"time"

	echo "github.com/labstack/echo/v5"
)

type chatMessageRequest struct {
	SessionID   string `json:"session_id"`
	FlowPath    string `json:"flow_path"`
	UserMessage string `json:"user_message"`
}

type chatMessageWithFlowRequest struct {
	SessionID   string          `json:"session_id"`
	Flow        json.RawMessage `json:"flow"`
	UserMessage string          `json:"user_message"`
}

// chatMessageHandler handles POST /chat/message: one non-streaming turn
// with the flow loaded from disk.
func (s *Server) chatMessageHandler(c *echo.Context) error {
	var req chatMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if req.FlowPath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flow_path is required")
	}

	flowData, err := os.ReadFile(req.FlowPath)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Flow not found")
	}

	return s.runChatTurn(c, req.SessionID, req.UserMessage, flowData)
}

// chatMessageWithFlowHandler handles POST /chat/message-with-flow: same
// turn with the flow definition inline.
func (s *Server) chatMessageWithFlowHandler(c *echo.Context) error {
	var req chatMessageWithFlowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.SessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session_id is required")
	}
	if len(req.Flow) == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "flow is required")
	}

	return s.runChatTurn(c, req.SessionID, req.UserMessage, req.Flow)
}

func (s *Server) runChatTurn(c *echo.Context, sessionID, userMessage string, flowData []byte) error {
	if s.runner == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "engine not available")
	}
	ctx := c.Request().Context()

	start := time.Now()
	replies, err := s.runner.ProcessMessage(ctx, sessionID, userMessage, flowData)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	resp := &ChatResponse{
		SessionID: sessionID,
		Reply:     strings.Join(replies, "\n\n"),
		Replies:   replies,
		TimingMS:  float64(time.Since(start).Milliseconds()),
	}
	if snapshot, err := s.runner.SessionSnapshot(ctx, sessionID); err == nil && snapshot != nil {
		resp.CurrentNodeID = snapshot.CurrentNodeID
	}
	return c.JSON(http.StatusOK, resp)
}

// clearEngineSessionHandler handles DELETE /session/:session_id,
// removing the engine-side conversation state.
func (s *Server) clearEngineSessionHandler(c *echo.Context) error {
	sessionID := c.Param("session_id")
	if sessionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "session id is required")
	}
	if s.runner == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "engine not available")
	}

	if err := s.runner.ResetSession(c.Request().Context(), sessionID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "success", SessionID: sessionID})
}

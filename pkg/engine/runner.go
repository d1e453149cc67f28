package engine

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/flow"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/session"
)

const (
	// AutoAdvanceSentinel stands in for user input when a node with
	// skip_user_response chains straight into the next turn.
	AutoAdvanceSentinel = "[AUTO_ADVANCE]"

	maxAutoAdvances = 10
)

// Runner drives complete message turns: it owns session load/save around
// the orchestrator and the auto-advance chain. It is the hub's
// UserMessageHandler and the HTTP chat handler's backend.
type Runner struct {
	store     session.Store
	orch      *Orchestrator
	publisher *events.Publisher
}

// NewRunner wires a runner over its collaborators.
func NewRunner(store session.Store, orch *Orchestrator, publisher *events.Publisher) *Runner {
	return &Runner{store: store, orch: orch, publisher: publisher}
}

// HandleUserMessage implements events.UserMessageHandler for WebSocket
// turns. Errors are reported on the session's event stream.
func (r *Runner) HandleUserMessage(ctx context.Context, sessionID, message string, flowData []byte) {
	if _, err := r.ProcessMessage(ctx, sessionID, message, flowData); err != nil {
		slog.Error("Message processing failed",
			"session_id", sessionID, "error", err)
		r.publisher.PublishError(sessionID, events.ErrorPayload{
			ErrorMessage: err.Error(),
			ErrorType:    "processing_error",
		})
	}
}

// ProcessMessage runs one user message through the flow, following
// skip_user_response chains, and persists the session. Returns every
// assistant reply produced, in order.
func (r *Runner) ProcessMessage(ctx context.Context, sessionID, message string, flowData []byte) ([]string, error) {
	start := time.Now()

	f, err := flow.EnsureEngineFormat(flowData)
	if err != nil {
		return nil, fmt.Errorf("failed to load flow: %w", err)
	}

	sess, err := r.store.Load(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}
	if sess == nil {
		sess = models.NewChatSession(sessionID, f.FirstNodeID)
		slog.Info("Created session", "session_id", sessionID, "first_node_id", f.FirstNodeID)
	}

	reply, _ := r.orch.RunStep(ctx, f, sess, message)
	replies := []string{reply}

	// skip_user_response chains the next node without waiting for the
	// user, bounded to avoid livelock on a miswired flow.
	for i := 0; i < maxAutoAdvances; i++ {
		node := f.NodeByID(sess.CurrentNodeID)
		if node == nil || !node.SkipUserResponse || node.IsEnd {
			break
		}
		slog.Info("Auto-advancing", "session_id", sessionID, "node_id", node.ID)
		reply, _ = r.orch.RunStep(ctx, f, sess, AutoAdvanceSentinel)
		replies = append(replies, reply)
	}

	if err := r.store.Save(ctx, sess); err != nil {
		return replies, fmt.Errorf("failed to save session %s: %w", sessionID, err)
	}

	r.publisher.PublishMessageProcessingComplete(sessionID, events.MessageProcessingCompletePayload{
		NodeID:  sess.CurrentNodeID,
		TotalMS: roundMS(time.Since(start)),
	})

	if node := f.NodeByID(sess.CurrentNodeID); node != nil && node.IsEnd {
		r.publisher.PublishSessionEnded(sessionID, events.SessionEndedPayload{
			TotalMessages:   len(sess.History),
			DurationSeconds: sessionDuration(sess),
		})
	}

	return replies, nil
}

// ResetSession clears the persisted state for a session.
func (r *Runner) ResetSession(ctx context.Context, sessionID string) error {
	return r.store.Clear(ctx, sessionID)
}

// SessionSnapshot loads a session and renders it as the connect-time
// state payload. Returns nil when the session is not persisted.
func (r *Runner) SessionSnapshot(ctx context.Context, sessionID string) (*events.FlowExecutionStatePayload, error) {
	sess, err := r.store.Load(ctx, sessionID)
	if err != nil || sess == nil {
		return nil, err
	}

	history := make([]events.HistoryMessage, 0, len(sess.History))
	for _, msg := range sess.History {
		history = append(history, events.HistoryMessage{Role: msg.Role, Content: msg.Content})
	}
	return &events.FlowExecutionStatePayload{
		CurrentNodeID:  sess.CurrentNodeID,
		Variables:      sess.ExtractedVariables,
		MessageHistory: history,
		IsActive:       true,
	}, nil
}

func sessionDuration(sess *models.ChatSession) float64 {
	if len(sess.History) == 0 {
		return 0
	}
	seconds := time.Since(sess.History[0].Timestamp).Seconds()
	return math.Round(seconds*1000) / 1000
}

// Package events provides real-time per-session event delivery over
// WebSocket: payload types, a typed publisher, and the connection hub
// that fans events out to every socket watching a session.
package events

import "encoding/json"

// Event types emitted during flow execution.
const (
	// Session lifecycle
	EventTypeSessionStarted = "session_started"
	EventTypeSessionEnded   = "session_ended"

	// Node lifecycle
	EventTypeNodeEntered = "node_entered"
	EventTypeNodeExited  = "node_exited"

	// Flow progress
	EventTypePathwaySelected   = "pathway_selected"
	EventTypeVariableExtracted = "variable_extracted"
	EventTypeResponseGenerated = "response_generated"

	// Messages
	EventTypeUserMessage               = "user_message"
	EventTypeAssistantMessage          = "assistant_message"
	EventTypeMessageProcessingComplete = "message_processing_complete"

	// Turn summary
	EventTypeDecisionStep = "decision_step"

	// Errors
	EventTypeError = "error"

	// State snapshot sent on connect when the session already exists.
	EventTypeFlowExecutionState = "flow_execution_state"
)

// Heartbeat message types.
const (
	MessageTypePing = "ping"
	MessageTypePong = "pong"
)

// ClientMessage is the JSON structure for client → server WebSocket
// messages. A bare "pong" text frame is also accepted.
type ClientMessage struct {
	Type     string          `json:"type"`                // "user_message", "pong"
	Message  string          `json:"message,omitempty"`   // user message text
	FlowData json.RawMessage `json:"flow_data,omitempty"` // flow definition for this turn
}

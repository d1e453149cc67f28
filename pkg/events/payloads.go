package events

// Every payload carries type, session_id, timestamp (RFC3339Nano) and a
// free-form metadata mapping. The publisher fills Type and Timestamp;
// callers provide the domain fields.

// SessionStartedPayload is sent when a client attaches to a session.
type SessionStartedPayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
	FlowID    string         `json:"flow_id"`
	FlowName  string         `json:"flow_name,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// SessionEndedPayload is sent when a conversation reaches an end node.
type SessionEndedPayload struct {
	Type            string         `json:"type"`
	SessionID       string         `json:"session_id"`
	Timestamp       string         `json:"timestamp"`
	TotalMessages   int            `json:"total_messages"`
	DurationSeconds float64        `json:"duration_seconds"`
	Metadata        map[string]any `json:"metadata,omitempty"`
}

// NodeEnteredPayload is sent when flow execution enters a node.
type NodeEnteredPayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
	NodeID    string         `json:"node_id"`
	NodeType  string         `json:"node_type"`
	NodeName  string         `json:"node_name,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NodeExitedPayload is sent when flow execution leaves a node.
type NodeExitedPayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
	NodeID    string         `json:"node_id"`
	NodeType  string         `json:"node_type"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// PathwaySelectedPayload is sent after the pathway selector picks the
// next node. ConfidenceScore is the fuzzy match ratio (0–100).
type PathwaySelectedPayload struct {
	Type              string         `json:"type"`
	SessionID         string         `json:"session_id"`
	Timestamp         string         `json:"timestamp"`
	FromNodeID        string         `json:"from_node_id"`
	ToNodeID          string         `json:"to_node_id"`
	ConnectionID      string         `json:"connection_id,omitempty"`
	ConnectionLabel   string         `json:"connection_label,omitempty"`
	Reasoning         string         `json:"reasoning,omitempty"`
	ConfidenceScore   int            `json:"confidence_score"`
	AvailablePathways []string       `json:"available_pathways"`
	LLMResponse       string         `json:"llm_response,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`
}

// VariableExtractedPayload is sent once per newly extracted variable.
type VariableExtractedPayload struct {
	Type          string         `json:"type"`
	SessionID     string         `json:"session_id"`
	Timestamp     string         `json:"timestamp"`
	NodeID        string         `json:"node_id"`
	VariableName  string         `json:"variable_name"`
	VariableValue any            `json:"variable_value"`
	AllVariables  map[string]any `json:"all_variables"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// ResponseGeneratedPayload is sent when the assistant reply is produced.
type ResponseGeneratedPayload struct {
	Type         string         `json:"type"`
	SessionID    string         `json:"session_id"`
	Timestamp    string         `json:"timestamp"`
	NodeID       string         `json:"node_id"`
	ResponseText string         `json:"response_text"`
	TokensUsed   int            `json:"tokens_used,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// UserMessagePayload mirrors the inbound user message into the stream.
type UserMessagePayload struct {
	Type          string         `json:"type"`
	SessionID     string         `json:"session_id"`
	Timestamp     string         `json:"timestamp"`
	Message       string         `json:"message"`
	CurrentNodeID string         `json:"current_node_id,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// AssistantMessagePayload carries one assistant message to subscribers.
// Downstream adapters turn these into chat-platform sends.
type AssistantMessagePayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
	Message   string         `json:"message"`
	NodeID    string         `json:"node_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// MessageProcessingCompletePayload marks the end of one turn, including
// any auto-advance follow-ups.
type MessageProcessingCompletePayload struct {
	Type      string         `json:"type"`
	SessionID string         `json:"session_id"`
	Timestamp string         `json:"timestamp"`
	NodeID    string         `json:"node_id"`
	TotalMS   float64        `json:"total_ms"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// DecisionStepPayload is the comprehensive per-turn summary: which node
// ran, which pathway was taken, what was extracted, and what it cost.
type DecisionStepPayload struct {
	Type               string            `json:"type"`
	SessionID          string            `json:"session_id"`
	Timestamp          string            `json:"timestamp"`
	StepName           string            `json:"step_name"`
	NodeID             string            `json:"node_id"`
	NodeName           string            `json:"node_name,omitempty"`
	PreviousNodeID     string            `json:"previous_node_id,omitempty"`
	AvailablePathways  []string          `json:"available_pathways,omitempty"`
	ChosenPathway      string            `json:"chosen_pathway,omitempty"`
	PathwayConfidence  int               `json:"pathway_confidence,omitempty"`
	LLMReasoning       string            `json:"llm_reasoning,omitempty"`
	VariablesExtracted map[string]any    `json:"variables_extracted,omitempty"`
	VariablesStatus    map[string]bool   `json:"variables_status,omitempty"`
	AssistantResponse  string            `json:"assistant_response,omitempty"`
	TimingMS           float64           `json:"timing_ms,omitempty"`
	TokensUsed         int               `json:"tokens_used,omitempty"`
	CostUSD            float64           `json:"cost_usd,omitempty"`
	ModelName          string            `json:"model_name,omitempty"`
	StepTimings        map[string]float64 `json:"step_timings,omitempty"`
	Metadata           map[string]any    `json:"metadata,omitempty"`
}

// ErrorPayload reports a failure during flow execution.
type ErrorPayload struct {
	Type         string         `json:"type"`
	SessionID    string         `json:"session_id"`
	Timestamp    string         `json:"timestamp"`
	ErrorMessage string         `json:"error_message"`
	ErrorType    string         `json:"error_type"`
	NodeID       string         `json:"node_id,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// HistoryMessage is one history entry inside a state snapshot.
type HistoryMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// FlowExecutionStatePayload is the one-shot snapshot sent right after a
// client connects to an already-persisted session.
type FlowExecutionStatePayload struct {
	Type           string           `json:"type"`
	SessionID      string           `json:"session_id"`
	Timestamp      string           `json:"timestamp"`
	CurrentNodeID  string           `json:"current_node_id,omitempty"`
	Variables      map[string]any   `json:"variables"`
	MessageHistory []HistoryMessage `json:"message_history"`
	IsActive       bool             `json:"is_active"`
}

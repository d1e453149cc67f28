package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// Broadcaster delivers a serialized event to every socket attached to a
// session. Implemented by ConnectionManager.
type Broadcaster interface {
	Broadcast(sessionID string, event []byte)
}

// Publisher serializes typed event payloads and fans them out through a
// Broadcaster. Each public method accepts a specific payload struct and
// stamps its Type and Timestamp before delivery. Events never mutate
// session state; they are observation only.
type Publisher struct {
	broadcaster Broadcaster
}

// NewPublisher creates a Publisher over the given broadcaster.
func NewPublisher(b Broadcaster) *Publisher {
	return &Publisher{broadcaster: b}
}

func eventTimestamp() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func (p *Publisher) publish(sessionID, eventType string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	p.broadcaster.Broadcast(sessionID, data)
	return nil
}

// PublishSessionEnded announces that the conversation reached an end node.
func (p *Publisher) PublishSessionEnded(sessionID string, payload SessionEndedPayload) error {
	payload.Type = EventTypeSessionEnded
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishNodeEntered announces entry into a node.
func (p *Publisher) PublishNodeEntered(sessionID string, payload NodeEnteredPayload) error {
	payload.Type = EventTypeNodeEntered
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishNodeExited announces exit from a node.
func (p *Publisher) PublishNodeExited(sessionID string, payload NodeExitedPayload) error {
	payload.Type = EventTypeNodeExited
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishPathwaySelected announces the chosen next node.
func (p *Publisher) PublishPathwaySelected(sessionID string, payload PathwaySelectedPayload) error {
	payload.Type = EventTypePathwaySelected
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishVariableExtracted announces one newly extracted variable.
func (p *Publisher) PublishVariableExtracted(sessionID string, payload VariableExtractedPayload) error {
	payload.Type = EventTypeVariableExtracted
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishResponseGenerated announces the generated assistant reply.
func (p *Publisher) PublishResponseGenerated(sessionID string, payload ResponseGeneratedPayload) error {
	payload.Type = EventTypeResponseGenerated
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishUserMessage mirrors the inbound user message to subscribers.
func (p *Publisher) PublishUserMessage(sessionID string, payload UserMessagePayload) error {
	payload.Type = EventTypeUserMessage
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishAssistantMessage delivers an assistant message to subscribers.
func (p *Publisher) PublishAssistantMessage(sessionID string, payload AssistantMessagePayload) error {
	payload.Type = EventTypeAssistantMessage
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishMessageProcessingComplete marks the end of one full turn.
func (p *Publisher) PublishMessageProcessingComplete(sessionID string, payload MessageProcessingCompletePayload) error {
	payload.Type = EventTypeMessageProcessingComplete
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishDecisionStep delivers the comprehensive per-turn summary.
func (p *Publisher) PublishDecisionStep(sessionID string, payload DecisionStepPayload) error {
	payload.Type = EventTypeDecisionStep
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

// PublishError reports a failure on the session stream.
func (p *Publisher) PublishError(sessionID string, payload ErrorPayload) error {
	payload.Type = EventTypeError
	payload.SessionID = sessionID
	payload.Timestamp = eventTimestamp()
	return p.publish(sessionID, payload.Type, payload)
}

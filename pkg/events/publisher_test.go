package events

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureBroadcaster struct {
	sessionIDs []string
	events     [][]byte
}

func (c *captureBroadcaster) Broadcast(sessionID string, event []byte) {
	c.sessionIDs = append(c.sessionIDs, sessionID)
	c.events = append(c.events, event)
}

func (c *captureBroadcaster) last(t *testing.T) map[string]interface{} {
	t.Helper()
	require.NotEmpty(t, c.events)
	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(c.events[len(c.events)-1], &msg))
	return msg
}

func TestPublisherStampsTypeSessionAndTimestamp(t *testing.T) {
	b := &captureBroadcaster{}
	p := NewPublisher(b)

	err := p.PublishNodeEntered("sess-1", NodeEnteredPayload{
		NodeID:   "greeting",
		NodeType: "normal",
		NodeName: "Greeting",
	})
	require.NoError(t, err)

	msg := b.last(t)
	assert.Equal(t, "node_entered", msg["type"])
	assert.Equal(t, "sess-1", msg["session_id"])
	assert.Equal(t, "greeting", msg["node_id"])

	ts, err := time.Parse(time.RFC3339Nano, msg["timestamp"].(string))
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}

func TestPublisherPathwaySelected(t *testing.T) {
	b := &captureBroadcaster{}
	p := NewPublisher(b)

	err := p.PublishPathwaySelected("sess-1", PathwaySelectedPayload{
		FromNodeID:        "greeting",
		ToNodeID:          "pricing",
		ConnectionLabel:   "asked about price",
		ConfidenceScore:   92,
		AvailablePathways: []string{"asked about price", "wants support"},
	})
	require.NoError(t, err)

	msg := b.last(t)
	assert.Equal(t, "pathway_selected", msg["type"])
	assert.Equal(t, "pricing", msg["to_node_id"])
	assert.Equal(t, float64(92), msg["confidence_score"])
	assert.Equal(t, []interface{}{"asked about price", "wants support"}, msg["available_pathways"])
}

func TestPublisherDecisionStep(t *testing.T) {
	b := &captureBroadcaster{}
	p := NewPublisher(b)

	err := p.PublishDecisionStep("sess-1", DecisionStepPayload{
		StepName:           "message_turn",
		NodeID:             "pricing",
		PreviousNodeID:     "greeting",
		ChosenPathway:      "asked about price",
		PathwayConfidence:  92,
		VariablesExtracted: map[string]any{"user_name": "Maria"},
		VariablesStatus:    map[string]bool{"user_name": true},
		TimingMS:           412.3,
		StepTimings:        map[string]float64{"pathway_selection_llm_ms": 210.5},
	})
	require.NoError(t, err)

	msg := b.last(t)
	assert.Equal(t, "decision_step", msg["type"])
	assert.Equal(t, "message_turn", msg["step_name"])
	assert.Equal(t, map[string]interface{}{"user_name": "Maria"}, msg["variables_extracted"])
	assert.Equal(t, 210.5, msg["step_timings"].(map[string]interface{})["pathway_selection_llm_ms"])
}

package engine

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/session"
)

func chainedFlowJSON(t *testing.T) []byte {
	t.Helper()
	f := &models.Flow{
		FirstNodeID: "start",
		Nodes: []models.Node{
			{ID: "start", NodeType: models.NodeTypeStart, IsStart: true},
			{ID: "mid", NodeType: models.NodeTypeNormal, SkipUserResponse: true, UseLLM: true},
			{ID: "end", NodeType: models.NodeTypeEnd, IsEnd: true},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "to-mid", Source: "start", Target: "mid"},
			{ID: "c2", Label: "to-end", Source: "mid", Target: "end"},
		},
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)
	return data
}

func newTestRunner(client *scriptedLLM) (*Runner, *eventRecorder, session.Store) {
	recorder := &eventRecorder{}
	publisher := events.NewPublisher(recorder)
	store := session.NewMemoryStore()
	return NewRunner(store, NewOrchestrator(client, publisher), publisher), recorder, store
}

func TestProcessMessageAutoAdvance(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("to-mid"),  // turn 1: pathway selection
		okResult("first"),   // turn 1: response generation
		okResult("to-end"),  // auto-advance: pathway selection
		okResult("second"),  // auto-advance: response generation
	}}
	runner, recorder, store := newTestRunner(client)

	replies, err := runner.ProcessMessage(context.Background(), "s1", "hi", chainedFlowJSON(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second"}, replies)

	saved, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "end", saved.CurrentNodeID)
	// two user messages (real + sentinel) and two assistant replies
	assert.Len(t, saved.History, 4)
	assert.Equal(t, AutoAdvanceSentinel, saved.History[2].Content)

	types := recorder.types()
	assert.Contains(t, types, "message_processing_complete")
	assert.Contains(t, types, "session_ended")
	assert.Less(t,
		indexOf(types, "message_processing_complete"),
		indexOf(types, "session_ended"))
}

func TestProcessMessageCreatesAndReusesSession(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okResult("nowhere"), // no match candidates resolve via fuzzy best
		okResult("reply 1"),
	}}
	runner, _, store := newTestRunner(client)

	f := &models.Flow{
		FirstNodeID: "start",
		Nodes: []models.Node{
			{ID: "start", NodeType: models.NodeTypeStart, IsStart: true},
			{ID: "next", NodeType: models.NodeTypeNormal},
		},
		Connections: []models.Connection{
			{ID: "c1", Label: "continue", Source: "start", Target: "next"},
		},
	}
	data, err := json.Marshal(f)
	require.NoError(t, err)

	_, err = runner.ProcessMessage(context.Background(), "s1", "hello", data)
	require.NoError(t, err)

	saved, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, saved)
	firstLen := len(saved.History)

	client.mu.Lock()
	client.queue = []models.LLMResult{okResult("continue"), okResult("reply 2")}
	client.mu.Unlock()

	_, err = runner.ProcessMessage(context.Background(), "s1", "again", data)
	require.NoError(t, err)

	saved, err = store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Greater(t, len(saved.History), firstLen)
}

func TestProcessMessageRejectsBadFlow(t *testing.T) {
	client := &scriptedLLM{}
	runner, _, _ := newTestRunner(client)

	_, err := runner.ProcessMessage(context.Background(), "s1", "hi", []byte(`{"what": true}`))
	assert.Error(t, err)
}

func TestSessionSnapshot(t *testing.T) {
	runner, _, store := newTestRunner(&scriptedLLM{})

	snapshot, err := runner.SessionSnapshot(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, snapshot)

	sess := models.NewChatSession("s1", "start")
	sess.AddMessage(models.RoleUser, "oi")
	sess.MergeVariables(map[string]any{"user_name": "Maria"})
	require.NoError(t, store.Save(context.Background(), sess))

	snapshot, err = runner.SessionSnapshot(context.Background(), "s1")
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, "start", snapshot.CurrentNodeID)
	assert.True(t, snapshot.IsActive)
	require.Len(t, snapshot.MessageHistory, 1)
	assert.Equal(t, "oi", snapshot.MessageHistory[0].Content)
}

func TestResetSession(t *testing.T) {
	runner, _, store := newTestRunner(&scriptedLLM{})

	require.NoError(t, store.Save(context.Background(), models.NewChatSession("s1", "start")))
	require.NoError(t, runner.ResetSession(context.Background(), "s1"))

	loaded, err := store.Load(context.Background(), "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

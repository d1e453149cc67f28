package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/engine"
	"github.com/easypath-ai/easypath/pkg/events"
	"github.com/easypath-ai/easypath/pkg/llm"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/session"
)

const testFlowJSON = `{
	"first_node_id": "start",
	"nodes": [
		{"id": "start", "node_type": "start", "prompt": {"context": "", "objective": "Greet", "notes": "", "examples": "", "custom_fields": {}},
		 "is_start": true, "is_end": false, "use_llm": false, "is_global": false, "node_description": "",
		 "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false,
		 "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false},
		{"id": "end", "node_type": "end", "prompt": {"context": "", "objective": "Say goodbye", "notes": "", "examples": "", "custom_fields": {}},
		 "is_start": false, "is_end": true, "use_llm": false, "is_global": false, "node_description": "",
		 "auto_return_to_previous": false, "extract_vars": [], "temperature": 0.2, "skip_user_response": false,
		 "loop_enabled": false, "loop_condition": "", "overrides_global_pathway": false}
	],
	"connections": [
		{"id": "c1", "label": "to-end", "description": "go to end", "else_option": false, "source": "start", "target": "end"}
	],
	"global_objective": "Help the user",
	"global_tone": "",
	"global_language": "",
	"global_behaviour": "",
	"global_values": ""
}`

// scriptedLLM returns queued results in order.
type scriptedLLM struct {
	mu    sync.Mutex
	queue []models.LLMResult
}

func (s *scriptedLLM) Chat(_ context.Context, _ []llm.Message, _ float32) models.LLMResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.queue) == 0 {
		return models.FailedLLMResult("mock-model", "no scripted response")
	}
	result := s.queue[0]
	s.queue = s.queue[1:]
	return result
}

func okLLM(response string) models.LLMResult {
	return models.LLMResult{Success: true, Response: response, ModelName: "mock-model", TotalTokens: 10}
}

func newEngineServer(client llm.Client) (*Server, *session.MemoryStore) {
	manager := events.NewConnectionManager(5 * time.Second)
	publisher := events.NewPublisher(manager)
	store := session.NewMemoryStore()
	runner := engine.NewRunner(store, engine.NewOrchestrator(client, publisher), publisher)
	manager.SetHandler(runner)

	srv := NewServer(Deps{
		Store:       store,
		Runner:      runner,
		Publisher:   publisher,
		ConnManager: manager,
	})
	return srv, store
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)
	return rec
}

func TestChatMessageWithFlowEndpoint(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{
		okLLM("to-end"), // pathway selection
		okLLM("tchau"),  // response generation
	}}
	srv, _ := newEngineServer(client)

	rec := doJSON(t, srv, http.MethodPost, "/chat/message-with-flow", map[string]any{
		"session_id":   "s1",
		"flow":         json.RawMessage(testFlowJSON),
		"user_message": "hi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "s1", resp.SessionID)
	assert.Equal(t, "tchau", resp.Reply)
	assert.Equal(t, []string{"tchau"}, resp.Replies)
	assert.Equal(t, "end", resp.CurrentNodeID)
}

func TestChatMessageWithFlowValidation(t *testing.T) {
	srv, _ := newEngineServer(&scriptedLLM{})

	rec := doJSON(t, srv, http.MethodPost, "/chat/message-with-flow", map[string]any{
		"flow":         json.RawMessage(testFlowJSON),
		"user_message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/chat/message-with-flow", map[string]any{
		"session_id":   "s1",
		"user_message": "hi",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatMessageReadsFlowFromDisk(t *testing.T) {
	dir := t.TempDir()
	flowPath := filepath.Join(dir, "flow.json")
	require.NoError(t, os.WriteFile(flowPath, []byte(testFlowJSON), 0o644))

	client := &scriptedLLM{queue: []models.LLMResult{okLLM("to-end"), okLLM("ok")}}
	srv, _ := newEngineServer(client)

	rec := doJSON(t, srv, http.MethodPost, "/chat/message", map[string]any{
		"session_id":   "s2",
		"flow_path":    flowPath,
		"user_message": "hi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp ChatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Reply)

	rec = doJSON(t, srv, http.MethodPost, "/chat/message", map[string]any{
		"session_id":   "s2",
		"flow_path":    filepath.Join(dir, "missing.json"),
		"user_message": "hi",
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestClearEngineSessionEndpoint(t *testing.T) {
	client := &scriptedLLM{queue: []models.LLMResult{okLLM("to-end"), okLLM("ok")}}
	srv, store := newEngineServer(client)

	rec := doJSON(t, srv, http.MethodPost, "/chat/message-with-flow", map[string]any{
		"session_id":   "s3",
		"flow":         json.RawMessage(testFlowJSON),
		"user_message": "hi",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	sess, err := store.Load(context.Background(), "s3")
	require.NoError(t, err)
	require.NotNil(t, sess)

	rec = doJSON(t, srv, http.MethodDelete, "/session/s3", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	sess, err = store.Load(context.Background(), "s3")
	require.NoError(t, err)
	assert.Nil(t, sess)
}

func TestLoadFlowEndpoint(t *testing.T) {
	dir := t.TempDir()
	flowPath := filepath.Join(dir, "flow.json")
	require.NoError(t, os.WriteFile(flowPath, []byte(testFlowJSON), 0o644))

	srv, _ := newEngineServer(&scriptedLLM{})

	rec := doJSON(t, srv, http.MethodGet, "/flow/load?file_path="+flowPath, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	assert.Equal(t, "start", decoded["first_node_id"])

	rec = doJSON(t, srv, http.MethodGet, "/flow/load?file_path="+filepath.Join(dir, "missing.json"), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/flow/load", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthEndpointWithoutBackends(t *testing.T) {
	srv, _ := newEngineServer(&scriptedLLM{})

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestWSSessionEndpoint(t *testing.T) {
	srv, store := newEngineServer(&scriptedLLM{})

	sess := models.NewChatSession("ws-1", "start")
	sess.AddMessage(models.RoleUser, "oi")
	require.NoError(t, store.Save(context.Background(), sess))

	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(httpSrv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + httpSrv.URL[len("http"):] + "/ws/session/ws-1"
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	readFrame := func() map[string]any {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(data, &decoded))
		return decoded
	}

	started := readFrame()
	assert.Equal(t, "session_started", started["type"])
	assert.Equal(t, "ws-1", started["session_id"])

	state := readFrame()
	assert.Equal(t, "flow_execution_state", state["type"])
	assert.Equal(t, "start", state["current_node_id"])
}

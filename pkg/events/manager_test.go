package events

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingHandler captures user_message dispatches.
type recordingHandler struct {
	mu       sync.Mutex
	messages []string
	flows    [][]byte
	done     chan struct{}
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{done: make(chan struct{}, 8)}
}

func (h *recordingHandler) HandleUserMessage(_ context.Context, _ string, message string, flowData []byte) {
	h.mu.Lock()
	h.messages = append(h.messages, message)
	h.flows = append(h.flows, flowData)
	h.mu.Unlock()
	h.done <- struct{}{}
}

func setupTestManager(t *testing.T) (*ConnectionManager, *httptest.Server) {
	t.Helper()

	manager := NewConnectionManager(5 * time.Second)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			t.Logf("WebSocket accept error: %v", err)
			return
		}
		sessionID := strings.TrimPrefix(r.URL.Path, "/ws/session/")
		manager.HandleConnection(r.Context(), conn, sessionID, nil)
	}))

	t.Cleanup(func() { server.Close() })
	return manager, server
}

func connectWS(t *testing.T, server *httptest.Server, sessionID string) *websocket.Conn {
	t.Helper()
	url := "ws" + server.URL[len("http"):] + "/ws/session/" + sessionID
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })
	return conn
}

func readJSON(t *testing.T, conn *websocket.Conn) map[string]interface{} {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, data, err := conn.Read(ctx)
	require.NoError(t, err)

	var msg map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &msg))
	return msg
}

func writeJSON(t *testing.T, conn *websocket.Conn, v any) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	data, err := json.Marshal(v)
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition not met within deadline")
}

func TestConnectionManager_RegisterUnregister(t *testing.T) {
	manager, server := setupTestManager(t)

	conn := connectWS(t, server, "sess-1")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 1 })
	assert.Equal(t, 1, manager.ActiveConnections())

	conn.Close(websocket.StatusNormalClosure, "")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 0 })
	assert.Equal(t, 0, manager.ActiveConnections())
}

func TestConnectionManager_BroadcastToSession(t *testing.T) {
	manager, server := setupTestManager(t)

	conn1 := connectWS(t, server, "sess-1")
	conn2 := connectWS(t, server, "sess-1")
	other := connectWS(t, server, "sess-2")
	waitFor(t, func() bool { return manager.ActiveConnections() == 3 })

	event, _ := json.Marshal(map[string]string{"type": "node_entered", "node_id": "greeting"})
	manager.Broadcast("sess-1", event)

	for _, conn := range []*websocket.Conn{conn1, conn2} {
		msg := readJSON(t, conn)
		assert.Equal(t, "node_entered", msg["type"])
		assert.Equal(t, "greeting", msg["node_id"])
	}

	// The socket on the other session must see nothing.
	readCtx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()
	_, _, err := other.Read(readCtx)
	assert.Error(t, err)
}

func TestConnectionManager_BroadcastNoSubscribers(t *testing.T) {
	manager := NewConnectionManager(time.Second)
	// No sockets attached; must not panic.
	manager.Broadcast("sess-none", []byte(`{"type":"error"}`))
}

func TestConnectionManager_UserMessageDispatch(t *testing.T) {
	manager, server := setupTestManager(t)
	handler := newRecordingHandler()
	manager.SetHandler(handler)

	conn := connectWS(t, server, "sess-1")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 1 })

	writeJSON(t, conn, ClientMessage{
		Type:     EventTypeUserMessage,
		Message:  "quero saber o preço",
		FlowData: json.RawMessage(`{"first_node_id":"start"}`),
	})

	select {
	case <-handler.done:
	case <-time.After(2 * time.Second):
		t.Fatal("user message was not dispatched")
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Len(t, handler.messages, 1)
	assert.Equal(t, "quero saber o preço", handler.messages[0])
	assert.JSONEq(t, `{"first_node_id":"start"}`, string(handler.flows[0]))
}

func TestConnectionManager_DefaultFlowFallback(t *testing.T) {
	manager := NewConnectionManager(5 * time.Second)
	handler := newRecordingHandler()
	manager.SetHandler(handler)

	defaultFlow := []byte(`{"first_node_id":"welcome"}`)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			return
		}
		manager.HandleConnection(r.Context(), conn, "sess-1", defaultFlow)
	}))
	t.Cleanup(func() { server.Close() })

	conn := connectWS(t, server, "sess-1")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 1 })

	writeJSON(t, conn, ClientMessage{Type: EventTypeUserMessage, Message: "oi"})
	writeJSON(t, conn, ClientMessage{
		Type:     EventTypeUserMessage,
		Message:  "oi de novo",
		FlowData: json.RawMessage(`{"first_node_id":"override"}`),
	})

	for i := 0; i < 2; i++ {
		select {
		case <-handler.done:
		case <-time.After(2 * time.Second):
			t.Fatal("user message was not dispatched")
		}
	}

	handler.mu.Lock()
	defer handler.mu.Unlock()
	require.Len(t, handler.flows, 2)
	flows := map[string]string{
		handler.messages[0]: string(handler.flows[0]),
		handler.messages[1]: string(handler.flows[1]),
	}
	assert.JSONEq(t, string(defaultFlow), flows["oi"])
	assert.JSONEq(t, `{"first_node_id":"override"}`, flows["oi de novo"])
}

func TestConnectionManager_PongFrames(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "sess-1")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// Both framings are accepted and neither tears the connection down.
	writeJSON(t, conn, ClientMessage{Type: MessageTypePong})
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("pong")))

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, manager.SessionConnections("sess-1"))
}

func TestConnectionManager_InvalidMessageIgnored(t *testing.T) {
	manager, server := setupTestManager(t)
	conn := connectWS(t, server, "sess-1")
	waitFor(t, func() bool { return manager.SessionConnections("sess-1") == 1 })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, []byte("{not json")))
	writeJSON(t, conn, ClientMessage{Type: "mystery"})

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, 1, manager.SessionConnections("sess-1"))
}

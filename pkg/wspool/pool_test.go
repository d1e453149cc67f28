package wspool

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

	"github.com/easypath-ai/easypath/pkg/events"
)

// fakeHub answers every user_message with an assistant_message echoing
// the text, mimicking the engine hub.
func fakeHub(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		for {
			_, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			var msg events.ClientMessage
			if json.Unmarshal(data, &msg) != nil || msg.Type != events.EventTypeUserMessage {
				continue
			}
			reply, _ := json.Marshal(map[string]string{
				"type":    events.EventTypeAssistantMessage,
				"message": "re: " + msg.Message,
			})
			if conn.Write(ctx, websocket.MessageText, reply) != nil {
				return
			}
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func poolFor(t *testing.T, server *httptest.Server) *Pool {
	t.Helper()
	pool := NewPool(Config{
		BaseURL:        "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/session",
		ConnectTimeout: 2 * time.Second,
		CleanupDelay:   50 * time.Millisecond,
	})
	t.Cleanup(pool.Close)
	return pool
}

func TestPoolSendAndListen(t *testing.T) {
	pool := poolFor(t, fakeHub(t))
	ctx := context.Background()

	queue, cancel, err := pool.ListenForAssistantMessages(ctx, "sess-1")
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, pool.SendUserMessage(ctx, "sess-1", "oi", []byte(`{"first_node_id":"start"}`)))
	require.NoError(t, pool.SendUserMessage(ctx, "sess-1", "tudo bem?", nil))

	// strict FIFO per session
	for _, want := range []string{"re: oi", "re: tudo bem?"} {
		select {
		case got := <-queue:
			require.NotNil(t, got)
			assert.Equal(t, want, *got)
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}

	health, ok := pool.SessionHealth("sess-1")
	require.True(t, ok)
	assert.Equal(t, StatusHealthy, health.Status)
}

type recordingObserver struct {
	mu       sync.Mutex
	sessions []string
	names    []string
	values   []any
	done     chan struct{}
}

func (o *recordingObserver) HandleVariableExtracted(_ context.Context, sessionID, _, name string, value any) {
	o.mu.Lock()
	o.sessions = append(o.sessions, sessionID)
	o.names = append(o.names, name)
	o.values = append(o.values, value)
	o.mu.Unlock()
	o.done <- struct{}{}
}

func TestPoolVariableObserver(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		defer conn.Close(websocket.StatusNormalClosure, "")

		ctx := r.Context()
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
		frame, _ := json.Marshal(map[string]any{
			"type":           events.EventTypeVariableExtracted,
			"node_id":        "collect-info",
			"variable_name":  "user_name",
			"variable_value": "Maria",
		})
		conn.Write(ctx, websocket.MessageText, frame)
		<-ctx.Done()
	}))
	t.Cleanup(server.Close)

	pool := poolFor(t, server)
	observer := &recordingObserver{done: make(chan struct{}, 4)}
	pool.SetVariableObserver(observer)

	ctx := context.Background()
	require.NoError(t, pool.SendUserMessage(ctx, "sess-1", "meu nome é Maria", []byte(`{}`)))

	select {
	case <-observer.done:
	case <-time.After(2 * time.Second):
		t.Fatal("variable event was not observed")
	}

	observer.mu.Lock()
	defer observer.mu.Unlock()
	require.Len(t, observer.names, 1)
	assert.Equal(t, "sess-1", observer.sessions[0])
	assert.Equal(t, "user_name", observer.names[0])
	assert.Equal(t, "Maria", observer.values[0])
}

func TestPoolReusesConnection(t *testing.T) {
	pool := poolFor(t, fakeHub(t))
	ctx := context.Background()

	require.NoError(t, pool.EnsureConnection(ctx, "sess-1"))
	require.NoError(t, pool.EnsureConnection(ctx, "sess-1"))

	pool.mu.Lock()
	assert.Len(t, pool.sessions, 1)
	pool.mu.Unlock()
}

func TestPoolConnectFailure(t *testing.T) {
	pool := NewPool(Config{
		BaseURL:        "ws://127.0.0.1:1/ws/session",
		ConnectTimeout: 100 * time.Millisecond,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	err := pool.EnsureConnection(ctx, "sess-1")
	assert.Error(t, err)
}

func TestPoolCloseSentinel(t *testing.T) {
	// The hub drops the connection after the first user message, the way
	// a restarting engine would.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
		conn.Close(websocket.StatusGoingAway, "restarting")
	}))
	t.Cleanup(server.Close)

	pool := poolFor(t, server)
	ctx := context.Background()

	queue, cancel, err := pool.ListenForAssistantMessages(ctx, "sess-1")
	require.NoError(t, err)
	defer cancel()

	require.NoError(t, pool.SendUserMessage(ctx, "sess-1", "oi", []byte(`{}`)))

	select {
	case got, open := <-queue:
		require.True(t, open)
		assert.Nil(t, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no close sentinel delivered")
	}

	// After the sentinel the queue is closed for good.
	select {
	case _, open := <-queue:
		assert.False(t, open)
	case <-time.After(2 * time.Second):
		t.Fatal("queue was not closed")
	}
}

func TestPoolDelayedCleanup(t *testing.T) {
	pool := poolFor(t, fakeHub(t))
	ctx := context.Background()

	_, cancel, err := pool.ListenForAssistantMessages(ctx, "sess-1")
	require.NoError(t, err)

	// Last listener leaving schedules teardown after the delay.
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		pool.mu.Lock()
		n := len(pool.sessions)
		pool.mu.Unlock()
		if n == 0 {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("connection was not cleaned up after delay")
}

func TestPoolImmediateCleanup(t *testing.T) {
	pool := poolFor(t, fakeHub(t))
	ctx := context.Background()

	queue, _, err := pool.ListenForAssistantMessages(ctx, "sess-1")
	require.NoError(t, err)

	pool.CleanupSession("sess-1", true)

	// Exactly one sentinel, then the closed channel.
	got, open := <-queue
	require.True(t, open)
	assert.Nil(t, got)
	_, open = <-queue
	assert.False(t, open)

	_, ok := pool.SessionHealth("sess-1")
	assert.False(t, ok)
}

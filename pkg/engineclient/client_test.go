package engineclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/message-with-flow", r.URL.Path)

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "sess-1", req.SessionID)
		assert.Equal(t, "oi", req.UserMessage)
		assert.JSONEq(t, `{"first_node_id":"start"}`, string(req.Flow))

		json.NewEncoder(w).Encode(ChatResponse{
			SessionID:     "sess-1",
			Reply:         "olá!",
			CurrentNodeID: "greeting",
		})
	}))
	defer server.Close()

	resp := New(server.URL).SendMessage(context.Background(), "sess-1", "oi",
		json.RawMessage(`{"first_node_id":"start"}`))
	require.NotNil(t, resp)
	assert.Equal(t, "olá!", resp.Reply)
	assert.Equal(t, "greeting", resp.CurrentNodeID)
}

func TestSendMessageErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	resp := New(server.URL).SendMessage(context.Background(), "sess-1", "oi", nil)
	assert.Nil(t, resp)
}

func TestSendMessageUnreachable(t *testing.T) {
	resp := New("http://127.0.0.1:1").SendMessage(context.Background(), "sess-1", "oi", nil)
	assert.Nil(t, resp)
}

func TestClearSession(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	require.NoError(t, New(server.URL).ClearSession(context.Background(), "sess-1"))
	assert.Equal(t, "/session/sess-1", gotPath)
}

func TestClearSessionNotFoundIsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	assert.NoError(t, New(server.URL).ClearSession(context.Background(), "sess-1"))
}

func TestClearSessionServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	assert.Error(t, New(server.URL).ClearSession(context.Background(), "sess-1"))
}

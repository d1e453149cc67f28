package session

import (
	"context"
	"sync"

	"github.com/easypath-ai/easypath/pkg/models"
)

// MemoryStore is an in-process Store used by tests and single-node
// development runs where Redis is not available.
type MemoryStore struct {
	sessions map[string][]byte
	mu       sync.RWMutex
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string][]byte)}
}

// Load returns a deep copy of the stored session, or nil when absent.
func (m *MemoryStore) Load(_ context.Context, sessionID string) (*models.ChatSession, error) {
	m.mu.RLock()
	data, ok := m.sessions[sessionID]
	m.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return decodeSession(data)
}

// Save stores a serialized copy so later mutations of the argument do
// not leak into the store.
func (m *MemoryStore) Save(_ context.Context, session *models.ChatSession) error {
	data, err := encodeSession(session)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.sessions[session.SessionID] = data
	m.mu.Unlock()
	return nil
}

// Clear removes the session. Idempotent.
func (m *MemoryStore) Clear(_ context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.sessions, sessionID)
	m.mu.Unlock()
	return nil
}

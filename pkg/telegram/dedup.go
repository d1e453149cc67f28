package telegram

import (
	"strings"
	"sync"
	"time"
)

const dedupWindow = 2 * time.Second

// sentTracker suppresses duplicate outbound parts. The streaming and
// fallback paths can both produce the same content for one turn; parts
// already delivered must not reach the user twice.
type sentTracker struct {
	mu sync.Mutex
	// Parts sent during the current turn, per session. Checked by
	// substring containment in both directions.
	parts map[string][]string
	// Exact sends within the dedup window, across turns.
	recent map[string]map[string]time.Time

	now func() time.Time
}

func newSentTracker() *sentTracker {
	return &sentTracker{
		parts:  make(map[string][]string),
		recent: make(map[string]map[string]time.Time),
		now:    time.Now,
	}
}

// beginTurn resets the per-turn part set for a session. The exact-send
// window survives so back-to-back turns cannot repeat a just-sent reply.
func (t *sentTracker) beginTurn(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.parts, sessionID)
}

// shouldSend reports whether part is new for this session and, if so,
// records it as sent.
func (t *sentTracker) shouldSend(sessionID, part string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	recent := t.recent[sessionID]
	for text, at := range recent {
		if now.Sub(at) > dedupWindow {
			delete(recent, text)
		}
	}
	if _, dup := recent[part]; dup {
		return false
	}

	for _, sent := range t.parts[sessionID] {
		if strings.Contains(sent, part) || strings.Contains(part, sent) {
			return false
		}
	}

	t.parts[sessionID] = append(t.parts[sessionID], part)
	if recent == nil {
		recent = make(map[string]time.Time)
		t.recent[sessionID] = recent
	}
	recent[part] = now
	return true
}

// forget drops all state for a session
func (t *sentTracker) forget(sessionID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.parts, sessionID)
	delete(t.recent, sessionID)
}

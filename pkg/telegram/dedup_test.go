package telegram

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSentTracker(t *testing.T) {
	now := time.Now()
	newTracker := func() *sentTracker {
		tr := newSentTracker()
		tr.now = func() time.Time { return now }
		return tr
	}

	t.Run("first send is allowed and recorded", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá!"))
		assert.False(t, tr.shouldSend("s1", "Olá!"))
	})

	t.Run("substring of a sent part is suppressed", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá! Como posso ajudar?"))
		assert.False(t, tr.shouldSend("s1", "Como posso ajudar?"))
	})

	t.Run("superstring of a sent part is suppressed", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Como posso ajudar?"))
		assert.False(t, tr.shouldSend("s1", "Olá! Como posso ajudar?"))
	})

	t.Run("sessions are independent", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá!"))
		assert.True(t, tr.shouldSend("s2", "Olá!"))
	})

	t.Run("new turn clears substring set but keeps exact window", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá! Como posso ajudar?"))
		tr.beginTurn("s1")

		// Substring rule no longer applies across turns
		assert.True(t, tr.shouldSend("s1", "Como posso ajudar?"))
		// Exact repeat inside the window is still suppressed
		assert.False(t, tr.shouldSend("s1", "Olá! Como posso ajudar?"))
	})

	t.Run("exact window expires", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá!"))

		now = now.Add(dedupWindow + time.Millisecond)
		tr.beginTurn("s1")
		assert.True(t, tr.shouldSend("s1", "Olá!"))
	})

	t.Run("forget drops everything", func(t *testing.T) {
		tr := newTracker()
		assert.True(t, tr.shouldSend("s1", "Olá!"))
		tr.forget("s1")
		assert.True(t, tr.shouldSend("s1", "Olá!"))
	})
}

package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/pkg/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	loaded, err := store.Load(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, loaded)

	sess := models.NewChatSession("s1", "start")
	sess.AddMessage(models.RoleUser, "hi")
	sess.MergeVariables(map[string]any{"user_name": "John"})
	require.NoError(t, store.Save(ctx, sess))

	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "start", loaded.CurrentNodeID)
	assert.Len(t, loaded.History, 1)
	assert.Equal(t, "John", loaded.ExtractedVariables["user_name"])

	// stored copy is isolated from later mutations
	sess.AddMessage(models.RoleAssistant, "hello")
	loaded, err = store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, loaded.History, 1)
}

func TestMemoryStoreClearIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Save(ctx, models.NewChatSession("s1", "start")))
	require.NoError(t, store.Clear(ctx, "s1"))
	require.NoError(t, store.Clear(ctx, "s1"))

	loaded, err := store.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionKey(t *testing.T) {
	assert.Equal(t, "session:abc-123", sessionKey("abc-123"))
}

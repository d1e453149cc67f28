package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent"
	testdb "github.com/easypath-ai/easypath/test/database"
)

func createTestConversation(t *testing.T, client *ent.Client, botID int, userID string) *ent.PlatformConversation {
	t.Helper()
	conv, _, err := NewConversationService(client).GetOrCreateConversation(context.Background(), botID, userID, "")
	require.NoError(t, err)
	return conv
}

func TestVariableService_Upsert(t *testing.T) {
	client := testdb.NewTestClient(t)
	variableService := NewVariableService(client.Client)
	ctx := context.Background()

	bot := createTestBot(t, client.Client, "var-bot")
	conv := createTestConversation(t, client.Client, bot.ID, "123456")
	flowID := 3

	t.Run("persists extracted values", func(t *testing.T) {
		err := variableService.UpsertVariables(ctx, conv.ID, "node-1", &flowID, map[string]any{
			"user_name": "Maria Silva",
			"user_age":  float64(31),
		})
		require.NoError(t, err)

		vars, err := variableService.ConversationVariables(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, vars, 2)

		byName := map[string]string{}
		for _, v := range vars {
			byName[v.VariableName] = v.VariableValue
			assert.Equal(t, "node-1", v.NodeID)
			require.NotNil(t, v.FlowID)
			assert.Equal(t, flowID, *v.FlowID)
		}
		assert.Equal(t, "Maria Silva", byName["user_name"])
		assert.Equal(t, "31", byName["user_age"])
	})

	t.Run("same name overwrites instead of duplicating", func(t *testing.T) {
		err := variableService.UpsertVariables(ctx, conv.ID, "node-2", &flowID, map[string]any{
			"user_name": "Maria S. Oliveira",
		})
		require.NoError(t, err)

		vars, err := variableService.ConversationVariables(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, vars, 2)

		for _, v := range vars {
			if v.VariableName == "user_name" {
				assert.Equal(t, "Maria S. Oliveira", v.VariableValue)
				assert.Equal(t, "node-2", v.NodeID)
			}
		}
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, variableService.UpsertVariables(ctx, conv.ID, "node-1", nil, nil))
	})

	t.Run("requires node id", func(t *testing.T) {
		err := variableService.UpsertVariables(ctx, conv.ID, "", nil, map[string]any{"x": "y"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown conversation returns ErrNotFound", func(t *testing.T) {
		_, err := variableService.ConversationVariables(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestVariableService_BotViews(t *testing.T) {
	client := testdb.NewTestClient(t)
	variableService := NewVariableService(client.Client)
	ctx := context.Background()

	bot := createTestBot(t, client.Client, "views-bot")
	withData := createTestConversation(t, client.Client, bot.ID, "111")
	createTestConversation(t, client.Client, bot.ID, "222") // never extracts anything
	flowID := 3

	err := variableService.UpsertVariables(ctx, withData.ID, "node-1", &flowID, map[string]any{
		"user_name":  "João",
		"user_email": "joao@example.com",
	})
	require.NoError(t, err)

	t.Run("collected data only includes conversations with variables", func(t *testing.T) {
		data, err := variableService.BotCollectedData(ctx, bot.ID, 100, 0)
		require.NoError(t, err)
		require.Len(t, data, 1)
		assert.Equal(t, withData.ID, data[0].ConversationID)
		assert.Equal(t, "João", data[0].Variables["user_name"])
		assert.False(t, data[0].LastExtractedAt.IsZero())
	})

	t.Run("summary aggregates counts", func(t *testing.T) {
		summary, err := variableService.BotSummary(ctx, bot.ID)
		require.NoError(t, err)
		assert.Equal(t, "views-bot", summary.BotName)
		assert.Equal(t, 2, summary.TotalConversations)
		assert.Equal(t, 1, summary.ConversationsWithData)
		assert.Equal(t, 2, summary.TotalVariablesCollected)
		assert.Equal(t, []string{"user_email", "user_name"}, summary.UniqueVariableNames)
	})

	t.Run("flow view filters by flow id", func(t *testing.T) {
		data, err := variableService.FlowCollectedData(ctx, flowID, 100, 0)
		require.NoError(t, err)
		require.Len(t, data, 1)
		assert.Equal(t, withData.ID, data[0].ConversationID)

		none, err := variableService.FlowCollectedData(ctx, 999, 100, 0)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("search matches name and value substring", func(t *testing.T) {
		hits, err := variableService.SearchVariables(ctx, "user_email", "example.com", bot.ID, 0)
		require.NoError(t, err)
		require.Len(t, hits, 1)
		assert.Equal(t, withData.ID, hits[0].ConversationID)
		assert.Equal(t, "João", hits[0].Variables["user_name"])

		none, err := variableService.SearchVariables(ctx, "user_email", "other.org", 0, 0)
		require.NoError(t, err)
		assert.Empty(t, none)

		_, err = variableService.SearchVariables(ctx, "", "", 0, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("unknown bot returns ErrNotFound", func(t *testing.T) {
		_, err := variableService.BotCollectedData(ctx, 999999, 100, 0)
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = variableService.BotSummary(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

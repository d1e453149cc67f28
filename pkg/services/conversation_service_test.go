package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/pkg/models"
	testdb "github.com/easypath-ai/easypath/test/database"
)

func createTestBot(t *testing.T, client *ent.Client, name string) *ent.BotConfig {
	t.Helper()
	botService := NewBotService(client, newTestCipher(t))
	bot, err := botService.CreateBot(context.Background(), models.CreateBotRequest{
		Platform: "telegram",
		BotName:  name,
		BotToken: "tok-" + name,
		FlowID:   3,
		OwnerID:  "owner-1",
	})
	require.NoError(t, err)
	return bot
}

func TestConversationService_GetOrCreate(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	bot := createTestBot(t, client.Client, "conv-bot")

	t.Run("mints session id on first contact", func(t *testing.T) {
		conv, created, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "123456", "Maria")
		require.NoError(t, err)
		assert.True(t, created)

		parts := strings.Split(conv.SessionID, "-")
		require.Len(t, parts, 4)
		assert.Equal(t, "telegram", parts[0])
		assert.Equal(t, "123456", parts[2])
		assert.Len(t, parts[3], 8)
		assert.Equal(t, "Maria", conv.PlatformUserName)
	})

	t.Run("reuses existing conversation", func(t *testing.T) {
		first, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "123456", "Maria")
		require.NoError(t, err)

		again, created, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "123456", "Maria")
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, first.ID, again.ID)
	})

	t.Run("separate users get separate conversations", func(t *testing.T) {
		a, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "111", "")
		require.NoError(t, err)
		b, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "222", "")
		require.NoError(t, err)
		assert.NotEqual(t, a.SessionID, b.SessionID)
	})

	t.Run("unknown bot returns ErrNotFound", func(t *testing.T) {
		_, _, err := conversationService.GetOrCreateConversation(ctx, 999999, "123", "")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("requires platform user id", func(t *testing.T) {
		_, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "", "")
		assert.True(t, IsValidationError(err))
	})
}

func TestConversationService_MessagesAndDetail(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	bot := createTestBot(t, client.Client, "detail-bot")
	conv, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "123456", "Maria")
	require.NoError(t, err)

	_, err = conversationService.RecordMessage(ctx, conv.ID, conversationmessage.RoleUSER, "Oi, quero saber o preço", "tg-msg-1")
	require.NoError(t, err)
	_, err = conversationService.RecordMessage(ctx, conv.ID, conversationmessage.RoleASSISTANT, "Claro! Nosso plano custa R$ 99.", "")
	require.NoError(t, err)

	t.Run("recent messages come back oldest first", func(t *testing.T) {
		msgs, err := conversationService.RecentMessages(ctx, conv.ID, 10)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, conversationmessage.RoleUSER, msgs[0].Role)
		assert.Equal(t, conversationmessage.RoleASSISTANT, msgs[1].Role)
	})

	t.Run("session detail joins bot and counts messages", func(t *testing.T) {
		detail, err := conversationService.GetSessionDetail(ctx, conv.ID)
		require.NoError(t, err)

		assert.Equal(t, "detail-bot", detail.BotName)
		assert.Equal(t, "telegram", detail.Platform)
		assert.Equal(t, "active", detail.Status)
		assert.Equal(t, 2, detail.MessageCount)
		require.Len(t, detail.RecentMessages, 2)
		assert.Equal(t, "user", detail.RecentMessages[0].Role)
		assert.Equal(t, "assistant", detail.RecentMessages[1].Role)
	})

	t.Run("list sessions filters by bot and status", func(t *testing.T) {
		otherBot := createTestBot(t, client.Client, "other-bot")
		_, _, err := conversationService.GetOrCreateConversation(ctx, otherBot.ID, "999", "")
		require.NoError(t, err)

		sessions, err := conversationService.ListSessions(ctx, "active", bot.ID, 0)
		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, conv.ID, sessions[0].ID)
		assert.Equal(t, 2, sessions[0].MessageCount)

		all, err := conversationService.ListSessions(ctx, "", 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("rejects unknown status filter", func(t *testing.T) {
		_, err := conversationService.ListSessions(ctx, "frozen", 0, 0)
		assert.True(t, IsValidationError(err))
	})

	t.Run("full text search finds portuguese content", func(t *testing.T) {
		msgs, err := conversationService.SearchMessages(ctx, bot.ID, "preço", 10)
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Contains(t, msgs[0].Content, "quero saber o preço")
	})
}

func TestConversationService_Lifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversationService := NewConversationService(client.Client)
	ctx := context.Background()

	bot := createTestBot(t, client.Client, "lifecycle-bot")
	conv, _, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "123456", "")
	require.NoError(t, err)

	t.Run("lookup by session id", func(t *testing.T) {
		found, err := conversationService.GetBySessionID(ctx, conv.SessionID)
		require.NoError(t, err)
		assert.Equal(t, conv.ID, found.ID)

		_, err = conversationService.GetBySessionID(ctx, "telegram-0-0-deadbeef")
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("close marks session closed", func(t *testing.T) {
		sessionID, err := conversationService.CloseSession(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.SessionID, sessionID)

		detail, err := conversationService.GetSessionDetail(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, "closed", detail.Status)
	})

	t.Run("reset purges messages and mints a new session id", func(t *testing.T) {
		_, err := conversationService.RecordMessage(ctx, conv.ID, conversationmessage.RoleUSER, "mensagem antiga", "")
		require.NoError(t, err)

		oldSessionID, err := conversationService.ResetSession(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, conv.SessionID, oldSessionID)

		fresh, err := conversationService.GetConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.NotEqual(t, oldSessionID, fresh.SessionID)
		assert.True(t, strings.HasPrefix(fresh.SessionID, "telegram-"))

		detail, err := conversationService.GetSessionDetail(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, "active", detail.Status)
		assert.Zero(t, detail.MessageCount)
	})

	t.Run("delete removes conversation and messages", func(t *testing.T) {
		_, err := conversationService.RecordMessage(ctx, conv.ID, conversationmessage.RoleUSER, "tchau", "")
		require.NoError(t, err)

		_, err = conversationService.DeleteSession(ctx, conv.ID)
		require.NoError(t, err)

		_, err = conversationService.GetConversation(ctx, conv.ID)
		assert.True(t, errors.Is(err, ErrNotFound))

		msgs, err := conversationService.RecentMessages(ctx, conv.ID, 10)
		require.NoError(t, err)
		assert.Empty(t, msgs)
	})

	t.Run("lifecycle ops on missing session return ErrNotFound", func(t *testing.T) {
		_, err := conversationService.CloseSession(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
		_, err = conversationService.DeleteSession(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

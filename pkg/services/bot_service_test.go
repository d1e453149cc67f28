package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/models"
	testdb "github.com/easypath-ai/easypath/test/database"
)

func newTestCipher(t *testing.T) *crypto.Cipher {
	cipher, err := crypto.New("unit-test-secret")
	require.NoError(t, err)
	return cipher
}

func TestBotService_CreateAndGet(t *testing.T) {
	client := testdb.NewTestClient(t)
	botService := NewBotService(client.Client, newTestCipher(t))
	ctx := context.Background()

	t.Run("creates bot with sealed token", func(t *testing.T) {
		bot, err := botService.CreateBot(ctx, models.CreateBotRequest{
			Platform: "telegram",
			BotName:  "support-bot",
			BotToken: "123456:ABC-DEF1234ghIkl",
			FlowID:   7,
			OwnerID:  "owner-1",
		})
		require.NoError(t, err)

		assert.Equal(t, botconfig.PlatformTELEGRAM, bot.Platform)
		assert.Equal(t, "support-bot", bot.BotName)
		assert.Equal(t, 7, bot.FlowID)
		assert.True(t, bot.IsActive)
		assert.NotEqual(t, "123456:ABC-DEF1234ghIkl", bot.BotTokenEncrypted)

		token, err := botService.BotToken(bot)
		require.NoError(t, err)
		assert.Equal(t, "123456:ABC-DEF1234ghIkl", token)

		fetched, err := botService.GetBot(ctx, bot.ID)
		require.NoError(t, err)
		assert.Equal(t, bot.ID, fetched.ID)
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := botService.CreateBot(ctx, models.CreateBotRequest{
			Platform: "carrier-pigeon",
			BotToken: "tok",
			FlowID:   1,
			OwnerID:  "owner-1",
		})
		assert.True(t, IsValidationError(err))

		_, err = botService.CreateBot(ctx, models.CreateBotRequest{
			Platform: "telegram",
			FlowID:   1,
			OwnerID:  "owner-1",
		})
		assert.True(t, IsValidationError(err))

		_, err = botService.CreateBot(ctx, models.CreateBotRequest{
			Platform: "telegram",
			BotToken: "tok",
			OwnerID:  "owner-1",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("returns ErrNotFound for missing bot", func(t *testing.T) {
		_, err := botService.GetBot(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

func TestBotService_ListAndFilter(t *testing.T) {
	client := testdb.NewTestClient(t)
	botService := NewBotService(client.Client, newTestCipher(t))
	ctx := context.Background()

	mustCreate := func(platform, owner string) int {
		bot, err := botService.CreateBot(ctx, models.CreateBotRequest{
			Platform: platform,
			BotToken: "tok-" + owner,
			FlowID:   1,
			OwnerID:  owner,
		})
		require.NoError(t, err)
		return bot.ID
	}

	tg1 := mustCreate("telegram", "owner-a")
	mustCreate("telegram", "owner-b")
	mustCreate("whatsapp", "owner-a")

	t.Run("filters by owner", func(t *testing.T) {
		bots, err := botService.ListBots(ctx, "owner-a", "")
		require.NoError(t, err)
		assert.Len(t, bots, 2)
	})

	t.Run("filters by platform", func(t *testing.T) {
		bots, err := botService.ListBots(ctx, "", "telegram")
		require.NoError(t, err)
		assert.Len(t, bots, 2)
	})

	t.Run("no filters returns all", func(t *testing.T) {
		bots, err := botService.ListBots(ctx, "", "")
		require.NoError(t, err)
		assert.Len(t, bots, 3)
	})

	t.Run("active bots excludes deactivated", func(t *testing.T) {
		inactive := false
		_, err := botService.UpdateBot(ctx, tg1, models.UpdateBotRequest{IsActive: &inactive})
		require.NoError(t, err)

		bots, err := botService.ListActiveBots(ctx, botconfig.PlatformTELEGRAM)
		require.NoError(t, err)
		assert.Len(t, bots, 1)
	})
}

func TestBotService_UpdateWebhookDelete(t *testing.T) {
	client := testdb.NewTestClient(t)
	botService := NewBotService(client.Client, newTestCipher(t))
	ctx := context.Background()

	bot, err := botService.CreateBot(ctx, models.CreateBotRequest{
		Platform: "telegram",
		BotName:  "old-name",
		BotToken: "old-token",
		FlowID:   1,
		OwnerID:  "owner-1",
	})
	require.NoError(t, err)

	t.Run("updates name and token", func(t *testing.T) {
		name := "new-name"
		token := "new-token"
		updated, err := botService.UpdateBot(ctx, bot.ID, models.UpdateBotRequest{
			BotName:  &name,
			BotToken: &token,
		})
		require.NoError(t, err)
		assert.Equal(t, "new-name", updated.BotName)

		plain, err := botService.BotToken(updated)
		require.NoError(t, err)
		assert.Equal(t, "new-token", plain)
	})

	t.Run("rejects empty replacement token", func(t *testing.T) {
		empty := ""
		_, err := botService.UpdateBot(ctx, bot.ID, models.UpdateBotRequest{BotToken: &empty})
		assert.True(t, IsValidationError(err))
	})

	t.Run("records webhook registration", func(t *testing.T) {
		updated, err := botService.SetWebhook(ctx, bot.ID, "https://gw.example.com/webhooks/telegram/1", "s3cret")
		require.NoError(t, err)
		require.NotNil(t, updated.WebhookURL)
		assert.Equal(t, "https://gw.example.com/webhooks/telegram/1", *updated.WebhookURL)
	})

	t.Run("delete cascades to conversations", func(t *testing.T) {
		conversationService := NewConversationService(client.Client)
		conv, created, err := conversationService.GetOrCreateConversation(ctx, bot.ID, "42", "Maria")
		require.NoError(t, err)
		require.True(t, created)

		require.NoError(t, botService.DeleteBot(ctx, bot.ID))

		_, err = botService.GetBot(ctx, bot.ID)
		assert.True(t, errors.Is(err, ErrNotFound))

		_, err = conversationService.GetConversation(ctx, conv.ID)
		assert.True(t, errors.Is(err, ErrNotFound))
	})

	t.Run("delete of missing bot returns ErrNotFound", func(t *testing.T) {
		err := botService.DeleteBot(ctx, 999999)
		assert.True(t, errors.Is(err, ErrNotFound))
	})
}

package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/services"
	testdb "github.com/easypath-ai/easypath/test/database"
)

func seedBot(t *testing.T, client *ent.Client) int {
	t.Helper()

	cipher, err := crypto.New("unit-test-secret")
	require.NoError(t, err)
	bots := services.NewBotService(client, cipher)

	bot, err := bots.CreateBot(context.Background(), models.CreateBotRequest{
		Platform: "telegram",
		BotName:  "retention-bot",
		BotToken: "123:tok",
		FlowID:   1,
		OwnerID:  "retention-owner",
	})
	require.NoError(t, err)
	return bot.ID
}

func seedConversation(t *testing.T, client *ent.Client, conversations *services.ConversationService, botID int, userID string, status platformconversation.Status, lastMessageAt time.Time) *ent.PlatformConversation {
	t.Helper()
	ctx := context.Background()

	conv, _, err := conversations.GetOrCreateConversation(ctx, botID, userID, "")
	require.NoError(t, err)
	require.NoError(t, client.PlatformConversation.UpdateOneID(conv.ID).
		SetStatus(status).
		SetLastMessageAt(lastMessageAt).
		Exec(ctx))
	return conv
}

func TestRunOnceAppliesRetention(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	conversations := services.NewConversationService(client.Client)
	botID := seedBot(t, client.Client)

	now := time.Now()
	idleActive := seedConversation(t, client.Client, conversations, botID, "idle-user", platformconversation.StatusACTIVE, now.Add(-8*24*time.Hour))
	freshActive := seedConversation(t, client.Client, conversations, botID, "fresh-user", platformconversation.StatusACTIVE, now)
	staleClosed := seedConversation(t, client.Client, conversations, botID, "closed-user", platformconversation.StatusINACTIVE, now.Add(-40*24*time.Hour))
	recentClosed := seedConversation(t, client.Client, conversations, botID, "recent-closed", platformconversation.StatusINACTIVE, now.Add(-2*24*time.Hour))

	svc := NewService(Config{}, conversations)
	svc.RunOnce(ctx)

	status := func(id int) platformconversation.Status {
		conv, err := client.PlatformConversation.Get(ctx, id)
		require.NoError(t, err)
		return conv.Status
	}

	assert.Equal(t, platformconversation.StatusINACTIVE, status(idleActive.ID))
	assert.Equal(t, platformconversation.StatusACTIVE, status(freshActive.ID))
	assert.Equal(t, platformconversation.StatusARCHIVED, status(staleClosed.ID))
	assert.Equal(t, platformconversation.StatusINACTIVE, status(recentClosed.ID))
}

func TestStartStop(t *testing.T) {
	client := testdb.NewTestClient(t)
	conversations := services.NewConversationService(client.Client)

	svc := NewService(Config{Interval: 50 * time.Millisecond}, conversations)
	svc.Start(context.Background())
	time.Sleep(120 * time.Millisecond)
	svc.Stop()
	assert.NotPanics(t, func() { svc.Stop() })
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/database"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/services"
	testdb "github.com/easypath-ai/easypath/test/database"
)

type adminFixture struct {
	srv           *Server
	client        *database.Client
	bots          *services.BotService
	conversations *services.ConversationService
	variables     *services.VariableService
}

func newAdminFixture(t *testing.T) *adminFixture {
	t.Helper()

	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("unit-test-secret")
	require.NoError(t, err)

	f := &adminFixture{
		client:        client,
		bots:          services.NewBotService(client.Client, cipher),
		conversations: services.NewConversationService(client.Client),
		variables:     services.NewVariableService(client.Client),
	}
	f.srv = NewServer(Deps{
		DB:            client,
		Bots:          f.bots,
		Conversations: f.conversations,
		Variables:     f.variables,
	})
	return f
}

func createBotViaAPI(t *testing.T, f *adminFixture, name string) BotResponse {
	t.Helper()

	rec := doJSON(t, f.srv, http.MethodPost, "/bots", models.CreateBotRequest{
		Platform: "telegram",
		BotName:  name,
		BotToken: "123456:token-" + name,
		FlowID:   7,
		OwnerID:  "owner-1",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BotResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestBotEndpoints(t *testing.T) {
	f := newAdminFixture(t)

	bot := createBotViaAPI(t, f, "support")
	assert.Equal(t, "TELEGRAM", bot.Platform)
	assert.Equal(t, "support", bot.BotName)
	assert.True(t, bot.IsActive)

	t.Run("create rejects bad platform", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodPost, "/bots", models.CreateBotRequest{
			Platform: "carrier-pigeon",
			BotToken: "tok",
			FlowID:   1,
			OwnerID:  "owner-1",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("response never carries the token", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/bots/"+strconv.Itoa(bot.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "token")
	})

	t.Run("list filters by owner", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/bots?owner_id=owner-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var bots []BotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bots))
		assert.Len(t, bots, 1)

		rec = doJSON(t, f.srv, http.MethodGet, "/bots?owner_id=nobody", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bots))
		assert.Empty(t, bots)
	})

	t.Run("update renames the bot", func(t *testing.T) {
		newName := "support-v2"
		rec := doJSON(t, f.srv, http.MethodPut, "/bots/"+strconv.Itoa(bot.ID), models.UpdateBotRequest{BotName: &newName})
		require.Equal(t, http.StatusOK, rec.Code)
		var resp BotResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "support-v2", resp.BotName)
	})

	t.Run("delete removes the bot", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodDelete, "/bots/"+strconv.Itoa(bot.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, f.srv, http.MethodGet, "/bots/"+strconv.Itoa(bot.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("missing bot is a 404", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/bots/99999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestSessionEndpoints(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	bot := createBotViaAPI(t, f, "sales")
	conv, _, err := f.conversations.GetOrCreateConversation(ctx, bot.ID, "123456", "maria")
	require.NoError(t, err)
	_, err = f.conversations.RecordMessage(ctx, conv.ID, conversationmessage.RoleUSER, "quero um plano", "")
	require.NoError(t, err)
	_, err = f.conversations.RecordMessage(ctx, conv.ID, conversationmessage.RoleASSISTANT, "claro, qual?", "")
	require.NoError(t, err)

	t.Run("list active sessions", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/sessions?status=active&bot_id="+strconv.Itoa(bot.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var sessions []models.SessionSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
		require.Len(t, sessions, 1)
		assert.Equal(t, conv.ID, sessions[0].ID)
		assert.Equal(t, 2, sessions[0].MessageCount)
	})

	t.Run("bot conversations listing", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/bots/"+strconv.Itoa(bot.ID)+"/conversations", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var sessions []models.SessionSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sessions))
		require.Len(t, sessions, 1)
		assert.Equal(t, conv.ID, sessions[0].ID)
	})

	t.Run("conversation messages oldest first", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/conversations/"+strconv.Itoa(conv.ID)+"/messages", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var messages []models.MessageDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &messages))
		require.Len(t, messages, 2)
		assert.Equal(t, "user", messages[0].Role)
		assert.Equal(t, "assistant", messages[1].Role)
	})

	t.Run("detail includes recent messages", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/sessions/"+strconv.Itoa(conv.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var detail models.SessionDetail
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
		require.Len(t, detail.RecentMessages, 2)
		assert.Equal(t, "user", detail.RecentMessages[0].Role)
		assert.Equal(t, "quero um plano", detail.RecentMessages[0].Content)
	})

	t.Run("close marks the session closed", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodPost, "/sessions/"+strconv.Itoa(conv.ID)+"/close", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		detail, err := f.conversations.GetSessionDetail(ctx, conv.ID)
		require.NoError(t, err)
		assert.Equal(t, "closed", detail.Status)
	})

	t.Run("reset mints a fresh session id", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodPost, "/sessions/"+strconv.Itoa(conv.ID)+"/reset", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp StatusResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, conv.SessionID, resp.SessionID)

		detail, err := f.conversations.GetSessionDetail(ctx, conv.ID)
		require.NoError(t, err)
		assert.NotEqual(t, conv.SessionID, detail.SessionID)
		assert.True(t, strings.HasPrefix(detail.SessionID, "telegram-"))
		assert.Equal(t, "active", detail.Status)
		assert.Zero(t, detail.MessageCount)
	})

	t.Run("delete removes the conversation", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodDelete, "/sessions/"+strconv.Itoa(conv.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, f.srv, http.MethodGet, "/sessions/"+strconv.Itoa(conv.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestVariableEndpoints(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	bot := createBotViaAPI(t, f, "intake")
	conv, _, err := f.conversations.GetOrCreateConversation(ctx, bot.ID, "777", "joao")
	require.NoError(t, err)
	flowID := bot.FlowID
	require.NoError(t, f.variables.UpsertVariables(ctx, conv.ID, "node-1", &flowID, map[string]any{
		"user_name":  "João",
		"user_email": "joao@example.com",
	}))

	t.Run("conversation variables", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/variables/conversations/"+strconv.Itoa(conv.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "user_email")
	})

	t.Run("bot collected data", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/variables/bots/"+strconv.Itoa(bot.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data []models.ConversationVariables
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		require.Len(t, data, 1)
		assert.Equal(t, "João", data[0].Variables["user_name"])
	})

	t.Run("bot summary", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/variables/bots/"+strconv.Itoa(bot.ID)+"/summary", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var summary models.BotDataSummary
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
		assert.Equal(t, 1, summary.ConversationsWithData)
		assert.Equal(t, 2, summary.TotalVariablesCollected)
	})

	t.Run("flow collected data", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/variables/flows/"+strconv.Itoa(flowID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var data []models.ConversationVariables
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		assert.Len(t, data, 1)
	})

	t.Run("search requires variable_name", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet, "/variables/search", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("search by name and value", func(t *testing.T) {
		rec := doJSON(t, f.srv, http.MethodGet,
			"/variables/search?variable_name=user_email&variable_value=example.com&bot_id="+strconv.Itoa(bot.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var matches []models.ConversationVariables
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &matches))
		require.Len(t, matches, 1)
		assert.Equal(t, conv.ID, matches[0].ConversationID)
	})
}

func TestTelegramWebhookAlwaysAcks(t *testing.T) {
	f := newAdminFixture(t)

	// Telegram retries non-200 responses, so even garbage gets an ack.
	rec := doJSON(t, f.srv, http.MethodPost, "/webhooks/telegram/99999", map[string]any{"update_id": 1})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doJSON(t, f.srv, http.MethodPost, "/webhooks/telegram/not-a-number", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHealthEndpointWithDatabase(t *testing.T) {
	f := newAdminFixture(t)

	rec := doJSON(t, f.srv, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.NotNil(t, resp.Database)
	assert.Equal(t, "ok", resp.Checks["database"].Status)
}

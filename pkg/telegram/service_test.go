package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/engineclient"
	"github.com/easypath-ai/easypath/pkg/models"
	"github.com/easypath-ai/easypath/pkg/services"
	testdb "github.com/easypath-ai/easypath/test/database"
)

type fakeBotAPI struct {
	mu           sync.Mutex
	sentTexts    []string
	typingCount  int
	requestError error
}

func (f *fakeBotAPI) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if msg, ok := c.(tgbotapi.MessageConfig); ok {
		f.sentTexts = append(f.sentTexts, msg.Text)
	}
	return tgbotapi.Message{}, nil
}

func (f *fakeBotAPI) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.requestError != nil {
		return nil, f.requestError
	}
	if _, ok := c.(tgbotapi.ChatActionConfig); ok {
		f.typingCount++
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeBotAPI) GetWebhookInfo() (tgbotapi.WebhookInfo, error) {
	return tgbotapi.WebhookInfo{URL: "https://gw.example.com/webhooks/telegram/1"}, nil
}

func (f *fakeBotAPI) texts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sentTexts...)
}

type fakePool struct {
	mu        sync.Mutex
	sent      []string
	replies   []string
	listenErr error
	sendErr   error
}

func (p *fakePool) SendUserMessage(_ context.Context, _ string, message string, _ []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.sendErr != nil {
		return p.sendErr
	}
	p.sent = append(p.sent, message)
	return nil
}

func (p *fakePool) ListenForAssistantMessages(_ context.Context, _ string) (<-chan *string, func(), error) {
	if p.listenErr != nil {
		return nil, nil, p.listenErr
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	ch := make(chan *string, len(p.replies)+1)
	for i := range p.replies {
		reply := p.replies[i]
		ch <- &reply
	}
	return ch, func() {}, nil
}

type fakeEngine struct {
	mu    sync.Mutex
	resp  *engineclient.ChatResponse
	calls int
}

func (e *fakeEngine) SendMessage(_ context.Context, _ string, _ string, _ json.RawMessage) *engineclient.ChatResponse {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls++
	return e.resp
}

type telegramFixture struct {
	service       *Service
	bot           *ent.BotConfig
	api           *fakeBotAPI
	pool          *fakePool
	engine        *fakeEngine
	conversations *services.ConversationService
	variables     *services.VariableService
}

func newTelegramFixture(t *testing.T) *telegramFixture {
	client := testdb.NewTestClient(t)
	cipher, err := crypto.New("unit-test-secret")
	require.NoError(t, err)

	botService := services.NewBotService(client.Client, cipher)
	conversationService := services.NewConversationService(client.Client)
	variableService := services.NewVariableService(client.Client)

	bot, err := botService.CreateBot(context.Background(), models.CreateBotRequest{
		Platform: "telegram",
		BotName:  "test-bot",
		BotToken: "123456:ABC",
		FlowID:   1,
		OwnerID:  "owner-1",
	})
	require.NoError(t, err)

	api := &fakeBotAPI{}
	pool := &fakePool{}
	engine := &fakeEngine{}

	service := NewService(botService, conversationService, variableService, pool, engine, Config{
		WebhookBaseURL:   "https://gw.example.com",
		TypingInterval:   10 * time.Millisecond,
		StreamBudget:     300 * time.Millisecond,
		QuietWindow:      40 * time.Millisecond,
		SingleFlightWait: 100 * time.Millisecond,
	})
	service.newBotAPI = func(string) (botAPI, error) { return api, nil }

	return &telegramFixture{
		service:       service,
		bot:           bot,
		api:           api,
		pool:          pool,
		engine:        engine,
		conversations: conversationService,
		variables:     variableService,
	}
}

func textUpdate(text string) tgbotapi.Update {
	return tgbotapi.Update{
		UpdateID: 1,
		Message: &tgbotapi.Message{
			MessageID: 10,
			Date:      int(time.Now().Add(time.Second).Unix()),
			Text:      text,
			From:      &tgbotapi.User{ID: 123456, UserName: "maria"},
			Chat:      &tgbotapi.Chat{ID: 123456},
		},
	}
}

func TestProcessUpdateStreamsReplies(t *testing.T) {
	fx := newTelegramFixture(t)
	fx.pool.replies = []string{"Olá, Maria!\n---\nComo posso ajudar?"}
	ctx := context.Background()

	err := fx.service.ProcessUpdate(ctx, fx.bot, textUpdate("oi"), []byte(`{"id":"f1"}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"oi"}, fx.pool.sent)
	assert.Equal(t, []string{"Olá, Maria!", "Como posso ajudar?"}, fx.api.texts())
	assert.Zero(t, fx.engine.calls)

	conv, created, err := fx.conversations.GetOrCreateConversation(ctx, fx.bot.ID, "123456", "maria")
	require.NoError(t, err)
	assert.False(t, created)

	msgs, err := fx.conversations.RecentMessages(ctx, conv.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "oi", msgs[0].Content)
	assert.Equal(t, "Olá, Maria!", msgs[1].Content)
	assert.Equal(t, "Como posso ajudar?", msgs[2].Content)
}

func TestProcessUpdateFallsBackWhenStreamingFails(t *testing.T) {
	fx := newTelegramFixture(t)
	fx.pool.listenErr = errors.New("connection refused")
	fx.engine.resp = &engineclient.ChatResponse{
		Replies:       []string{"Primeira parte\n---\nSegunda parte"},
		CurrentNodeID: "n2",
	}

	err := fx.service.ProcessUpdate(context.Background(), fx.bot, textUpdate("oi"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Primeira parte", "Segunda parte"}, fx.api.texts())
	assert.Equal(t, 1, fx.engine.calls)
}

func TestProcessUpdateReportsEngineOutage(t *testing.T) {
	fx := newTelegramFixture(t)
	fx.pool.listenErr = errors.New("connection refused")
	fx.engine.resp = nil

	err := fx.service.ProcessUpdate(context.Background(), fx.bot, textUpdate("oi"), nil)
	require.Error(t, err)

	texts := fx.api.texts()
	require.Len(t, texts, 1)
	assert.Equal(t, technicalDifficulties, texts[0])
}

func TestProcessUpdateIgnoresStaleMessages(t *testing.T) {
	fx := newTelegramFixture(t)

	update := textUpdate("mensagem antiga")
	update.Message.Date = int(time.Now().Add(-time.Hour).Unix())

	err := fx.service.ProcessUpdate(context.Background(), fx.bot, update, nil)
	require.NoError(t, err)

	assert.Empty(t, fx.api.texts())
	assert.Empty(t, fx.pool.sent)

	_, created, err := fx.conversations.GetOrCreateConversation(context.Background(), fx.bot.ID, "123456", "")
	require.NoError(t, err)
	assert.True(t, created, "stale message must not create a conversation")
}

func TestProcessUpdateIgnoresNonTextUpdates(t *testing.T) {
	fx := newTelegramFixture(t)

	err := fx.service.ProcessUpdate(context.Background(), fx.bot, tgbotapi.Update{UpdateID: 2}, nil)
	require.NoError(t, err)
	assert.Empty(t, fx.api.texts())
}

func TestProcessUpdateRefusesClosedConversation(t *testing.T) {
	fx := newTelegramFixture(t)
	ctx := context.Background()

	conv, _, err := fx.conversations.GetOrCreateConversation(ctx, fx.bot.ID, "123456", "maria")
	require.NoError(t, err)
	_, err = fx.conversations.CloseSession(ctx, conv.ID)
	require.NoError(t, err)

	err = fx.service.ProcessUpdate(ctx, fx.bot, textUpdate("oi de novo"), nil)
	require.NoError(t, err)

	texts := fx.api.texts()
	require.Len(t, texts, 1)
	assert.Equal(t, closedConversationNotice, texts[0])
	assert.Empty(t, fx.pool.sent)

	msgs, err := fx.conversations.RecentMessages(ctx, conv.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)
}

func TestProcessUpdateSuppressesDuplicateParts(t *testing.T) {
	fx := newTelegramFixture(t)
	fx.pool.replies = []string{
		"Olá, Maria!",
		"Olá, Maria!\n---\nPosso ajudar em algo?",
	}

	err := fx.service.ProcessUpdate(context.Background(), fx.bot, textUpdate("oi"), nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"Olá, Maria!", "Posso ajudar em algo?"}, fx.api.texts())
}

func TestHandleVariableExtractedPersists(t *testing.T) {
	f := newTelegramFixture(t)
	ctx := context.Background()

	conv, _, err := f.conversations.GetOrCreateConversation(ctx, f.bot.ID, "123456", "maria")
	require.NoError(t, err)

	f.service.HandleVariableExtracted(ctx, conv.SessionID, "collect-info", "user_name", "João")
	// Unknown sessions are logged and dropped, never persisted.
	f.service.HandleVariableExtracted(ctx, "no-such-session", "collect-info", "user_name", "ghost")

	vars, err := f.variables.ConversationVariables(ctx, conv.ID)
	require.NoError(t, err)
	require.Len(t, vars, 1)
	assert.Equal(t, "user_name", vars[0].VariableName)
	assert.Equal(t, "João", vars[0].VariableValue)
	require.NotNil(t, vars[0].FlowID)
	assert.Equal(t, f.bot.FlowID, *vars[0].FlowID)
}

func TestRegisterWebhook(t *testing.T) {
	fx := newTelegramFixture(t)
	ctx := context.Background()

	url, err := fx.service.RegisterWebhook(ctx, fx.bot)
	require.NoError(t, err)
	assert.Contains(t, url, "/webhooks/telegram/")

	info, err := fx.service.WebhookInfo(fx.bot)
	require.NoError(t, err)
	assert.NotEmpty(t, info.URL)
}

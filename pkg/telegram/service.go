// Package telegram bridges Telegram bots to the flow engine. Inbound
// webhook updates become engine turns; assistant replies stream back to
// the chat as they are generated.
package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/pkg/engineclient"
	"github.com/easypath-ai/easypath/pkg/services"
)

const (
	maxMessageLen   = 4096
	messageChunkLen = 4090

	closedConversationNotice = "Esta conversa foi encerrada. Por favor, inicie uma nova conversa."
	technicalDifficulties    = "Desculpe, estou com dificuldades técnicas no momento. Por favor, tente novamente mais tarde."
)

// botAPI is the slice of the Telegram client the service uses. Narrowed
// for testing.
type botAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetWebhookInfo() (tgbotapi.WebhookInfo, error)
}

// streamClient delivers engine events over the pooled WebSocket.
// Satisfied by *wspool.Pool.
type streamClient interface {
	SendUserMessage(ctx context.Context, sessionID, message string, flowData []byte) error
	ListenForAssistantMessages(ctx context.Context, sessionID string) (<-chan *string, func(), error)
}

// fallbackClient is the request/response engine path used when
// streaming produced nothing. Satisfied by *engineclient.Client.
type fallbackClient interface {
	SendMessage(ctx context.Context, sessionID, userMessage string, flowData json.RawMessage) *engineclient.ChatResponse
}

// Config tunes the adapter's timing knobs. Zero values pick defaults.
type Config struct {
	WebhookBaseURL string

	// TypingInterval is how often the typing indicator is refreshed.
	TypingInterval time.Duration
	// StreamBudget is the inactivity budget while waiting for the first
	// streamed reply.
	StreamBudget time.Duration
	// QuietWindow ends the stream once replies have arrived and the
	// engine has gone silent for this long.
	QuietWindow time.Duration
	// SingleFlightWait bounds how long a turn waits for the previous
	// turn on the same session before proceeding anyway.
	SingleFlightWait time.Duration
}

func (c *Config) applyDefaults() {
	if c.TypingInterval <= 0 {
		c.TypingInterval = 4 * time.Second
	}
	if c.StreamBudget <= 0 {
		c.StreamBudget = 90 * time.Second
	}
	if c.QuietWindow <= 0 {
		c.QuietWindow = 3 * time.Second
	}
	if c.SingleFlightWait <= 0 {
		c.SingleFlightWait = 60 * time.Second
	}
}

// Service is the Telegram adapter. One instance serves every registered
// Telegram bot; per-bot API clients are cached by bot config id.
type Service struct {
	cfg           Config
	bots          *services.BotService
	conversations *services.ConversationService
	variables     *services.VariableService
	pool          streamClient
	engine        fallbackClient

	newBotAPI func(token string) (botAPI, error)
	startedAt time.Time
	tracker   *sentTracker

	mu      sync.Mutex
	clients map[int]botAPI
	active  map[string]chan struct{}
}

// NewService creates the Telegram adapter
func NewService(bots *services.BotService, conversations *services.ConversationService, variables *services.VariableService, pool streamClient, engine fallbackClient, cfg Config) *Service {
	cfg.applyDefaults()
	return &Service{
		cfg:           cfg,
		bots:          bots,
		conversations: conversations,
		variables:     variables,
		pool:          pool,
		engine:        engine,
		newBotAPI: func(token string) (botAPI, error) {
			return tgbotapi.NewBotAPI(token)
		},
		startedAt: time.Now(),
		tracker:   newSentTracker(),
		clients:   make(map[int]botAPI),
		active:    make(map[string]chan struct{}),
	}
}

// botFor returns the cached Telegram client for a bot config, creating
// it from the unsealed token on first use.
func (s *Service) botFor(bot *ent.BotConfig) (botAPI, error) {
	s.mu.Lock()
	if api, ok := s.clients[bot.ID]; ok {
		s.mu.Unlock()
		return api, nil
	}
	s.mu.Unlock()

	token, err := s.bots.BotToken(bot)
	if err != nil {
		return nil, err
	}
	api, err := s.newBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram client for bot %d: %w", bot.ID, err)
	}

	s.mu.Lock()
	s.clients[bot.ID] = api
	s.mu.Unlock()
	return api, nil
}

// ForgetBot drops the cached client, e.g. after a token rotation
func (s *Service) ForgetBot(botID int) {
	s.mu.Lock()
	delete(s.clients, botID)
	s.mu.Unlock()
}

// ProcessUpdate handles one inbound Telegram update end to end:
// persistence, engine turn, streamed replies. Runs in the background
// goroutine spawned by the webhook handler, so all failures are logged
// rather than surfaced.
func (s *Service) ProcessUpdate(ctx context.Context, bot *ent.BotConfig, update tgbotapi.Update, flowData []byte) error {
	msg := update.Message
	if msg == nil || msg.Text == "" {
		slog.Warn("Ignoring update without text message", "bot_id", bot.ID, "update_id", update.UpdateID)
		return nil
	}
	if msg.Time().Before(s.startedAt) {
		slog.Info("Ignoring stale message from before startup",
			"bot_id", bot.ID,
			"message_time", msg.Time(),
			"started_at", s.startedAt)
		return nil
	}

	chatID := msg.Chat.ID
	userID := strconv.FormatInt(chatID, 10)
	userName := ""
	if msg.From != nil {
		userID = strconv.FormatInt(msg.From.ID, 10)
		userName = msg.From.UserName
		if userName == "" {
			userName = msg.From.FirstName
		}
	}

	api, err := s.botFor(bot)
	if err != nil {
		return err
	}

	conv, _, err := s.conversations.GetOrCreateConversation(ctx, bot.ID, userID, userName)
	if err != nil {
		return err
	}
	if conv.Status != platformconversation.StatusACTIVE {
		slog.Info("Ignoring message for closed session",
			"session_id", conv.SessionID,
			"user_id", userID)
		// Dedup state for a closed session is dead weight.
		s.tracker.forget(conv.SessionID)
		s.sendText(api, chatID, closedConversationNotice)
		return nil
	}

	_, err = s.conversations.RecordMessage(ctx, conv.ID, conversationmessage.RoleUSER, msg.Text, strconv.Itoa(msg.MessageID))
	if err != nil {
		return err
	}

	release := s.acquireSession(ctx, conv.SessionID)
	defer release()

	s.tracker.beginTurn(conv.SessionID)
	sent, err := s.streamReplies(ctx, api, chatID, conv, msg.Text, flowData)
	if err != nil {
		slog.Warn("Streaming path failed, falling back",
			"session_id", conv.SessionID,
			"error", err)
	}
	if sent == 0 {
		return s.fallbackReply(ctx, api, chatID, conv, msg.Text, flowData)
	}
	return nil
}

// HandleVariableExtracted persists a variable the engine extracted
// during a streamed turn. Installed on the pool as its
// wspool.VariableObserver.
func (s *Service) HandleVariableExtracted(ctx context.Context, sessionID, nodeID, name string, value any) {
	if s.variables == nil {
		return
	}
	conv, err := s.conversations.GetBySessionID(ctx, sessionID)
	if err != nil {
		slog.Warn("Cannot persist variable for unknown session",
			"session_id", sessionID, "variable_name", name, "error", err)
		return
	}

	var flowID *int
	if bot, err := s.bots.GetBot(ctx, conv.BotConfigID); err == nil {
		flowID = &bot.FlowID
	}

	if err := s.variables.UpsertVariables(ctx, conv.ID, nodeID, flowID, map[string]any{name: value}); err != nil {
		slog.Error("Failed to persist extracted variable",
			"session_id", sessionID, "variable_name", name, "error", err)
	}
}

// acquireSession serializes turns on one session. If a previous turn is
// still running it is given SingleFlightWait to finish; after that the
// new turn proceeds anyway so a wedged stream cannot block the user
// forever.
func (s *Service) acquireSession(ctx context.Context, sessionID string) func() {
	s.mu.Lock()
	prev := s.active[sessionID]
	done := make(chan struct{})
	s.active[sessionID] = done
	s.mu.Unlock()

	if prev != nil {
		select {
		case <-prev:
		case <-time.After(s.cfg.SingleFlightWait):
			slog.Warn("Previous turn still running, proceeding anyway", "session_id", sessionID)
		case <-ctx.Done():
		}
	}

	return func() {
		close(done)
		s.mu.Lock()
		if s.active[sessionID] == done {
			delete(s.active, sessionID)
		}
		s.mu.Unlock()
	}
}

// streamReplies drives one engine turn over the WebSocket pool and
// relays assistant messages as they arrive. Returns the number of parts
// delivered.
func (s *Service) streamReplies(ctx context.Context, api botAPI, chatID int64, conv *ent.PlatformConversation, userMessage string, flowData []byte) (int, error) {
	events, cancelListen, err := s.pool.ListenForAssistantMessages(ctx, conv.SessionID)
	if err != nil {
		return 0, err
	}
	defer cancelListen()

	typing := s.startTyping(api, chatID)
	defer typing.stop()

	if err := s.pool.SendUserMessage(ctx, conv.SessionID, userMessage, flowData); err != nil {
		return 0, err
	}

	sent := 0
	idle := time.NewTimer(s.cfg.StreamBudget)
	defer idle.Stop()

	for {
		select {
		case text, ok := <-events:
			if !ok || text == nil {
				// Connection closed upstream
				return sent, nil
			}
			sent += s.deliverParts(ctx, api, chatID, conv, typing, *text)

			// After the first reply the engine usually finishes within
			// the quiet window; keep the full budget only while nothing
			// has arrived.
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			if sent > 0 {
				idle.Reset(s.cfg.QuietWindow)
			} else {
				idle.Reset(s.cfg.StreamBudget)
			}

		case <-idle.C:
			if sent == 0 {
				slog.Warn("Streaming budget exhausted without replies",
					"session_id", conv.SessionID)
			}
			return sent, nil

		case <-ctx.Done():
			return sent, ctx.Err()
		}
	}
}

// deliverParts splits a reply, drops duplicates, and sends what is left.
// Every delivered part is persisted even if the platform send fails, so
// the operator can see what the user was meant to receive.
func (s *Service) deliverParts(ctx context.Context, api botAPI, chatID int64, conv *ent.PlatformConversation, typing *typingLoop, reply string) int {
	sent := 0
	for _, part := range splitReplyParts(reply) {
		if !s.tracker.shouldSend(conv.SessionID, part) {
			slog.Debug("Suppressing duplicate part", "session_id", conv.SessionID)
			continue
		}

		if typing != nil {
			typing.pause()
		}
		if err := s.sendText(api, chatID, part); err != nil {
			slog.Error("Failed to send telegram message",
				"session_id", conv.SessionID,
				"error", err)
		}
		if typing != nil {
			typing.resume()
		}

		if _, err := s.conversations.RecordMessage(ctx, conv.ID, conversationmessage.RoleASSISTANT, part, ""); err != nil {
			slog.Error("Failed to persist assistant message",
				"session_id", conv.SessionID,
				"error", err)
		}
		sent++
	}
	return sent
}

// fallbackReply runs the turn over the request/response path. Dedup
// state from the streaming attempt is kept, so partially-streamed
// content is not repeated.
func (s *Service) fallbackReply(ctx context.Context, api botAPI, chatID int64, conv *ent.PlatformConversation, userMessage string, flowData []byte) error {
	resp := s.engine.SendMessage(ctx, conv.SessionID, userMessage, flowData)
	if resp == nil {
		s.sendText(api, chatID, technicalDifficulties)
		return fmt.Errorf("engine request failed for session %s", conv.SessionID)
	}

	replies := resp.Replies
	if len(replies) == 0 && resp.Reply != "" {
		replies = []string{resp.Reply}
	}

	sent := 0
	for _, reply := range replies {
		sent += s.deliverParts(ctx, api, chatID, conv, nil, reply)
	}
	slog.Info("Fallback path delivered replies",
		"session_id", conv.SessionID,
		"parts", sent,
		"current_node_id", resp.CurrentNodeID)
	return nil
}

// sendText delivers text to a chat, chunking above the platform cap
func (s *Service) sendText(api botAPI, chatID int64, text string) error {
	chunks := []string{text}
	if utf8.RuneCountInString(text) > maxMessageLen {
		chunks = chunkMessage(text, messageChunkLen)
	}
	for _, chunk := range chunks {
		if _, err := api.Send(tgbotapi.NewMessage(chatID, chunk)); err != nil {
			return err
		}
	}
	return nil
}

// typingLoop re-sends the typing chat action until stopped. Paused
// around actual sends so the indicator never races a real message.
type typingLoop struct {
	paused atomic.Bool
	done   chan struct{}
	once   sync.Once
}

func (s *Service) startTyping(api botAPI, chatID int64) *typingLoop {
	t := &typingLoop{done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(s.cfg.TypingInterval)
		defer ticker.Stop()

		send := func() {
			if t.paused.Load() {
				return
			}
			if _, err := api.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping)); err != nil {
				slog.Debug("Typing indicator failed", "chat_id", chatID, "error", err)
			}
		}

		send()
		for {
			select {
			case <-ticker.C:
				send()
			case <-t.done:
				return
			}
		}
	}()
	return t
}

func (t *typingLoop) pause()  { t.paused.Store(true) }
func (t *typingLoop) resume() { t.paused.Store(false) }
func (t *typingLoop) stop()   { t.once.Do(func() { close(t.done) }) }

// RegisterWebhook points the bot's Telegram webhook at this gateway and
// records the URL.
func (s *Service) RegisterWebhook(ctx context.Context, bot *ent.BotConfig) (string, error) {
	api, err := s.botFor(bot)
	if err != nil {
		return "", err
	}

	webhookURL := fmt.Sprintf("%s/webhooks/telegram/%d", s.cfg.WebhookBaseURL, bot.ID)
	wh, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return "", fmt.Errorf("failed to build webhook config: %w", err)
	}
	if _, err := api.Request(wh); err != nil {
		return "", fmt.Errorf("failed to set webhook for bot %d: %w", bot.ID, err)
	}

	if _, err := s.bots.SetWebhook(ctx, bot.ID, webhookURL, ""); err != nil {
		return "", err
	}
	slog.Info("Webhook registered", "bot_id", bot.ID, "webhook_url", webhookURL)
	return webhookURL, nil
}

// UnregisterWebhook removes the bot's webhook from Telegram
func (s *Service) UnregisterWebhook(bot *ent.BotConfig) error {
	api, err := s.botFor(bot)
	if err != nil {
		return err
	}
	if _, err := api.Request(tgbotapi.DeleteWebhookConfig{}); err != nil {
		return fmt.Errorf("failed to delete webhook for bot %d: %w", bot.ID, err)
	}
	return nil
}

// WebhookInfo fetches the platform-side webhook state for debugging
func (s *Service) WebhookInfo(bot *ent.BotConfig) (tgbotapi.WebhookInfo, error) {
	api, err := s.botFor(bot)
	if err != nil {
		return tgbotapi.WebhookInfo{}, err
	}
	return api.GetWebhookInfo()
}

// UpdateAllWebhooks re-registers webhooks for every active Telegram
// bot. Run at startup and on demand when the public base URL changes.
// Returns the number of bots updated.
func (s *Service) UpdateAllWebhooks(ctx context.Context) (int, error) {
	bots, err := s.bots.ListActiveBots(ctx, botconfig.PlatformTELEGRAM)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, bot := range bots {
		if _, err := s.RegisterWebhook(ctx, bot); err != nil {
			slog.Error("Failed to update webhook", "bot_id", bot.ID, "error", err)
			continue
		}
		updated++
	}
	slog.Info("Webhook update complete", "updated", updated, "total", len(bots))
	return updated, nil
}

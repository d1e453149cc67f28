package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/pkg/models"
)

// ConversationService manages platform conversations and their message
// log. A conversation binds one platform user talking to one bot to an
// engine session id.
type ConversationService struct {
	client *ent.Client
}

// NewConversationService creates a new ConversationService
func NewConversationService(client *ent.Client) *ConversationService {
	return &ConversationService{client: client}
}

// GetOrCreateConversation returns the existing conversation for a
// platform user on a bot, or creates one with a fresh engine session id.
// Returns (conversation, created, error). Closed conversations are
// returned as-is so callers can decide whether to refuse the message.
func (s *ConversationService) GetOrCreateConversation(httpCtx context.Context, botID int, platformUserID, platformUserName string) (*ent.PlatformConversation, bool, error) {
	if platformUserID == "" {
		return nil, false, NewValidationError("platform_user_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Query().
		Where(
			platformconversation.BotConfigID(botID),
			platformconversation.PlatformUserID(platformUserID),
		).
		Order(ent.Desc(platformconversation.FieldCreatedAt)).
		First(ctx)
	if err == nil {
		return conv, false, nil
	}
	if !ent.IsNotFound(err) {
		return nil, false, fmt.Errorf("failed to look up conversation: %w", err)
	}

	bot, err := s.client.BotConfig.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, ErrNotFound
		}
		return nil, false, fmt.Errorf("failed to get bot: %w", err)
	}

	sessionID := mintSessionID(bot.Platform, botID, platformUserID)
	conv, err = s.client.PlatformConversation.Create().
		SetBotConfigID(botID).
		SetPlatformUserID(platformUserID).
		SetPlatformUserName(platformUserName).
		SetSessionID(sessionID).
		Save(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create conversation: %w", err)
	}

	slog.Info("Created new conversation",
		"conversation_id", conv.ID,
		"bot_id", botID,
		"session_id", sessionID)
	return conv, true, nil
}

// mintSessionID builds the engine session key, e.g.
// "telegram-3-123456-a1b2c3d4". The random suffix keeps reset
// conversations from colliding with old engine state.
func mintSessionID(platform botconfig.Platform, botID int, platformUserID string) string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("%s-%d-%s-%s", strings.ToLower(string(platform)), botID, platformUserID, suffix)
}

// GetConversation returns a conversation by ID
func (s *ConversationService) GetConversation(httpCtx context.Context, conversationID int) (*ent.PlatformConversation, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return conv, nil
}

// GetBySessionID returns the conversation bound to an engine session id
func (s *ConversationService) GetBySessionID(httpCtx context.Context, sessionID string) (*ent.PlatformConversation, error) {
	if sessionID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Query().
		Where(platformconversation.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get conversation by session: %w", err)
	}
	return conv, nil
}

// RecordMessage appends a message to the conversation log and bumps the
// conversation's last activity timestamp.
func (s *ConversationService) RecordMessage(httpCtx context.Context, conversationID int, role conversationmessage.Role, content, platformMessageID string) (*ent.ConversationMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	create := s.client.ConversationMessage.Create().
		SetConversationID(conversationID).
		SetRole(role).
		SetContent(content)
	if platformMessageID != "" {
		create = create.SetPlatformMessageID(platformMessageID)
	}

	msg, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record message: %w", err)
	}

	err = s.client.PlatformConversation.UpdateOneID(conversationID).
		SetLastMessageAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to touch conversation: %w", err)
	}

	return msg, nil
}

// RecentMessages returns the last n messages of a conversation, oldest
// first.
func (s *ConversationService) RecentMessages(httpCtx context.Context, conversationID, limit int) ([]*ent.ConversationMessage, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msgs, err := s.client.ConversationMessage.Query().
		Where(conversationmessage.ConversationID(conversationID)).
		Order(ent.Desc(conversationmessage.FieldCreatedAt), ent.Desc(conversationmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	// Reverse into chronological order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// SearchMessages runs a Portuguese full-text search over a bot's message
// log, newest first.
func (s *ConversationService) SearchMessages(httpCtx context.Context, botID int, query string, limit int) ([]*ent.ConversationMessage, error) {
	if query == "" {
		return nil, NewValidationError("query", "required")
	}
	if limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	msgs, err := s.client.ConversationMessage.Query().
		Where(conversationmessage.HasConversationWith(platformconversation.BotConfigID(botID))).
		Where(func(sel *entsql.Selector) {
			sel.Where(entsql.P(func(b *entsql.Builder) {
				b.WriteString("to_tsvector('portuguese', ").
					Ident(conversationmessage.FieldContent).
					WriteString(") @@ plainto_tsquery('portuguese', ").
					Arg(query).
					WriteString(")")
			}))
		}).
		Order(ent.Desc(conversationmessage.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search messages: %w", err)
	}
	return msgs, nil
}

// ListSessions returns conversation summaries, newest activity first.
// status filters by the API status name ("active", "closed", "archived"),
// botID filters by bot when positive. limit caps the result (default 50).
func (s *ConversationService) ListSessions(httpCtx context.Context, status string, botID, limit int) ([]models.SessionSummary, error) {
	if limit <= 0 {
		limit = 50
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	query := s.client.PlatformConversation.Query().WithBotConfig()
	if status != "" {
		st, err := statusFromAPI(status)
		if err != nil {
			return nil, err
		}
		query = query.Where(platformconversation.StatusEQ(st))
	}
	if botID > 0 {
		query = query.Where(platformconversation.BotConfigID(botID))
	}

	convs, err := query.
		Order(ent.Desc(platformconversation.FieldLastMessageAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]models.SessionSummary, 0, len(convs))
	for _, conv := range convs {
		count, err := conv.QueryMessages().Count(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count messages: %w", err)
		}
		summaries = append(summaries, s.summarize(conv, count))
	}
	return summaries, nil
}

// GetSessionDetail returns a conversation summary plus its last 10
// messages, oldest first.
func (s *ConversationService) GetSessionDetail(httpCtx context.Context, conversationID int) (*models.SessionDetail, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Query().
		Where(platformconversation.ID(conversationID)).
		WithBotConfig().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	count, err := conv.QueryMessages().Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count messages: %w", err)
	}

	recent, err := s.RecentMessages(ctx, conversationID, 10)
	if err != nil {
		return nil, err
	}

	detail := &models.SessionDetail{
		SessionSummary: s.summarize(conv, count),
		RecentMessages: make([]models.MessageDetail, 0, len(recent)),
	}
	for _, msg := range recent {
		detail.RecentMessages = append(detail.RecentMessages, models.MessageDetail{
			ID:        msg.ID,
			Role:      strings.ToLower(string(msg.Role)),
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}
	return detail, nil
}

// CloseSession marks a conversation closed. Further platform messages
// for it are refused until it is reset. Returns the engine session id so
// callers can also clear engine state.
func (s *ConversationService) CloseSession(httpCtx context.Context, conversationID int) (string, error) {
	return s.setStatus(httpCtx, conversationID, platformconversation.StatusINACTIVE)
}

// ResetSession starts a conversation over: the message log is purged, a
// fresh engine session id is minted so no stale engine state can attach,
// and the conversation is reactivated. Returns the old session id so the
// caller can clear engine-side state.
func (s *ConversationService) ResetSession(httpCtx context.Context, conversationID int) (string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Query().
		Where(platformconversation.ID(conversationID)).
		WithBotConfig().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}
	oldSessionID := conv.SessionID

	_, err = s.client.ConversationMessage.Delete().
		Where(conversationmessage.ConversationID(conversationID)).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to purge messages: %w", err)
	}

	platform := botconfig.PlatformTELEGRAM
	if bot := conv.Edges.BotConfig; bot != nil {
		platform = bot.Platform
	}
	err = s.client.PlatformConversation.UpdateOneID(conversationID).
		SetStatus(platformconversation.StatusACTIVE).
		SetSessionID(mintSessionID(platform, conv.BotConfigID, conv.PlatformUserID)).
		Exec(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to reset session: %w", err)
	}

	slog.Info("Session reset", "conversation_id", conversationID, "old_session_id", oldSessionID)
	return oldSessionID, nil
}

func (s *ConversationService) setStatus(httpCtx context.Context, conversationID int, status platformconversation.Status) (string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.UpdateOneID(conversationID).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to update session status: %w", err)
	}
	return conv.SessionID, nil
}

// CloseIdleConversations marks active conversations with no message
// activity since the cutoff as closed. Returns how many were closed.
func (s *ConversationService) CloseIdleConversations(httpCtx context.Context, idleFor time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	count, err := s.client.PlatformConversation.Update().
		Where(
			platformconversation.StatusEQ(platformconversation.StatusACTIVE),
			platformconversation.LastMessageAtLT(time.Now().Add(-idleFor)),
		).
		SetStatus(platformconversation.StatusINACTIVE).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to close idle conversations: %w", err)
	}
	return count, nil
}

// ArchiveClosedConversations moves closed conversations whose last
// activity is older than the cutoff to ARCHIVED. Returns how many were
// archived.
func (s *ConversationService) ArchiveClosedConversations(httpCtx context.Context, closedFor time.Duration) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	count, err := s.client.PlatformConversation.Update().
		Where(
			platformconversation.StatusEQ(platformconversation.StatusINACTIVE),
			platformconversation.LastMessageAtLT(time.Now().Add(-closedFor)),
		).
		SetStatus(platformconversation.StatusARCHIVED).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to archive conversations: %w", err)
	}
	return count, nil
}

// DeleteSession permanently removes a conversation. Messages and
// variables cascade. Returns the engine session id that was bound to it.
func (s *ConversationService) DeleteSession(httpCtx context.Context, conversationID int) (string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	conv, err := s.client.PlatformConversation.Get(ctx, conversationID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	if err := s.client.PlatformConversation.DeleteOneID(conversationID).Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to delete session: %w", err)
	}
	return conv.SessionID, nil
}

func (s *ConversationService) summarize(conv *ent.PlatformConversation, messageCount int) models.SessionSummary {
	summary := models.SessionSummary{
		ID:               conv.ID,
		BotConfigID:      conv.BotConfigID,
		PlatformUserID:   conv.PlatformUserID,
		PlatformUserName: conv.PlatformUserName,
		SessionID:        conv.SessionID,
		Status:           statusToAPI(conv.Status),
		MessageCount:     messageCount,
		LastMessageAt:    conv.LastMessageAt,
		CreatedAt:        conv.CreatedAt,
	}
	if bot := conv.Edges.BotConfig; bot != nil {
		summary.BotName = bot.BotName
		summary.Platform = strings.ToLower(string(bot.Platform))
	}
	return summary
}

// statusFromAPI maps the external status name onto the stored enum.
// "closed" is the public name for INACTIVE.
func statusFromAPI(status string) (platformconversation.Status, error) {
	switch strings.ToLower(status) {
	case "active":
		return platformconversation.StatusACTIVE, nil
	case "closed", "inactive":
		return platformconversation.StatusINACTIVE, nil
	case "archived":
		return platformconversation.StatusARCHIVED, nil
	default:
		return "", NewValidationError("status", fmt.Sprintf("unknown status %q", status))
	}
}

func statusToAPI(status platformconversation.Status) string {
	if status == platformconversation.StatusINACTIVE {
		return "closed"
	}
	return strings.ToLower(string(status))
}

// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/pkg/crypto"
	"github.com/easypath-ai/easypath/pkg/models"
)

// BotService manages bot registrations and their platform credentials.
// Tokens are sealed with the gateway cipher before they touch the database.
type BotService struct {
	client *ent.Client
	cipher *crypto.Cipher
}

// NewBotService creates a new BotService
func NewBotService(client *ent.Client, cipher *crypto.Cipher) *BotService {
	return &BotService{client: client, cipher: cipher}
}

// CreateBot registers a new bot. The webhook URL is set separately once
// platform registration succeeds.
func (s *BotService) CreateBot(httpCtx context.Context, req models.CreateBotRequest) (*ent.BotConfig, error) {
	platform := botconfig.Platform(strings.ToUpper(req.Platform))
	if err := botconfig.PlatformValidator(platform); err != nil {
		return nil, NewValidationError("platform", fmt.Sprintf("unsupported platform %q", req.Platform))
	}
	if req.BotToken == "" {
		return nil, NewValidationError("bot_token", "required")
	}
	if req.FlowID <= 0 {
		return nil, NewValidationError("flow_id", "required")
	}
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}

	sealed, err := s.cipher.EncryptToken(req.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt bot token: %w", err)
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.BotConfig.Create().
		SetPlatform(platform).
		SetBotName(req.BotName).
		SetBotTokenEncrypted(sealed).
		SetFlowID(req.FlowID).
		SetOwnerID(req.OwnerID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	return bot, nil
}

// GetBot returns a bot configuration by ID
func (s *BotService) GetBot(httpCtx context.Context, botID int) (*ent.BotConfig, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bot, err := s.client.BotConfig.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}
	return bot, nil
}

// ListBots returns bot configurations, optionally filtered by owner
// and/or platform. Empty filter values match everything.
func (s *BotService) ListBots(httpCtx context.Context, ownerID, platform string) ([]*ent.BotConfig, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	query := s.client.BotConfig.Query()
	if ownerID != "" {
		query = query.Where(botconfig.OwnerID(ownerID))
	}
	if platform != "" {
		query = query.Where(botconfig.PlatformEQ(botconfig.Platform(strings.ToUpper(platform))))
	}

	bots, err := query.Order(ent.Asc(botconfig.FieldID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list bots: %w", err)
	}
	return bots, nil
}

// ListActiveBots returns all active bots for a platform. Used at startup
// to resync platform webhooks.
func (s *BotService) ListActiveBots(httpCtx context.Context, platform botconfig.Platform) ([]*ent.BotConfig, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	bots, err := s.client.BotConfig.Query().
		Where(botconfig.PlatformEQ(platform), botconfig.IsActive(true)).
		Order(ent.Asc(botconfig.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active bots: %w", err)
	}
	return bots, nil
}

// UpdateBot applies a partial update. A new token is re-encrypted before
// storage.
func (s *BotService) UpdateBot(httpCtx context.Context, botID int, req models.UpdateBotRequest) (*ent.BotConfig, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.BotConfig.UpdateOneID(botID)
	if req.BotName != nil {
		update = update.SetBotName(*req.BotName)
	}
	if req.BotToken != nil {
		if *req.BotToken == "" {
			return nil, NewValidationError("bot_token", "must not be empty")
		}
		sealed, err := s.cipher.EncryptToken(*req.BotToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt bot token: %w", err)
		}
		update = update.SetBotTokenEncrypted(sealed)
	}
	if req.FlowID != nil {
		update = update.SetFlowID(*req.FlowID)
	}
	if req.IsActive != nil {
		update = update.SetIsActive(*req.IsActive)
	}

	bot, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update bot: %w", err)
	}
	return bot, nil
}

// SetWebhook records the registered webhook endpoint and its validation
// secret after the platform accepted it.
func (s *BotService) SetWebhook(httpCtx context.Context, botID int, webhookURL, secret string) (*ent.BotConfig, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	update := s.client.BotConfig.UpdateOneID(botID).SetWebhookURL(webhookURL)
	if secret != "" {
		update = update.SetWebhookSecret(secret)
	}

	bot, err := update.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to set webhook: %w", err)
	}
	return bot, nil
}

// DeleteBot removes a bot and, through cascades, its conversations,
// messages and variables.
func (s *BotService) DeleteBot(httpCtx context.Context, botID int) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.BotConfig.DeleteOneID(botID).Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete bot: %w", err)
	}
	return nil
}

// BotToken unseals the stored platform credential.
func (s *BotService) BotToken(bot *ent.BotConfig) (string, error) {
	token, err := s.cipher.DecryptToken(bot.BotTokenEncrypted)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt bot token: %w", err)
	}
	return token, nil
}

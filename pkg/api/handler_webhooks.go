package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/ent/botconfig"
)

// telegramWebhookHandler handles POST /webhooks/telegram/:bot_config_id.
// Telegram retries any non-200 answer, so intake always acks with 200
// and the update is processed in the background.
func (s *Server) telegramWebhookHandler(c *echo.Context) error {
	ack := func() error { return c.JSON(http.StatusOK, map[string]string{"status": "ok"}) }

	botID, err := pathID(c, "bot_config_id")
	if err != nil {
		return ack()
	}
	if s.telegram == nil {
		return ack()
	}

	bot, err := s.bots.GetBot(c.Request().Context(), botID)
	if err != nil || !bot.IsActive || bot.Platform != botconfig.PlatformTELEGRAM {
		slog.Warn("Webhook update for unknown or inactive bot", "bot_id", botID)
		return ack()
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(c.Request().Body).Decode(&update); err != nil {
		slog.Warn("Malformed webhook payload", "bot_id", botID, "error", err)
		return ack()
	}

	var flowData []byte
	if s.flows != nil {
		flowData, err = s.flows(c.Request().Context(), bot.FlowID)
		if err != nil {
			slog.Error("Failed to resolve flow for webhook", "bot_id", botID, "flow_id", bot.FlowID, "error", err)
			return ack()
		}
	}

	// The request context dies with the ack; delivery continues on its
	// own context.
	go func() {
		if err := s.telegram.ProcessUpdate(context.Background(), bot, update, flowData); err != nil {
			slog.Error("Failed to process webhook update", "bot_id", botID, "error", err)
		}
	}()

	return ack()
}

// telegramWebhookInfoHandler handles GET /webhooks/telegram/:bot_config_id/info.
func (s *Server) telegramWebhookInfoHandler(c *echo.Context) error {
	botID, err := pathID(c, "bot_config_id")
	if err != nil {
		return err
	}
	if s.telegram == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "telegram adapter not available")
	}

	bot, err := s.bots.GetBot(c.Request().Context(), botID)
	if err != nil {
		return mapServiceError(err)
	}

	info, err := s.telegram.WebhookInfo(bot)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"bot_id":                 bot.ID,
		"url":                    info.URL,
		"pending_update_count":   info.PendingUpdateCount,
		"last_error_date":        info.LastErrorDate,
		"last_error_message":     info.LastErrorMessage,
		"has_custom_certificate": info.HasCustomCertificate,
		"max_connections":        info.MaxConnections,
		"ip_address":             info.IPAddress,
		"allowed_updates":        info.AllowedUpdates,
	})
}

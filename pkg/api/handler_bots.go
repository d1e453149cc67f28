package api

import (
	"log/slog"
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/models"
)

// createBotHandler handles POST /bots. Telegram bots get their webhook
// registered immediately; a registration failure is reported but does
// not roll the bot back.
func (s *Server) createBotHandler(c *echo.Context) error {
	var req models.CreateBotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bot, err := s.bots.CreateBot(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	resp := botResponseFromEnt(bot)
	if s.telegram != nil && bot.Platform == "TELEGRAM" {
		webhookURL, err := s.telegram.RegisterWebhook(c.Request().Context(), bot)
		if err != nil {
			slog.Warn("Webhook registration failed for new bot", "bot_id", bot.ID, "error", err)
		} else {
			resp.WebhookURL = &webhookURL
		}
	}
	return c.JSON(http.StatusCreated, resp)
}

// listBotsHandler handles GET /bots with optional owner_id and platform
// filters.
func (s *Server) listBotsHandler(c *echo.Context) error {
	bots, err := s.bots.ListBots(c.Request().Context(), c.QueryParam("owner_id"), c.QueryParam("platform"))
	if err != nil {
		return mapServiceError(err)
	}

	resp := make([]BotResponse, 0, len(bots))
	for _, bot := range bots {
		resp = append(resp, botResponseFromEnt(bot))
	}
	return c.JSON(http.StatusOK, resp)
}

// getBotHandler handles GET /bots/:id.
func (s *Server) getBotHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bot, err := s.bots.GetBot(c.Request().Context(), botID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, botResponseFromEnt(bot))
}

// updateBotHandler handles PUT /bots/:id. A token change invalidates the
// cached Telegram client so the next delivery uses the new credentials.
func (s *Server) updateBotHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req models.UpdateBotRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bot, err := s.bots.UpdateBot(c.Request().Context(), botID, req)
	if err != nil {
		return mapServiceError(err)
	}

	if s.telegram != nil && req.BotToken != nil {
		s.telegram.ForgetBot(bot.ID)
	}
	return c.JSON(http.StatusOK, botResponseFromEnt(bot))
}

// deleteBotHandler handles DELETE /bots/:id, detaching the platform
// webhook before the cascade delete.
func (s *Server) deleteBotHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	bot, err := s.bots.GetBot(c.Request().Context(), botID)
	if err != nil {
		return mapServiceError(err)
	}

	if s.telegram != nil && bot.Platform == "TELEGRAM" {
		if err := s.telegram.UnregisterWebhook(bot); err != nil {
			slog.Warn("Webhook removal failed for deleted bot", "bot_id", bot.ID, "error", err)
		}
		s.telegram.ForgetBot(bot.ID)
	}

	if err := s.bots.DeleteBot(c.Request().Context(), botID); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, &StatusResponse{Status: "success", Message: "bot deleted"})
}

// updateWebhooksHandler handles POST /bots/update-webhooks, re-pointing
// every active Telegram bot at the configured base URL.
func (s *Server) updateWebhooksHandler(c *echo.Context) error {
	if s.telegram == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "telegram adapter not available")
	}

	updated, err := s.telegram.UpdateAllWebhooks(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, map[string]any{
		"status":       "success",
		"updated_bots": updated,
	})
}

// pathID parses a numeric path parameter.
func pathID(c *echo.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

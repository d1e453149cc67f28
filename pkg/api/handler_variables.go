package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"
)

const defaultVariableListLimit = 100

// conversationVariablesHandler handles GET /variables/conversations/:id.
func (s *Server) conversationVariablesHandler(c *echo.Context) error {
	conversationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	vars, err := s.variables.ConversationVariables(c.Request().Context(), conversationID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, vars)
}

// botVariablesHandler handles GET /variables/bots/:id, listing the
// collected data of every conversation that extracted at least one
// variable.
func (s *Server) botVariablesHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit := queryLimit(c, defaultVariableListLimit)
	offset := queryOffset(c)

	data, err := s.variables.BotCollectedData(c.Request().Context(), botID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, data)
}

// botVariablesSummaryHandler handles GET /variables/bots/:id/summary.
func (s *Server) botVariablesSummaryHandler(c *echo.Context) error {
	botID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	summary, err := s.variables.BotSummary(c.Request().Context(), botID)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// flowVariablesHandler handles GET /variables/flows/:id.
func (s *Server) flowVariablesHandler(c *echo.Context) error {
	flowID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit := queryLimit(c, defaultVariableListLimit)
	offset := queryOffset(c)

	data, err := s.variables.FlowCollectedData(c.Request().Context(), flowID, limit, offset)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, data)
}

// searchVariablesHandler handles GET /variables/search. variable_name is
// required; variable_value matches as a substring and bot_id narrows the
// search to one bot.
func (s *Server) searchVariablesHandler(c *echo.Context) error {
	variableName := c.QueryParam("variable_name")
	if variableName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "variable_name is required")
	}

	botID := 0
	if raw := c.QueryParam("bot_id"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid bot_id")
		}
		botID = parsed
	}
	limit := queryLimit(c, defaultVariableListLimit)

	matches, err := s.variables.SearchVariables(c.Request().Context(), variableName, c.QueryParam("variable_value"), botID, limit)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, matches)
}

func queryOffset(c *echo.Context) int {
	raw := c.QueryParam("offset")
	if raw == "" {
		return 0
	}
	offset, err := strconv.Atoi(raw)
	if err != nil || offset < 0 {
		return 0
	}
	return offset
}

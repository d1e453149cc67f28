package api

import (
	"net/http"
	"os"

	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/flow"
)

// loadFlowHandler handles GET /flow/load?file_path=. Canvas exports are
// converted to the engine format before returning.
func (s *Server) loadFlowHandler(c *echo.Context) error {
	filePath := c.QueryParam("file_path")
	if filePath == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "file_path is required")
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Flow not found")
	}

	f, err := flow.EnsureEngineFormat(data)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, f)
}

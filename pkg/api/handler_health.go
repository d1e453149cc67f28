package api

import (
	"context"
	"net/http"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/easypath-ai/easypath/pkg/database"
	"github.com/easypath-ai/easypath/pkg/version"
)

const (
	healthStatusOK        = "ok"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the platform's own components are checked; the LLM provider is
// excluded so an upstream outage cannot make an orchestrator restart us.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	status := healthStatusOK
	checks := make(map[string]HealthCheck)
	var dbHealth *database.HealthStatus

	if s.db != nil {
		var err error
		dbHealth, err = database.Health(reqCtx, s.db.DB())
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusOK}
		}
	}

	if pinger, ok := s.store.(interface{ Ping(context.Context) error }); ok && pinger != nil {
		if err := pinger.Ping(reqCtx); err != nil {
			if status == healthStatusOK {
				status = healthStatusDegraded
			}
			checks["session_store"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["session_store"] = HealthCheck{Status: healthStatusOK}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:   status,
		Version:  version.Full(),
		Database: dbHealth,
		Checks:   checks,
	})
}

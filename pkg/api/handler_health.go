package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/pkg/database"
	"github.com/swarmlet/swarmlet/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the orchestrator's own components (database, queue, runner hub)
// are checked; external services are excluded so their outages do not
// restart this process.
func (s *Server) healthHandler(c *echo.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.dbClient != nil {
		_, err := database.Health(reqCtx, s.dbClient.DB())
		if err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.queue != nil {
		depth, err := s.queue.Depth(reqCtx)
		if err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["queue"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			checks["queue"] = HealthCheck{Status: healthStatusHealthy, Message: strconv.Itoa(depth) + " queued"}
		}
	}

	if s.hub != nil {
		checks["runner_hub"] = HealthCheck{
			Status:  healthStatusHealthy,
			Message: strconv.Itoa(s.hub.ConnectedCount()) + " connected",
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

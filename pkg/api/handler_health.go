package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/runsheet/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Only the store is checked; a failing database makes the server unhealthy.
func (s *Server) healthHandler(c *gin.Context) error {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Store:   s.storeDriver,
		Checks:  map[string]HealthCheck{"store": {Status: healthStatusHealthy}},
	}
	if s.connManager != nil {
		resp.Connections = s.connManager.ActiveConnections()
	}

	if s.dbClient != nil {
		dbHealth, err := s.dbClient.Health(reqCtx)
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
			resp.Checks["store"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		}
	}

	httpStatus := http.StatusOK
	if resp.Status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}
	c.JSON(httpStatus, resp)
	return nil
}

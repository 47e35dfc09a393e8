package api

import (
	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/pkg/models"
)

// LiveActionResponse is returned by the live action endpoints.
type LiveActionResponse struct {
	Success bool `json:"success"`
	*models.LiveResult
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Store       string                 `json:"store,omitempty"`
	Database    *database.HealthStatus `json:"database,omitempty"`
	Checks      map[string]HealthCheck `json:"checks"`
	Connections int                    `json:"websocket_connections"`
}

// HealthCheck is the status of one component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

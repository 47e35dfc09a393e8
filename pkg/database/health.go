package database

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// HealthStatus reports connectivity, the applied schema version and pool usage.
type HealthStatus struct {
	Status        string `json:"status"`
	LatencyMs     int64  `json:"latency_ms"`
	SchemaVersion uint   `json:"schema_version,omitempty"`
	SchemaDirty   bool   `json:"schema_dirty,omitempty"`

	Pool PoolStats `json:"pool"`
}

// PoolStats is the subset of sql.DBStats worth exposing on /health.
type PoolStats struct {
	Open      int   `json:"open"`
	InUse     int   `json:"in_use"`
	Idle      int   `json:"idle"`
	MaxOpen   int   `json:"max_open"`
	WaitCount int64 `json:"wait_count"`
	WaitMs    int64 `json:"wait_ms"`
}

// Health pings the database and reads the migration version recorded by
// golang-migrate. A dirty schema (an interrupted migration) counts as unhealthy.
func (c *Client) Health(ctx context.Context) (*HealthStatus, error) {
	start := time.Now()
	status := &HealthStatus{Status: "unhealthy"}

	err := c.db.PingContext(ctx)
	if err == nil {
		err = c.db.QueryRowContext(ctx,
			"SELECT version, dirty FROM schema_migrations LIMIT 1").
			Scan(&status.SchemaVersion, &status.SchemaDirty)
		if err != nil {
			err = fmt.Errorf("failed to read schema version: %w", err)
		}
	}
	if err == nil && status.SchemaDirty {
		err = errors.New("schema is dirty: a migration did not complete")
	}
	status.LatencyMs = time.Since(start).Milliseconds()

	stats := c.db.Stats()
	status.Pool = PoolStats{
		Open:      stats.OpenConnections,
		InUse:     stats.InUse,
		Idle:      stats.Idle,
		MaxOpen:   stats.MaxOpenConnections,
		WaitCount: stats.WaitCount,
		WaitMs:    stats.WaitDuration.Milliseconds(),
	}
	if err != nil {
		return status, err
	}
	status.Status = "healthy"
	return status, nil
}

package database

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/test/util"
)

// newTestClient creates a migrated client on a per-test schema.
// It cannot use test/database, which imports this package.
func newTestClient(t *testing.T) *Client {
	db := util.SetupTestDatabase(t)

	err := RunMigrations(db, "test")
	require.NoError(t, err)

	return NewClientFromDB(db)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Test basic connectivity
	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Equal(t, uint(20261019120000), health.SchemaVersion)
	assert.False(t, health.SchemaDirty)
	assert.Equal(t, 10, health.Pool.MaxOpen)
	assert.Less(t, health.LatencyMs, int64(1000))
}

func TestRunMigrations(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	// Re-running is a no-op.
	require.NoError(t, RunMigrations(client.DB(), "test"))

	for _, table := range []string{"events", "timeline_items", "schema_migrations"} {
		var exists bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM information_schema.tables
			 WHERE table_schema = current_schema() AND table_name = $1)`, table).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "table %s should exist", table)
	}
}

func TestMigrations_Constraints(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	db := client.DB()

	_, err := db.ExecContext(ctx,
		`INSERT INTO events (id, name, date) VALUES ('e1', 'Gala', '2026-10-19')`)
	require.NoError(t, err)

	t.Run("status check", func(t *testing.T) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO events (id, name, date, status) VALUES ('e2', 'Bad', '2026-10-19', 'running')`)
		assert.Error(t, err)
	})

	t.Run("item defaults", func(t *testing.T) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO timeline_items (id, event_id, title, start_time) VALUES ('i1', 'e1', 'Doors', now())`)
		require.NoError(t, err)

		var status, category string
		var order int
		err = db.QueryRowContext(ctx,
			`SELECT status, category, order_index FROM timeline_items WHERE id = 'i1'`).Scan(&status, &category, &order)
		require.NoError(t, err)
		assert.Equal(t, "pending", status)
		assert.Equal(t, "general", category)
		assert.Equal(t, 0, order)
	})

	t.Run("item requires event", func(t *testing.T) {
		_, err := db.ExecContext(ctx,
			`INSERT INTO timeline_items (id, event_id, title, start_time) VALUES ('i2', 'missing', 'X', now())`)
		assert.Error(t, err)
	})

	t.Run("delete cascades", func(t *testing.T) {
		_, err := db.ExecContext(ctx, `DELETE FROM events WHERE id = 'e1'`)
		require.NoError(t, err)

		var n int
		require.NoError(t, db.QueryRowContext(ctx, `SELECT count(*) FROM timeline_items`).Scan(&n))
		assert.Zero(t, n)
	})
}

func TestMigrationSQL(t *testing.T) {
	sql, err := MigrationSQL()
	require.NoError(t, err)
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS events")
	assert.Contains(t, sql, "CREATE TABLE IF NOT EXISTS timeline_items")
	assert.NotContains(t, sql, "DROP TABLE", "down migrations must not be included")
}

var dbEnvKeys = []string{
	"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}{
		{
			name: "defaults",
			env:  map[string]string{"DB_PASSWORD": "pw"},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "localhost", cfg.Host)
				assert.Equal(t, 5432, cfg.Port)
				assert.Equal(t, "runsheet", cfg.User)
				assert.Equal(t, "runsheet", cfg.Database)
				assert.Equal(t, 25, cfg.MaxOpenConns)
				assert.Equal(t, 10, cfg.MaxIdleConns)
				assert.Equal(t, 30*time.Minute, cfg.ConnMaxLifetime)
			},
		},
		{
			name: "overrides",
			env: map[string]string{
				"DB_HOST": "pg.venue.internal", "DB_PORT": "6432", "DB_PASSWORD": "pw",
				"DB_SSLMODE": "require", "DB_MAX_OPEN_CONNS": "4", "DB_MAX_IDLE_CONNS": "2",
			},
			check: func(t *testing.T, cfg Config) {
				assert.Equal(t, "pg.venue.internal", cfg.Host)
				assert.Equal(t, 6432, cfg.Port)
				assert.Equal(t, "require", cfg.SSLMode)
				assert.Equal(t, 4, cfg.MaxOpenConns)
			},
		},
		{name: "bad port", env: map[string]string{"DB_PASSWORD": "pw", "DB_PORT": "x"}, wantErr: "invalid DB_PORT"},
		{name: "port out of range", env: map[string]string{"DB_PASSWORD": "pw", "DB_PORT": "70000"}, wantErr: "DB_PORT must be between"},
		{name: "bad max open", env: map[string]string{"DB_PASSWORD": "pw", "DB_MAX_OPEN_CONNS": "many"}, wantErr: "invalid DB_MAX_OPEN_CONNS"},
		{name: "bad lifetime", env: map[string]string{"DB_PASSWORD": "pw", "DB_CONN_MAX_LIFETIME": "forever"}, wantErr: "invalid DB_CONN_MAX_LIFETIME"},
		{name: "idle above open", env: map[string]string{"DB_PASSWORD": "pw", "DB_MAX_OPEN_CONNS": "2", "DB_MAX_IDLE_CONNS": "3"}, wantErr: "must not exceed"},
		{name: "no password", env: map[string]string{}, wantErr: "DB_PASSWORD is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range dbEnvKeys {
				t.Setenv(key, "")
				_ = os.Unsetenv(key)
			}
			for key, val := range tt.env {
				t.Setenv(key, val)
			}

			cfg, err := LoadConfigFromEnv()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := Config{Host: "db", Port: 5433, User: "ops", Password: "p@ss word", Database: "runsheet"}
	assert.Equal(t, "postgres://ops:p%40ss%20word@db:5433/runsheet?sslmode=disable", cfg.DSN())

	cfg.SSLMode = "require"
	assert.Contains(t, cfg.DSN(), "sslmode=require")
}

func TestClient_HealthDirtySchema(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.DB().ExecContext(ctx, "UPDATE schema_migrations SET dirty = true")
	require.NoError(t, err)

	health, err := client.Health(ctx)
	require.Error(t, err)
	assert.Equal(t, "unhealthy", health.Status)
	assert.True(t, health.SchemaDirty)

	data, err := json.Marshal(health)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"schema_dirty":true`)
}

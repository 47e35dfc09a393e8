package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644))
	return dir
}

func TestInitializeDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, dir, cfg.ConfigDir())
	assert.Equal(t, store.DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, commit.ModeBestEffort, cfg.Live.CommitMode)
	assert.Equal(t, ":8080", cfg.Server.HTTPAddr)
	assert.True(t, cfg.Notifications.IsEnabled())
}

func TestInitializeOverridesDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  http_addr: ":8000"
  shutdown_timeout: 5s
store:
  driver: memory
live:
  commit_mode: transactional
  write_timeout: 250ms
notifications:
  enabled: false
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.Server.HTTPAddr)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr, "unset values keep their default")
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, store.DriverMemory, cfg.Store.Driver)
	assert.False(t, cfg.Notifications.IsEnabled())

	cc := cfg.Live.CommitConfig()
	assert.Equal(t, commit.ModeTransactional, cc.Mode)
	assert.Equal(t, 8, cc.Concurrency)
	assert.Equal(t, 250*time.Millisecond, cc.WriteTimeout)
}

func TestInitializeExpandsEnv(t *testing.T) {
	t.Setenv("RUNSHEET_DATA", "/var/lib/runsheet")
	dir := writeConfig(t, `
store:
  driver: disk
  disk_path: "{{.RUNSHEET_DATA}}/items"
`)
	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/runsheet/items", cfg.Store.DiskPath)
}

func TestInitializeInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server: [")
	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, FileName, filepath.Base(loadErr.Path))
	assert.ErrorIs(t, err, ErrInvalidYAML)
}

func TestInitializeValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		section string
		field   string
	}{
		{
			name:    "unknown store driver",
			yaml:    "store:\n  driver: sqlite\n",
			section: "store",
			field:   "driver",
		},
		{
			name:    "transactional commit on disk store",
			yaml:    "store:\n  driver: disk\nlive:\n  commit_mode: transactional\n",
			section: "live",
			field:   "commit_mode",
		},
		{
			name:    "unknown commit mode",
			yaml:    "live:\n  commit_mode: eventually\n",
			section: "live",
			field:   "commit_mode",
		},
		{
			name:    "malformed http address",
			yaml:    "server:\n  http_addr: localhost\n",
			section: "server",
			field:   "http_addr",
		},
		{
			name:    "grpc and http on one address",
			yaml:    "server:\n  http_addr: \":7000\"\n  grpc_addr: \":7000\"\n",
			section: "server",
			field:   "grpc_addr",
		},
		{
			name:    "negative concurrency",
			yaml:    "live:\n  commit_concurrency: -1\n",
			section: "live",
			field:   "commit_concurrency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Initialize(context.Background(), writeConfig(t, tt.yaml))
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr), err.Error())
			assert.Equal(t, tt.section, vErr.Section)
			assert.Equal(t, tt.field, vErr.Field)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Store.Driver = "sqlite"
	cfg.Live.CommitMode = "eventually"
	cfg.Server.ShutdownTimeout = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"store.driver", "live.commit_mode", "server.shutdown_timeout"} {
		assert.Contains(t, err.Error(), want)
	}
}

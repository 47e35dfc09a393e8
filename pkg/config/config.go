// Package config loads runsheet.yaml.
package config

import (
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// Config is the resolved server configuration returned by Initialize.
type Config struct {
	configDir string

	Server        ServerConfig        `yaml:"server"`
	Store         StoreConfig         `yaml:"store"`
	Live          LiveConfig          `yaml:"live"`
	Notifications NotificationsConfig `yaml:"notifications"`
}

// ServerConfig controls the HTTP and gRPC listeners.
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
	// GRPCAddr empty disables the gRPC listener.
	GRPCAddr          string        `yaml:"grpc_addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
}

// StoreConfig selects the timeline item store.
type StoreConfig struct {
	Driver   store.Driver `yaml:"driver"`
	DiskPath string       `yaml:"disk_path"` // disk driver only
}

// LiveConfig controls how live actions are committed.
type LiveConfig struct {
	CommitMode        commit.Mode   `yaml:"commit_mode"`
	CommitConcurrency int           `yaml:"commit_concurrency"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
}

// CommitConfig returns the commit layer settings.
func (l LiveConfig) CommitConfig() commit.Config {
	return commit.Config{
		Mode:         l.CommitMode,
		Concurrency:  l.CommitConcurrency,
		WriteTimeout: l.WriteTimeout,
	}
}

// NotificationsConfig controls change notifications.
type NotificationsConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"`
}

// IsEnabled reports whether notifications are on; unset means on.
func (n NotificationsConfig) IsEnabled() bool {
	return n.Enabled == nil || *n.Enabled
}

// ConfigDir returns the configuration directory path
func (c *Config) ConfigDir() string {
	return c.configDir
}

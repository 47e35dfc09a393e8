package config

import (
	"time"

	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/store"
)

// FileName is the configuration file looked up in the config directory.
const FileName = "runsheet.yaml"

// Default returns the built-in configuration used when runsheet.yaml is
// absent, and underneath every value it leaves unset.
func Default() *Config {
	enabled := true
	return &Config{
		Server: ServerConfig{
			HTTPAddr:          ":8080",
			GRPCAddr:          ":9090",
			ReadHeaderTimeout: 10 * time.Second,
			ShutdownTimeout:   30 * time.Second,
		},
		Store: StoreConfig{
			Driver:   store.DriverPostgres,
			DiskPath: "./data",
		},
		Live: LiveConfig{
			CommitMode:        commit.ModeBestEffort,
			CommitConcurrency: 8,
			WriteTimeout:      5 * time.Second,
		},
		Notifications: NotificationsConfig{Enabled: &enabled},
	}
}

package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads, validates, and returns ready-to-use configuration.
//
// Steps performed:
//  1. Read runsheet.yaml from configDir (absent file means built-in defaults)
//  2. Expand {{.ENV}} references
//  3. Parse YAML
//  4. Merge the file over the built-in defaults
//  5. Validate
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"store", cfg.Store.Driver,
		"commit_mode", cfg.Live.CommitMode,
		"http_addr", cfg.Server.HTTPAddr,
		"grpc_addr", cfg.Server.GRPCAddr,
		"notifications", cfg.Notifications.IsEnabled())

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	cfg := Default()
	cfg.configDir = configDir

	path := filepath.Join(configDir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Info("No configuration file found, using defaults", "path", path)
		return cfg, nil
	case err != nil:
		return nil, &LoadError{Path: path, Err: err}
	}

	var file Config
	if err := yaml.Unmarshal(ExpandEnv(data), &file); err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w: %v", ErrInvalidYAML, err)}
	}

	// Non-zero values from the file override the defaults.
	if err := mergo.Merge(cfg, file, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	return cfg, nil
}

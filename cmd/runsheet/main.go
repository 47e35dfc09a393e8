// runsheet server: HTTP API, gRPC live control and WebSocket change
// notifications for event timelines.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/codeready-toolchain/runsheet/pkg/api"
	"github.com/codeready-toolchain/runsheet/pkg/commit"
	"github.com/codeready-toolchain/runsheet/pkg/config"
	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/pkg/events"
	"github.com/codeready-toolchain/runsheet/pkg/metrics"
	"github.com/codeready-toolchain/runsheet/pkg/models"
	"github.com/codeready-toolchain/runsheet/pkg/rpc"
	"github.com/codeready-toolchain/runsheet/pkg/services"
	"github.com/codeready-toolchain/runsheet/pkg/store"
	"github.com/codeready-toolchain/runsheet/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}
	slog.SetLogLoggerLevel(logLevel(os.Getenv("LOG_LEVEL")))

	slog.Info("Starting runsheet", "version", version.Full(), "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Store (and database for the postgres driver)
	st, dbClient, dbConfig, err := openStore(ctx, cfg.Store)
	if err != nil {
		slog.Error("Failed to open store", "driver", cfg.Store.Driver, "error", err)
		os.Exit(1)
	}
	// Closing the postgres store closes the database client's pool.
	defer func() {
		if err := st.Close(); err != nil {
			slog.Error("Error closing store", "error", err)
		}
	}()

	// 3. Commit layer and services
	m := metrics.New()
	applier, err := commit.NewApplier(st, cfg.Live.CommitConfig(), m)
	if err != nil {
		slog.Error("Failed to create commit applier", "error", err)
		os.Exit(1)
	}

	// The live service is the snapshot source for new subscribers, and it
	// publishes through the manager, so the manager resolves it lazily.
	var liveService *services.LiveService
	var connManager *events.ConnectionManager
	var publisher events.Publisher = events.NopPublisher{}

	if cfg.Notifications.IsEnabled() {
		connManager = events.NewConnectionManager(events.SnapshotFunc(
			func(ctx context.Context, eventID string) (*models.LiveBoard, error) {
				return liveService.Snapshot(ctx, eventID)
			}), 10*time.Second)

		if dbClient != nil {
			publisher = events.NewEventPublisher(dbClient.DB())

			// Dedicated pgx connection for LISTEN
			notifyListener := events.NewNotifyListener(dbConfig.DSN(), connManager)
			if err := notifyListener.Start(ctx); err != nil {
				slog.Error("Failed to start NotifyListener", "error", err)
				os.Exit(1)
			}
			defer notifyListener.Stop(ctx)
			connManager.SetListener(notifyListener)
		} else {
			publisher = events.NewLocalPublisher(connManager)
		}
		slog.Info("Change notifications enabled", "store", cfg.Store.Driver)
	}

	eventService := services.NewEventService(st, publisher, m)
	timelineService := services.NewTimelineService(st, publisher)
	liveService = services.NewLiveService(st, applier, publisher, m)
	slog.Info("Services initialized", "commit_mode", cfg.Live.CommitMode)

	// 4. HTTP server
	httpServer := api.NewServer(eventService, timelineService, liveService)
	httpServer.SetMetrics(m)
	httpServer.SetStoreDriver(string(cfg.Store.Driver))
	httpServer.SetReadHeaderTimeout(cfg.Server.ReadHeaderTimeout)
	if connManager != nil {
		httpServer.SetConnectionManager(connManager)
	}
	if dbClient != nil {
		httpServer.SetDatabase(dbClient)
	}

	errCh := make(chan error, 2)
	go func() {
		if err := httpServer.Start(cfg.Server.HTTPAddr); err != nil {
			errCh <- err
		}
	}()

	// 5. gRPC server (optional)
	grpcServer, grpcHealth := rpc.NewGRPCServer(rpc.NewServer(liveService, eventService))
	if cfg.Server.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
		if err != nil {
			slog.Error("Failed to listen for gRPC", "addr", cfg.Server.GRPCAddr, "error", err)
			os.Exit(1)
		}
		go func() {
			slog.Info("gRPC server listening", "addr", lis.Addr().String())
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc server failed: %w", err)
			}
		}()
	}

	slog.Info("runsheet started successfully",
		"http_addr", cfg.Server.HTTPAddr,
		"grpc_addr", cfg.Server.GRPCAddr,
		"store", cfg.Store.Driver)

	// 6. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	grpcHealth.Shutdown()
	grpcDone := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(grpcDone)
	}()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	select {
	case <-grpcDone:
	case <-shutdownCtx.Done():
		slog.Warn("gRPC shutdown timeout exceeded, closing connections")
		grpcServer.Stop()
	}

	slog.Info("Shutdown complete")
}

// openStore builds the configured store. For postgres it also returns the
// database client and its settings, which notifications reuse.
func openStore(ctx context.Context, cfg config.StoreConfig) (store.Store, *database.Client, database.Config, error) {
	switch cfg.Driver {
	case store.DriverMemory:
		slog.Warn("Using in-memory store, data is lost on restart")
		return store.NewMemoryStore(), nil, database.Config{}, nil

	case store.DriverDisk:
		ds, err := store.NewDiskStore(cfg.DiskPath)
		if err != nil {
			return nil, nil, database.Config{}, err
		}
		slog.Info("Using disk store", "path", cfg.DiskPath)
		return ds, nil, database.Config{}, nil

	case store.DriverPostgres:
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			return nil, nil, database.Config{}, fmt.Errorf("failed to load database config: %w", err)
		}
		dbClient, err := database.NewClient(ctx, dbConfig)
		if err != nil {
			return nil, nil, database.Config{}, fmt.Errorf("failed to connect to database: %w", err)
		}
		slog.Info("Connected to PostgreSQL database", "host", dbConfig.Host, "database", dbConfig.Database)
		return store.NewPostgresStore(dbClient.Client), dbClient, dbConfig, nil
	}
	return nil, nil, database.Config{}, errors.New("unknown store driver " + string(cfg.Driver))
}

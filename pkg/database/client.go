// Package database opens the PostgreSQL pool used by the postgres store and
// applies the embedded schema migrations.
package database

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"log/slog"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/codeready-toolchain/runsheet/ent"
)

// Config holds connection and pool settings, usually from LoadConfigFromEnv.
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Client wraps the ent client and keeps the pool it runs on for health
// checks, NOTIFY and migrations.
type Client struct {
	*ent.Client
	db *stdsql.DB
}

// NewClient opens a pool, checks connectivity and migrates the schema to the
// latest embedded version.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	db, err := stdsql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	cfg.applyPool(db)

	if err := prepare(ctx, db, cfg.Database); err != nil {
		_ = db.Close()
		return nil, err
	}
	slog.Info("Connected to PostgreSQL",
		"host", cfg.Host, "database", cfg.Database, "max_open_conns", cfg.MaxOpenConns)
	return NewClientFromDB(db), nil
}

func prepare(ctx context.Context, db *stdsql.DB, name string) error {
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	if err := RunMigrations(db, name); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (c Config) applyPool(db *stdsql.DB) {
	db.SetMaxOpenConns(c.MaxOpenConns)
	db.SetMaxIdleConns(c.MaxIdleConns)
	db.SetConnMaxLifetime(c.ConnMaxLifetime)
	db.SetConnMaxIdleTime(c.ConnMaxIdleTime)
}

// NewClientFromDB wraps a pool that is already migrated, as in tests.
func NewClientFromDB(db *stdsql.DB) *Client {
	drv := entsql.OpenDB(dialect.Postgres, db)
	return &Client{
		Client: ent.NewClient(ent.Driver(drv)),
		db:     db,
	}
}

// DB returns the pool.
func (c *Client) DB() *stdsql.DB { return c.db }

// Close closes the ent client and with it the pool.
func (c *Client) Close() error { return c.Client.Close() }

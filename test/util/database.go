// Package util provides PostgreSQL helpers shared by the database-backed tests.
package util

import (
	"context"
	stdsql "database/sql"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const postgresImage = "postgres:17-alpine"

// shared is the one PostgreSQL server used by every test in a package.
var shared struct {
	once    sync.Once
	connStr string
	err     error
}

// SetupTestDatabase creates a schema private to t and returns a pool whose
// search_path points at it. The pool is closed and the schema dropped when
// the test finishes. Migrations are left to the caller.
//
// CI_DATABASE_URL selects an external server; otherwise a testcontainer is
// started once per package, and the test is skipped without a container runtime.
func SetupTestDatabase(t *testing.T) *stdsql.DB {
	t.Helper()
	base := GetBaseConnectionString(t)
	schema := CreateSchema(t, base)

	db, err := stdsql.Open("pgx", AddSearchPathToConnString(base, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// CreateSchema creates a uniquely named schema on the server at connStr and
// drops it with everything in it when the test ends. Cleanups run in reverse
// order, so pools opened after this call are closed before the drop.
func CreateSchema(t *testing.T, connStr string) string {
	t.Helper()
	schema := GenerateSchemaName(t)
	execOnce(t, connStr, "CREATE SCHEMA "+schema)
	t.Logf("Created test schema: %s", schema)

	t.Cleanup(func() {
		db, err := stdsql.Open("pgx", connStr)
		if err != nil {
			t.Logf("Warning: failed to connect to drop schema %s: %v", schema, err)
			return
		}
		defer func() { _ = db.Close() }()
		if _, err := db.ExecContext(context.Background(), "DROP SCHEMA IF EXISTS "+schema+" CASCADE"); err != nil {
			t.Logf("Warning: failed to drop schema %s: %v", schema, err)
		}
	})
	return schema
}

// GetBaseConnectionString returns the server connection string without a
// search_path. NOTIFY/LISTEN channels are database-wide, so the listener's
// dedicated pgx connection uses it.
func GetBaseConnectionString(t *testing.T) string {
	t.Helper()
	if ci := os.Getenv("CI_DATABASE_URL"); ci != "" {
		return ci
	}

	testcontainers.SkipIfProviderIsNotHealthy(t)
	shared.once.Do(func() {
		shared.connStr, shared.err = startContainer(context.Background())
	})
	require.NoError(t, shared.err, "failed to start the shared postgres container")
	return shared.connStr
}

func startContainer(ctx context.Context) (string, error) {
	c, err := postgres.Run(ctx, postgresImage,
		postgres.WithDatabase("runsheet"),
		postgres.WithUsername("runsheet"),
		postgres.WithPassword("runsheet"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return "", fmt.Errorf("failed to start postgres container: %w", err)
	}
	connStr, err := c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return "", fmt.Errorf("failed to get connection string: %w", err)
	}
	return connStr, nil
}

func execOnce(t *testing.T, connStr, stmt string) {
	t.Helper()
	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()
	_, err = db.ExecContext(context.Background(), stmt)
	require.NoError(t, err)
}

var nonIdent = regexp.MustCompile(`[^a-z0-9]+`)

// GenerateSchemaName returns a unique schema name derived from the test name,
// short enough for PostgreSQL's 63 byte identifier limit.
func GenerateSchemaName(t *testing.T) string {
	name := nonIdent.ReplaceAllString(strings.ToLower(t.Name()), "_")
	if len(name) > 40 {
		name = name[:40]
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return "test_" + name + "_" + suffix
}

// AddSearchPathToConnString sets search_path on a connection URL so every
// pooled connection resolves tables in schema.
func AddSearchPathToConnString(connStr, schema string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		sep := "?"
		if strings.Contains(connStr, "?") {
			sep = "&"
		}
		return connStr + sep + "search_path=" + schema
	}
	q := u.Query()
	q.Set("search_path", schema)
	u.RawQuery = q.Encode()
	return u.String()
}

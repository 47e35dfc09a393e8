// Package database provides migrated PostgreSQL clients for tests.
package database

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/test/util"
)

// NewTestClient creates a test database client with all migrations applied.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: uses a shared PostgreSQL testcontainer.
// Cleanup (schema drop and connection close) is handled by util.SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	db := util.SetupTestDatabase(t)

	err := database.RunMigrations(db, "test")
	require.NoError(t, err)

	return database.NewClientFromDB(db)
}

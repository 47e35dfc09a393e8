package database

import (
	stdsql "database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/runsheet/pkg/database"
	"github.com/codeready-toolchain/runsheet/test/util"
)

// SharedTestDB is one migrated schema used by several server instances in
// a test, each through its own pool, so NOTIFY/LISTEN delivery between
// instances can be exercised.
type SharedTestDB struct {
	baseConnStr string
	schema      string
}

// NewSharedTestDB creates and migrates the shared schema. It is dropped when
// the test ends, after every pool from NewClient has been closed.
func NewSharedTestDB(t *testing.T) *SharedTestDB {
	t.Helper()
	s := &SharedTestDB{baseConnStr: util.GetBaseConnectionString(t)}
	s.schema = util.CreateSchema(t, s.baseConnStr)

	db := s.open(t)
	require.NoError(t, database.RunMigrations(db, "test"))
	return s
}

// NewClient returns a client with a fresh pool on the shared schema.
func (s *SharedTestDB) NewClient(t *testing.T) *database.Client {
	t.Helper()
	return database.NewClientFromDB(s.open(t))
}

func (s *SharedTestDB) open(t *testing.T) *stdsql.DB {
	db, err := stdsql.Open("pgx", util.AddSearchPathToConnString(s.baseConnStr, s.schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// BaseConnString returns the connection string without a search_path.
// NOTIFY/LISTEN channels are database-wide, so listeners connect with it.
func (s *SharedTestDB) BaseConnString() string {
	return s.baseConnStr
}

// SchemaName returns the name of the shared schema.
func (s *SharedTestDB) SchemaName() string {
	return s.schema
}

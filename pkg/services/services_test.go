package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/swarmlet/swarmlet/ent"
)

// newTestClient opens a file-backed sqlite database in the test's temp
// dir and migrates the schema.
func newTestClient(t *testing.T) *ent.Client {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "services.db")+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	// modernc sqlite serializes writes; a single connection avoids
	// SQLITE_BUSY under concurrent test goroutines.
	db.SetMaxOpenConns(1)

	client := ent.NewClient(ent.Driver(entsql.OpenDB(dialect.SQLite, db)))
	require.NoError(t, client.Schema.Create(context.Background()))

	t.Cleanup(func() { _ = client.Close() })
	return client
}

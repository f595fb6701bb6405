// Package testdb opens throwaway SQLite databases carrying the service schema.
package testdb

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"starwars-api/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/require"
)

// New opens a file-backed SQLite database in a temporary directory with
// the service's SQLite options and applies the SQLite migrations in file name order.
// The database is closed when the test ends.
func New(tb testing.TB) *sqlx.DB {
	tb.Helper()

	dsn := filepath.Join(tb.TempDir(), "starwars_test.db") + "?" + config.SQLiteOptions
	db, err := sqlx.Connect("sqlite3", dsn)
	require.NoError(tb, err, "Failed to open test database")
	tb.Cleanup(func() {
		if err := db.Close(); err != nil {
			tb.Logf("Error closing test database: %v", err)
		}
	})

	files, err := filepath.Glob(filepath.Join(migrationsDir(tb), "*.sql"))
	require.NoError(tb, err)
	require.NotEmpty(tb, files, "No migrations found")
	sort.Strings(files)

	for _, file := range files {
		stmts, err := os.ReadFile(file)
		require.NoError(tb, err)
		_, err = db.Exec(string(stmts))
		require.NoError(tb, err, "Failed to apply migration %s", filepath.Base(file))
	}
	return db
}

// migrationsDir locates database/migrations/sqlite3 relative to this file,
// so tests find it regardless of the package they run from.
func migrationsDir(tb testing.TB) string {
	_, file, _, ok := runtime.Caller(0)
	require.True(tb, ok, "Failed to locate testdb source")
	return filepath.Join(filepath.Dir(file), "..", "..", "database", "migrations", "sqlite3")
}

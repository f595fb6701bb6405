package database

import (
	"os"
	"path/filepath"
	"testing"

	"starwars-api/config"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbConn, err := sqlx.Connect(config.DriverSQLite, filepath.Join(t.TempDir(), "runner.db")+"?"+config.SQLiteOptions)
	require.NoError(t, err)
	defer dbConn.Close()

	dir := filepath.Join("migrations", "sqlite3")
	require.NoError(t, runMigrations(dbConn, dir))
	require.NoError(t, runMigrations(dbConn, dir))

	var versions []string
	require.NoError(t, dbConn.Select(&versions, "SELECT version FROM schema_migrations ORDER BY version"))
	assert.Equal(t, []string{
		"20260301100000_create_users",
		"20260301100100_create_planets",
		"20260301100200_create_people",
		"20260301100300_create_favorites",
	}, versions)
}

func TestMigrationFilesOrderAndNaming(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"20260102000000_second.sql", "20260101000000_first.sql", "README.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644))
	}

	files, err := migrationFiles(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "20260101000000_first.sql"),
		filepath.Join(dir, "20260102000000_second.sql"),
	}, files)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "add-users.sql"), []byte("SELECT 1;"), 0o644))
	_, err = migrationFiles(dir)
	assert.True(t, errors.Is(err, errors.NotValid))
}

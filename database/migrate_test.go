package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"starwars-api/config"
	"starwars-api/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/umakantv/go-utils/logger"
)

func TestMain(m *testing.M) {
	logger.Init(logger.LoggerConfig{
		CallerKey:  "file",
		TimeKey:    "timestamp",
		CallerSkip: 1,
	})
	os.Exit(m.Run())
}

func TestConnectAndMigrateTwice(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "starwars.db"))
	t.Setenv("MIGRATIONS_DIR", filepath.Join("migrations", "sqlite3"))

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	require.Equal(t, config.DriverSQLite, cfg.Driver)

	dbConn, err := database.Connect(cfg)
	require.NoError(t, err)
	defer dbConn.Close()

	require.NoError(t, database.Migrate(dbConn, cfg.MigrationsDir))
	require.NoError(t, database.Migrate(dbConn, cfg.MigrationsDir))

	var applied int
	require.NoError(t, dbConn.Get(&applied, "SELECT COUNT(*) FROM schema_migrations"))
	assert.Equal(t, 4, applied)

	for _, table := range []string{"users", "planets", "people", "favorites"} {
		var n int
		assert.NoError(t, dbConn.Get(&n, "SELECT COUNT(*) FROM "+table), table)
	}
}

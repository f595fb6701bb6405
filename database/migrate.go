package database

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"starwars-api/config"

	"github.com/jmoiron/sqlx"
	"github.com/juju/errors"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// Same naming rule as the go-utils runner: <14 digit UTC timestamp>_<name>.sql
var migrationFileRe = regexp.MustCompile(`^\d{14}_[a-zA-Z0-9_]+\.sql$`)

// Migrate applies the pending migrations in dir and records them in
// schema_migrations. SQLite goes through the go-utils runner. Other drivers
// use runMigrations, whose bookkeeping queries are rebound to the driver's
// placeholder style.
func Migrate(dbConn *sqlx.DB, dir string) error {
	if dbConn.DriverName() == config.DriverSQLite {
		return errors.Trace(migrations.Migrate(dbConn, dir))
	}
	return runMigrations(dbConn, dir)
}

func runMigrations(dbConn *sqlx.DB, dir string) error {
	_, err := dbConn.Exec(`CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
)`)
	if err != nil {
		return errors.Annotate(err, "creating schema_migrations")
	}

	files, err := migrationFiles(dir)
	if err != nil {
		return errors.Trace(err)
	}

	for _, file := range files {
		if err := applyMigration(dbConn, file); err != nil {
			return errors.Annotatef(err, "running migration %s", filepath.Base(file))
		}
	}

	logger.Info("All migrations completed successfully", zap.Int("files", len(files)))
	return nil
}

func migrationFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Annotatef(err, "reading migrations dir %s", dir)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		if !migrationFileRe.MatchString(entry.Name()) {
			return nil, errors.NotValidf("migration file name %q", entry.Name())
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

func applyMigration(dbConn *sqlx.DB, file string) error {
	version := strings.TrimSuffix(filepath.Base(file), ".sql")

	var applied bool
	err := dbConn.Get(&applied, dbConn.Rebind("SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = ?)"), version)
	if err != nil {
		return errors.Annotate(err, "checking schema_migrations")
	}
	if applied {
		logger.Debug("Migration already applied, skipping", zap.String("version", version))
		return nil
	}

	content, err := os.ReadFile(file)
	if err != nil {
		return errors.Trace(err)
	}

	logger.Info("Running migration", zap.String("version", version))
	tx, err := dbConn.Beginx()
	if err != nil {
		return errors.Trace(err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(string(content)); err != nil {
		return errors.Trace(err)
	}
	if _, err := tx.Exec(tx.Rebind("INSERT INTO schema_migrations (version) VALUES (?)"), version); err != nil {
		return errors.Annotate(err, "recording migration")
	}
	return errors.Trace(tx.Commit())
}

package database

import (
	"os"

	"starwars-api/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/umakantv/go-utils/db"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

// InitializeDatabase opens the configured database and applies pending
// migrations. It exits the process when either step fails.
func InitializeDatabase(cfg *config.Config) *sqlx.DB {
	dbConn, err := Connect(cfg)
	if err != nil {
		logger.Error("Error while connecting to database", zap.String("driver", cfg.Driver), zap.Error(err))
		os.Exit(1)
	}

	if err := Migrate(dbConn, cfg.MigrationsDir); err != nil {
		logger.Error("Error while running migration", zap.String("dir", cfg.MigrationsDir), zap.Error(err))
		os.Exit(1)
	}

	logger.Info("Database initialized successfully", zap.String("driver", cfg.Driver))
	return dbConn
}

// Connect opens a connection pool for the configured driver
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	if cfg.Driver == config.DriverPostgres {
		return sqlx.Connect(cfg.Driver, cfg.DSN)
	}

	dbConn := db.GetDBConnection(db.DatabaseConfig{
		DRIVER: cfg.Driver,
		DB:     cfg.DSN,
	})
	return dbConn, nil
}

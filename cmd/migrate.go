package cmd

import (
	"starwars-api/config"
	"starwars-api/database"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/db/migrations"
	"github.com/umakantv/go-utils/logger"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return errors.Annotate(err, "loading configuration")
		}
		dbConn := database.InitializeDatabase(cfg)
		defer dbConn.Close()
		logger.Info("Migrations applied")
		return nil
	},
}

var (
	migrationName string
	migrationDir  string
)

var createMigrationCmd = &cobra.Command{
	Use:   "create-migration",
	Short: "Create an empty timestamped .sql migration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if migrationName == "" {
			return errors.NotValidf("empty --name")
		}
		migrations.CreateMigration(&migrationName, &migrationDir)
		return nil
	},
}

func init() {
	createMigrationCmd.Flags().StringVar(&migrationName, "name", "", "Migration name (alphanum+underscore only)")
	createMigrationCmd.Flags().StringVar(&migrationDir, "dir", "./database/migrations/sqlite3", "Target directory for the new .sql file")
}

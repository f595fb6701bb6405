package cmd

import (
	"os"

	"starwars-api/config"
	"starwars-api/database"
	"starwars-api/store"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/umakantv/go-utils/logger"
	"go.uber.org/zap"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load planets and people into the database",
	Long: "Load planets and their residents from a YAML file, or from the bundled " +
		"catalogue when --file is not given. Planets that already exist are skipped.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return errors.Annotate(err, "loading configuration")
		}

		data := database.DefaultSeed()
		if seedFile != "" {
			if data, err = os.ReadFile(seedFile); err != nil {
				return errors.Annotatef(err, "reading %s", seedFile)
			}
		}

		dbConn := database.InitializeDatabase(cfg)
		defer dbConn.Close()

		result, err := database.Seed(cmd.Context(), store.New(dbConn), data)
		if err != nil {
			return errors.Annotate(err, "seeding database")
		}

		logger.Info("Database seeded", zap.Int("planets", result.Planets), zap.Int("people", result.People))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVar(&seedFile, "file", "", "YAML file with planets and residents")
}

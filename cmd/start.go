package cmd

import (
	"starwars-api/config"
	"starwars-api/server"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Run database migrations and serve the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cmd.Flags())
		if err != nil {
			return errors.Annotate(err, "loading configuration")
		}
		server.StartServer(cfg)
		return nil
	},
}

func init() {
	startCmd.Flags().String("port", "", "port to listen on (overrides PORT)")
}

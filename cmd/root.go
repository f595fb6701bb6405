// Package cmd holds the command line interface of the service.
package cmd

import (
	"context"
	"fmt"
	"os"

	"starwars-api/server"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "starwars-api",
	Short: "REST API over users, people, planets and favorites",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		server.InitLogger()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(startCmd, migrateCmd, createMigrationCmd, seedCmd)
}

// Execute runs the command named on the command line
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var databaseURL string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "topoctl",
	Short: "Inspect and export topochat sessions",
	Long: `topoctl works directly against the topochat database.

Commands:
  topoctl list                     # List sessions with their topology
  topoctl export <session-id>      # Export a session (json, yaml, md)`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database", "file:topochat.db?cache=shared&mode=rwc", "Database DSN")
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
}

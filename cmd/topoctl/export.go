package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"topochat/internal/export"
	store "topochat/internal/repository"
	"topochat/internal/topology"
)

var (
	format     string
	outputPath string
	modelName  string
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export <session-id>",
	Short: "Export a session to file",
	Long: `Export a session as json, yaml or md.

The json format is the canonical export document; yaml and md are
presentation projections of it. Use 'topoctl list' to see session IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sessionID := args[0]

		db, err := store.NewSQLiteStore(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		ctx := context.Background()
		session, err := db.GetSession(ctx, sessionID)
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}
		if session == nil {
			return fmt.Errorf("session %s not found", sessionID)
		}

		messages, err := db.GetMessages(ctx, sessionID, 0, "")
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		doc := export.Build(session, messages, topology.Classify(messages), modelName)

		exporter, err := export.NewExporter(format)
		if err != nil {
			return err
		}

		out := os.Stdout
		if outputPath != "" {
			f, err := os.Create(outputPath)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer f.Close()
			out = f
		}

		if err := exporter.Export(doc, out); err != nil {
			return fmt.Errorf("export failed: %w", err)
		}
		if outputPath != "" {
			fmt.Fprintf(os.Stderr, "Exported session %s to %s\n", sessionID, outputPath)
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&format, "format", "f", "json", "Export format: json, yaml, md")
	exportCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: stdout)")
	exportCmd.Flags().StringVar(&modelName, "model", "gpt-4o-mini", "Model identifier recorded in the export metadata")
}

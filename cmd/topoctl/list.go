package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	store "topochat/internal/repository"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	idStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	patternStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).
			Bold(true)

	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions with their topology",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.NewSQLiteStore(databaseURL)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		sessions, err := db.ListSessions(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		for _, session := range sessions {
			title := session.Title
			if title == "" {
				title = "(untitled)"
			}
			pattern := "s0={}"
			complexity := "empty"
			if session.Topology != nil {
				pattern = session.Topology.Pattern
				complexity = string(session.Topology.Complexity)
			}
			fmt.Printf("%s %s\n", titleStyle.Render(title), idStyle.Render(session.SessionID))
			fmt.Printf("  %s %s  %s\n",
				patternStyle.Render(pattern),
				complexity,
				dateStyle.Render(session.UpdatedAt.Format("2006-01-02 15:04")))
		}
		return nil
	},
}

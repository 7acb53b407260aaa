package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rchau/learnloop/internal/app"
	"github.com/rchau/learnloop/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learnloop",
	Short: "Terminal practice app for your weakest topics",
	Long: "LearnLoop — a terminal app that tracks your weak knowledge points,\n" +
		"generates targeted practice sessions, and charts your progress.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNLOOP_DB env var)")

	rootCmd.AddCommand(graphCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(libraryCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(st)
}

// openStore resolves the DB path and opens the store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then LEARNLOOP_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

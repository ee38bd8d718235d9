package cmd

import (
	"context"

	"github.com/signaura/signaura/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "signaura",
	Short: "Learn sign language in the terminal or the browser",
	Long:  "Signaura - flashcard lessons, a sign translator, an AI learning assistant and a sign dictionary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite activity log (overrides SIGNAURA_DB env var)")
	rootCmd.PersistentFlags().Bool("no-record", false, "Do not write the activity log")
	rootCmd.Flags().String("log-file", "", "Write logs to this file while the terminal app runs")
	playCmd.Flags().String("log-file", "", "Write logs to this file while the terminal app runs")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SIGNAURA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

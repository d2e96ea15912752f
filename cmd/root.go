package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dsengupta/mindprobe/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mindprobe",
	Short: "Terminal personality assessment console",
	Long:  "MindProbe — a terminal console that runs AI-driven personality assessments and files the resulting dossiers.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Best-effort: API keys may live in a local .env file.
		_ = godotenv.Load()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDPROBE_DB env var)")

	rootCmd.AddCommand(rosterCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MINDPROBE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"github.com/abhisek/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "quizkit",
	Short: "Terminal quiz game",
	Long:  "QuizKit is a terminal quiz app with shuffled questions, instant feedback, and shareable results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("stage")
		return runApp(cmd, start)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("data", "data", "Directory containing stage JSON files")
	rootCmd.PersistentFlags().String("url", "", "Base URL for remote stage files (overrides --data)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QUIZKIT_DB env var)")
	rootCmd.Flags().String("stage", "", "Start this stage directly, skipping the menu")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(stagesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then QUIZKIT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

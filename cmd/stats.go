package cmd

import (
	"fmt"

	"github.com/abhisek/quizkit/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		attempts, err := st.Attempts().Recent(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No attempts yet. Play a quiz first!")
			return nil
		}

		for _, a := range attempts {
			fmt.Printf("%s  %-20s  %3d%%  (%d/%d)  %s %s\n",
				a.CompletedAt.Local().Format("2006-01-02 15:04"),
				a.StageID, a.Percentage, a.TotalCorrect, a.TotalQuestions,
				a.TierEmoji, a.TierName)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 20, "Maximum number of attempts to show")
}

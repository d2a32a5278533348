package cmd

import (
	"fmt"

	"github.com/abhisek/quizkit/internal/stage"
	"github.com/spf13/cobra"
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List available stages and validate their files",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, _ := cmd.Flags().GetString("data")
		fl := stage.NewFileLoader(dir)
		ids, err := fl.StageIDs()
		if err != nil {
			return fmt.Errorf("list stages in %q: %w", dir, err)
		}
		if len(ids) == 0 {
			fmt.Println("No stages found in", dir)
			return nil
		}

		var bad int
		for _, id := range ids {
			st, err := fl.Load(cmd.Context(), id)
			if err != nil {
				bad++
				fmt.Printf("✗ %s: %v\n", id, err)
				continue
			}
			fmt.Printf("✓ %s: %d questions, %d categories\n",
				id, len(st.Questions), len(st.Categories))
		}
		if bad > 0 {
			return fmt.Errorf("%d stage(s) failed validation", bad)
		}
		return nil
	},
}

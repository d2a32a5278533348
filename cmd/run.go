package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/quizkit/internal/app"
	"github.com/abhisek/quizkit/internal/stage"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/spf13/cobra"
)

// buildLoader constructs the stage loader from flags. Remote URL wins
// over the local data directory. Either way the result is wrapped in a
// process-lifetime cache so a stage is fetched once.
func buildLoader(cmd *cobra.Command) (stage.Loader, []string, error) {
	if url, _ := cmd.Flags().GetString("url"); url != "" {
		// Remote catalogs can't be enumerated; stages are chosen via
		// the play command's argument.
		return stage.NewCachedLoader(stage.NewHTTPLoader(url, nil)), nil, nil
	}

	dir, _ := cmd.Flags().GetString("data")
	fl := stage.NewFileLoader(dir)
	ids, err := fl.StageIDs()
	if err != nil {
		return nil, nil, fmt.Errorf("list stages in %q: %w", dir, err)
	}
	return stage.NewCachedLoader(fl), ids, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
// startStage, when non-empty, skips the landing menu.
func runApp(cmd *cobra.Command, startStage string) error {
	loader, ids, err := buildLoader(cmd)
	if err != nil {
		return err
	}
	if startStage == "" && len(ids) == 0 {
		return fmt.Errorf("no stages found; use --data or --url, or pass a stage to play")
	}

	opts := app.Options{
		Loader:     loader,
		StageIDs:   ids,
		StartStage: startStage,
	}

	// History is best-effort; the quiz runs without it.
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "History disabled:", err)
	} else {
		st, err := store.Open(dbPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "History disabled:", err)
		} else {
			defer st.Close()
			opts.Attempts = st.Attempts()
		}
	}

	return app.Run(opts)
}

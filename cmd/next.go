package cmd

import (
	"context"
	"fmt"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

var nextCmd = &cobra.Command{
	Use:   "next <project-id>",
	Short: "Show which concepts are unlocked for study",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.ProjectRepo()
		resolver := graph.NewResolver(repo)

		next, err := resolver.NextNodes(ctx, args[0])
		if err != nil {
			return err
		}
		progress, err := resolver.Progress(ctx, args[0])
		if err != nil {
			return err
		}

		if len(next) == 0 {
			if progress.Total > 0 && progress.Mastered == progress.Total {
				fmt.Println("All concepts mastered. Nothing left to study.")
			} else {
				fmt.Println("No concepts unlocked. The remaining concepts sit on a prerequisite cycle.")
			}
			return nil
		}

		fmt.Println("Next up:")
		for i, n := range next {
			if i == 2 {
				fmt.Printf("  ... and %d more unlocked\n", len(next)-2)
				break
			}
			fmt.Printf("  ▸ %s  (%s)\n", n.Label, n.ID)
		}
		fmt.Printf("\nProgress: %d/%d concepts mastered (%d%%)\n",
			progress.Mastered, progress.Total, progress.Percent())
		return nil
	},
}

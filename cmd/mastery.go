package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

var masteryCmd = &cobra.Command{
	Use:   "mastery <project-id> <node-id> <score>",
	Short: "Record a mastery score for a concept (0.0 to 1.0)",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		score, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid score %q: %w", args[2], err)
		}

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

		if err := repo.UpdateMastery(ctx, args[0], args[1], score); err != nil {
			return err
		}

		if score >= graph.MasteryThreshold {
			fmt.Printf("Marked %s as mastered.\n", args[1])
		} else {
			fmt.Printf("Recorded mastery %.2f for %s.\n", score, args[1])
		}

		next, err := graph.NewResolver(repo).NextNodes(ctx, args[0])
		if err != nil {
			return err
		}
		if len(next) > 0 {
			fmt.Println("Now unlocked:")
			for i, n := range next {
				if i == 2 {
					fmt.Printf("  ... and %d more\n", len(next)-2)
					break
				}
				fmt.Printf("  ▸ %s  (%s)\n", n.Label, n.ID)
			}
		}
		return nil
	},
}

package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List learning projects",
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

		list, err := s.ProjectRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list projects: %w", err)
		}

		if len(list) == 0 {
			fmt.Println("No projects yet. Run `autodidact` to create one.")
			return nil
		}

		fmt.Printf("%-36s  %-40s  %-9s  %s\n", "ID", "Topic", "Progress", "Created")
		fmt.Println(strings.Repeat("─", 104))
		for _, p := range list {
			fmt.Printf("%-36s  %-40s  %3d/%-3d %2d%%  %s\n",
				p.ID, truncate(p.Topic, 40), p.Mastered, p.Total, p.Percent(),
				p.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

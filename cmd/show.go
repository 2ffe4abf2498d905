package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/autodidact/internal/graph"
	"github.com/abhisek/autodidact/internal/report"
	"github.com/abhisek/autodidact/internal/research"
	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <project-id> [node-id]",
	Short: "Show a project's concept graph and mastery, or one concept's learning objectives",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		showReport, _ := cmd.Flags().GetBool("report")

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

		p, err := repo.Get(ctx, args[0])
		if err != nil {
			return err
		}

		if len(args) == 2 {
			n, err := repo.GetNode(ctx, p.ID, args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Concept:  %s\n", n.Label)
			fmt.Printf("Mastery:  %.0f%%\n", n.Mastery*100)
			if n.Summary != "" {
				fmt.Printf("\n%s\n", n.Summary)
			}
			if len(n.Objectives) > 0 {
				fmt.Println("\nLearning objectives:")
				for _, o := range n.Objectives {
					fmt.Printf("  - %s\n", o)
				}
			}
			return nil
		}

		if showReport {
			markdown, err := (&report.Storage{}).Read(p.ReportPath)
			if err != nil {
				return fmt.Errorf("read report: %w", err)
			}
			fmt.Println(markdown)
			return nil
		}

		payload, err := repo.GraphPayload(ctx, p.ID)
		if err != nil {
			return err
		}
		mastery, err := repo.NodeMastery(ctx, p.ID)
		if err != nil {
			return err
		}
		next, err := graph.NewResolver(repo).NextNodes(ctx, p.ID)
		if err != nil {
			return err
		}
		eligible := make(map[string]bool, len(next))
		for _, n := range next {
			eligible[n.ID] = true
		}

		fmt.Printf("Topic:    %s\n", p.Topic)
		fmt.Printf("Created:  %s\n", p.CreatedAt.Local().Format("2006-01-02 15:04"))
		fmt.Printf("Report:   %s\n", p.ReportPath)
		fmt.Println()

		fmt.Printf("%-2s %-12s %-44s %s\n", "", "ID", "Concept", "Mastery")
		fmt.Println(strings.Repeat("─", 68))
		for _, n := range payload.Nodes {
			m := mastery[n.ID]
			glyph := "·"
			switch {
			case m >= graph.MasteryThreshold:
				glyph = "✓"
			case eligible[n.ID]:
				glyph = "▸"
			}
			fmt.Printf("%-2s %-12s %-44s %3.0f%%\n", glyph, n.ID, truncate(n.Label, 44), m*100)
		}

		if payload.HasCycle() {
			fmt.Println("\nWarning: the prerequisite graph contains a cycle; concepts on it stay locked.")
		}

		var footnotes []research.Footnote
		if err := json.Unmarshal([]byte(p.FootnotesJSON), &footnotes); err == nil && len(footnotes) > 0 {
			fmt.Println("\nSources:")
			for _, f := range footnotes {
				fmt.Printf("  [%d] %s <%s>\n", f.ID, f.Title, f.URL)
			}
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("report", false, "Print the research report markdown instead of the graph")
}

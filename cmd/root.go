package cmd

import (
	"github.com/abhisek/autodidact/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "autodidact",
	Short: "Deep-research learning engine",
	Long:  "Autodidact — turn any topic into a cited research report and a prerequisite-ordered study plan, then track mastery concept by concept.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AUTODIDACT_DB env var)")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(nextCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(masteryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then AUTODIDACT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

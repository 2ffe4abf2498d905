package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abhisek/autodidact/internal/report"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all projects, reports, and history",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("refusing to delete data without --force")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove database: %w", err)
		}
		// WAL sidecars are left behind by sqlite.
		_ = os.Remove(dbPath + "-wal")
		_ = os.Remove(dbPath + "-shm")

		root, err := report.DefaultRoot()
		if err != nil {
			return fmt.Errorf("resolve report root: %w", err)
		}
		if err := os.RemoveAll(filepath.Join(root, "projects")); err != nil {
			return fmt.Errorf("remove reports: %w", err)
		}

		fmt.Println("All learner data deleted.")
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("force", false, "Confirm deletion of all data")
}

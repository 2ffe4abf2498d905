package cmd

import (
	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Create a learning project (interactive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

package cmd

import (
	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/tui"
)

// tuiCmd launches the interactive document browser.
var tuiCmd = &cobra.Command{
	Use:   "tui <file>",
	Short: "Browse and edit a file interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		return tui.Run(args[0], document.NewOSStore())
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

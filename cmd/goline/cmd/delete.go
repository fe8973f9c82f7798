package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/editor"
	"goline/internal/span"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <file> <start> <end>",
	Short: "Delete an inclusive line range",
	Args:  cobra.ExactArgs(3),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	r, err := span.Parse(args[1], args[2])
	if err != nil {
		return err
	}

	rep, err := editor.New(document.NewOSStore(), os.Stdout).Apply(args[0], editor.Delete{Range: r})
	if err != nil {
		return err
	}
	return printReport(cmd, rep)
}

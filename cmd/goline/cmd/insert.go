package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/editor"
	"goline/internal/span"
)

var insertCmd = &cobra.Command{
	Use:   "insert <file> <after_line> [<text>]",
	Short: "Insert text after a given line",
	Long: `Insert splices the given text, split on newlines, after the named line.
After-line 0 places the text before the first line. When the text
argument is omitted it is read from stdin.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	after, err := span.ParseInsertPoint(args[1])
	if err != nil {
		return err
	}
	text, err := textArg(args, 2)
	if err != nil {
		return err
	}

	rep, err := editor.New(document.NewOSStore(), os.Stdout).Apply(args[0], editor.Insert{After: after, Text: text})
	if err != nil {
		return err
	}
	return printReport(cmd, rep)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/editor"
	"goline/internal/span"
)

var replaceCmd = &cobra.Command{
	Use:   "replace <file> <start> <end> [<text>]",
	Short: "Replace an inclusive line range with new text",
	Long: `Replace removes lines start through end and splices in the given text,
split on newlines. When the text argument is omitted it is read from
stdin. Empty text deletes the range.`,
	Args: cobra.RangeArgs(3, 4),
	RunE: runReplace,
}

func init() {
	rootCmd.AddCommand(replaceCmd)
}

func runReplace(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	r, err := span.Parse(args[1], args[2])
	if err != nil {
		return err
	}
	text, err := textArg(args, 3)
	if err != nil {
		return err
	}

	rep, err := editor.New(document.NewOSStore(), os.Stdout).Apply(args[0], editor.Replace{Range: r, Text: text})
	if err != nil {
		return err
	}
	return printReport(cmd, rep)
}

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/editor"
)

var appendCmd = &cobra.Command{
	Use:   "append <file> [<text>]",
	Short: "Append raw text to the end of a file",
	Long: `Append writes the given text verbatim to the end of the file, creating
it when absent. No line splitting happens: text without a leading newline
continues an unterminated final line. When the text argument is omitted
it is read from stdin.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runAppend,
}

func init() {
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	text, err := textArg(args, 1)
	if err != nil {
		return err
	}

	rep, err := editor.New(document.NewOSStore(), os.Stdout).Apply(args[0], editor.Append{Text: text})
	if err != nil {
		return err
	}
	return printReport(cmd, rep)
}

package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/editor"
	"goline/internal/span"
)

var showCmd = &cobra.Command{
	Use:   "show <file> [<start> [<end>]]",
	Short: "Print numbered lines from a file",
	Long: `Show prints lines with a right-aligned ordinal gutter. Start defaults to
the first line and end to the last; an end past the last line is clamped.
The file is never modified.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	var c editor.Show
	if len(args) > 1 {
		start, err := span.ParseLineNumber(args[1])
		if err != nil {
			return err
		}
		c.Start = start
	}
	if len(args) > 2 {
		end, err := span.ParseLineNumber(args[2])
		if err != nil {
			return err
		}
		c.End = end
	}

	asJSON, err := jsonOut(cmd)
	if err != nil {
		return err
	}
	out := io.Writer(os.Stdout)
	if asJSON {
		// The report carries the lines; suppress the gutter listing.
		out = io.Discard
	}

	rep, err := editor.New(document.NewOSStore(), out).Apply(args[0], c)
	if err != nil {
		return err
	}
	return printReport(cmd, rep)
}

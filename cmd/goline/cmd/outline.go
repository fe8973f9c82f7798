package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"goline/internal/document"
	"goline/internal/outline"
)

var headingLineColor = color.New(color.FgHiBlack)

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "List markdown headings with their line numbers",
	Long: `Outline scans a markdown file and prints each heading with the 1-based
line it starts on, indented by level. Use it to find the line numbers
for a subsequent edit.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	src, err := document.NewOSStore().ReadFile(args[0])
	if err != nil {
		return err
	}
	headings := outline.Scan(src)

	asJSON, err := jsonOut(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		if headings == nil {
			headings = []outline.Heading{}
		}
		return json.NewEncoder(os.Stdout).Encode(headings)
	}

	if len(headings) == 0 {
		fmt.Printf("no headings in %s\n", args[0])
		return nil
	}
	for _, h := range headings {
		indent := strings.Repeat("  ", h.Level-1)
		fmt.Printf("%s %s%s\n", headingLineColor.Sprintf("%4d:", h.Line), indent, h.Title)
	}
	return nil
}

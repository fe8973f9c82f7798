package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"goline/pkg/report"
)

var errColor = color.New(color.FgRed)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "goline",
	Short: "A line-addressed text editor for scripts and automation",
	Long: `goline applies one positional edit per invocation to a text file: show,
replace, insert, append or delete lines addressed by 1-based, inclusive
line numbers. Lines outside the edited range are preserved byte for byte.`,
	SilenceErrors: true, // Execute prints the error itself
	Args:          cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return errors.New("missing operation")
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		mode, err := cmd.Root().PersistentFlags().GetString("color")
		if err != nil {
			return err
		}
		return resolveColorMode(mode)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("json", false, "print the edit report as a JSON object")
}

// resolveColorMode sets the process-wide color switch. Auto means color
// only when stdout is a terminal; no environment variable is consulted.
func resolveColorMode(mode string) error {
	switch mode {
	case "auto":
		color.NoColor = !term.IsTerminal(int(os.Stdout.Fd()))
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", mode)
	}
	return nil
}

// jsonOut reports whether --json is set.
func jsonOut(cmd *cobra.Command) (bool, error) {
	return cmd.Root().PersistentFlags().GetBool("json")
}

// textArg returns the text argument at idx when present, otherwise it
// reads the whole of stdin as one block.
func textArg(args []string, idx int) (string, error) {
	if len(args) > idx {
		return args[idx], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// printReport writes rep to stdout: one JSON object when --json is set,
// the human summary otherwise. Show reports have no summary line; their
// output is the numbered lines themselves.
func printReport(cmd *cobra.Command, rep *report.Report) error {
	asJSON, err := jsonOut(cmd)
	if err != nil {
		return err
	}
	if asJSON {
		return json.NewEncoder(os.Stdout).Encode(rep)
	}
	if s := rep.String(); s != "" {
		fmt.Println(s)
	}
	return nil
}

// internal/cli/root.go
package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the filter command. difftint has no subcommands:
// the root command is the pipe itself.
func NewRootCmd() *cobra.Command {
	var interactive, syntax bool
	cmd := &cobra.Command{
		Use:   "difftint",
		Short: "Git diff filter",
		Long: "Reads diff or git-log output on stdin and writes an annotated,\n" +
			"colorized stream to stdout: reconstructed line numbers on hunk\n" +
			"headers, moved-line detection, and token-level change highlighting.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, off := os.LookupEnv("DIFFTINT_OFF")
			_, debug := os.LookupEnv("DIFFTINT_DEBUG")
			opts := Options{
				Interactive: interactive,
				Syntax:      syntax,
				PassThrough: off,
				Debug:       debug,
			}
			return runFilter(os.Stdin, os.Stdout, opts)
		},
	}
	cmd.Flags().BoolVar(&interactive, "interactive", false, "Accommodate git's interactive mode (one output line per input line)")
	cmd.Flags().BoolVar(&syntax, "syntax", false, "Syntax-highlight context lines")
	return cmd
}

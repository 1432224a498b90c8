// Package cli implements the ascii command-line interface.
//
// Every command reads a TOML scene file (see internal/scene), arranges it,
// and reports the result:
//   - arrange: print the geometry of every node as a table or a dump
//   - paint: draw the arranged tree as box-drawing text
//   - png: render the arranged tree to a PNG image
//   - version: print build information
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. Engine visit traces go to the file named
// by ASCII_DEBUG.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information shown by the version command.
// The main package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "ascii",
		Short:         "Arrange boxes on a character grid",
		Long:          `ascii lays out trees of boxes described in TOML scene files with a flexbox-style engine, and prints, paints or renders the result.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("ascii %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newArrangeCmd())
	root.AddCommand(newPaintCmd())
	root.AddCommand(newPNGCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ascii %s\n", version)
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
			}
		},
	}
}

// stdoutSize reports the terminal size of stdout, falling back to 80x24.
func stdoutSize() (width, height int) {
	w, h, err := terminalSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 80, 24
	}
	return w, h
}

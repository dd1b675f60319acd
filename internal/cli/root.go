package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awesomekyle/unit-test/internal/registry"
	"github.com/awesomekyle/unit-test/internal/suites"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Modules are the native test modules the commands register.
	Modules []registry.Module
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the unit CLI. With no
// modules the built-in self-test suites are used.
func NewRootCommand(modules ...registry.Module) *cobra.Command {
	if len(modules) == 0 {
		modules = suites.Modules
	}
	opts := &RootOptions{Modules: modules}

	cmd := &cobra.Command{
		Use:   "unit",
		Short: "unit - a minimal unit-test harness",
		Long: `A minimal unit-test harness for native Go tests and Lua scripts.

Native tests are registered in modules; Lua tests are global functions
whose names contain a marker such as "_Test", discovered in a directory
of .lua files. Both are counted through the same pass/fail/ignore rules.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Add subcommands
	cmd.AddCommand(NewTestCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

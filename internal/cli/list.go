package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/config"
	"github.com/awesomekyle/unit-test/internal/outcome"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	ConfigPath string
}

// ListedTest is one registered native test.
type ListedTest struct {
	Index   int    `json:"index"`
	Module  string `json:"module,omitempty"`
	Name    string `json:"name"`
	Ignored bool   `json:"ignored,omitempty"`
}

// ListResult is everything a test run would execute.
type ListResult struct {
	Tests   []ListedTest `json:"tests"`
	Scripts []string     `json:"scripts"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered tests and script files",
		Long: `List the native tests in registration order and the script files the
test command would load, without running anything.

Examples:
  unit list
  unit list --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a config file")

	return cmd
}

func runList(opts *ListOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	var (
		cfg config.Config
		err error
	)
	if opts.ConfigPath != "" {
		cfg, err = config.Load(opts.ConfigPath)
	} else {
		cfg, err = config.FindAndLoad(".")
	}
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}

	reg, err := newRegistry(cfg, opts.Modules)
	if err != nil {
		_ = formatter.Error(ErrCodeRegistry, err.Error(), nil)
		return WrapExitError(ExitCommandError, "registering tests", err)
	}

	result := ListResult{Tests: []ListedTest{}, Scripts: []string{}}
	for _, slot := range reg.Slots() {
		result.Tests = append(result.Tests, ListedTest{
			Index:   slot.Index,
			Module:  slot.Module,
			Name:    slot.Name,
			Ignored: slot.Ignored,
		})
	}

	if cfg.Scripts {
		logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
		tracker := outcome.NewTracker(nil)
		bridge := newBridge(cfg, check.New(tracker, nil), tracker, logger, nil)
		files, err := bridge.Discover()
		if err != nil {
			_ = formatter.Error(ErrCodeScripts, err.Error(), nil)
			return WrapExitError(ExitCommandError, "listing scripts", err)
		}
		result.Scripts = append(result.Scripts, files...)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	writeList(cmd.OutOrStdout(), result)
	return nil
}

func writeList(w io.Writer, result ListResult) {
	fmt.Fprintf(w, "Native tests (%d):\n", len(result.Tests))
	for _, t := range result.Tests {
		suffix := ""
		if t.Ignored {
			suffix = "  [ignored]"
		}
		fmt.Fprintf(w, "  %4d  %-12s %s%s\n", t.Index, t.Module, t.Name, suffix)
	}
	fmt.Fprintf(w, "Script files (%d):\n", len(result.Scripts))
	for _, path := range result.Scripts {
		fmt.Fprintf(w, "  %s\n", path)
	}
}

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/awesomekyle/unit-test/internal/config"
	"github.com/awesomekyle/unit-test/internal/registry"
)

// TestOptions holds flags for the test command.
type TestOptions struct {
	*RootOptions
	ConfigPath string  // explicit config file; otherwise looked up in the working directory
	Dir        string  // script directory override
	Epsilon    float64 // float tolerance override
	NoScripts  bool    // skip the script phase
}

// NewTestCommand creates the test command.
func NewTestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "test",
		Short: "Run every registered test and script",
		Long: `Run every native test in registration order, then every Lua test found
in the script directory, and print a summary.

Settings come from .unit.yaml, .unit.yml or unit.toml in the working
directory (or --config), overridden by flags.

Exit codes:
  0 - All tests passed or were ignored
  1 - One or more tests failed
  2 - Command error (invalid config, registry overflow, etc.)

Examples:
  unit test
  unit test --dir ./scripts
  unit test --epsilon 0.001 --no-scripts
  unit test --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTests(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to a config file")
	cmd.Flags().StringVar(&opts.Dir, "dir", "", "directory scanned for script tests")
	cmd.Flags().Float64Var(&opts.Epsilon, "epsilon", 0, "tolerance for float checks")
	cmd.Flags().BoolVar(&opts.NoScripts, "no-scripts", false, "run native tests only")

	return cmd
}

func runTests(opts *TestOptions, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	cfg, err := resolveConfig(opts, cmd)
	if err != nil {
		_ = formatter.Error(ErrCodeConfig, err.Error(), nil)
		return WrapExitError(ExitCommandError, "loading config", err)
	}
	if cfg.Path != "" {
		formatter.VerboseLog("config loaded from %s", cfg.Path)
	}

	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose)
	s, err := newSession(cfg, opts.Format, opts.Modules, cmd.OutOrStdout(), logger)
	if err != nil {
		var capErr *registry.CapacityError
		details := any(nil)
		if errors.As(err, &capErr) {
			details = map[string]any{"capacity": capErr.Capacity, "test": capErr.Name}
		}
		_ = formatter.Error(ErrCodeRegistry, err.Error(), details)
		return WrapExitError(ExitCommandError, "registering tests", err)
	}

	failed, err := s.run()
	if err != nil {
		return WrapExitError(ExitCommandError, "running tests", err)
	}
	if failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d tests failed", failed))
	}
	return nil
}

// resolveConfig layers the config file and the changed flags over the
// defaults and validates the result.
func resolveConfig(opts *TestOptions, cmd *cobra.Command) (config.Config, error) {
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
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("dir") {
		cfg.ScriptDir = opts.Dir
	}
	if flags.Changed("epsilon") {
		cfg.Epsilon = opts.Epsilon
	}
	if opts.NoScripts {
		cfg.Scripts = false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

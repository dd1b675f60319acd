package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awesomekyle/unit-test/internal/config"
	"github.com/awesomekyle/unit-test/internal/registry"
	"github.com/awesomekyle/unit-test/internal/suites"
)

// Main runs the CLI with the process's standard streams and the built-in
// suites. It returns the process exit status.
func Main(args []string) int {
	return Run(args, os.Stdout, os.Stderr, suites.Modules...)
}

// Run is Main with explicit streams and modules.
//
// When the activation token (config "token", default "-t") is among args,
// the tests run directly with the settings from the working directory's
// config file and the exit status is the failed count, capped at
// MaxExitStatus. Otherwise args are handled by the cobra commands.
func Run(args []string, stdout, stderr io.Writer, modules ...registry.Module) int {
	cfg, cfgErr := config.FindAndLoad(".")
	token := cfg.Token
	if token == "" {
		token = config.DefaultToken
	}

	if contains(args, token) {
		if cfgErr != nil {
			fmt.Fprintf(stderr, "Error: %v\n", cfgErr)
			return ExitCommandError
		}
		verbose := contains(args, "-v") || contains(args, "--verbose")
		s, err := newSession(cfg, "text", modules, stdout, newLogger(stderr, verbose))
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitCommandError
		}
		failed, err := s.run()
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return ExitCommandError
		}
		return clampExit(failed)
	}

	if args == nil {
		// cobra falls back to os.Args for nil.
		args = []string{}
	}
	cmd := NewRootCommand(modules...)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			// Usage errors from cobra itself.
			return ExitCommandError
		}
		return GetExitCode(err)
	}
	return ExitSuccess
}

func contains(args []string, s string) bool {
	for _, a := range args {
		if a == s {
			return true
		}
	}
	return false
}

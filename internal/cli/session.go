package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/config"
	"github.com/awesomekyle/unit-test/internal/engine"
	"github.com/awesomekyle/unit-test/internal/outcome"
	"github.com/awesomekyle/unit-test/internal/registry"
	"github.com/awesomekyle/unit-test/internal/report"
	"github.com/awesomekyle/unit-test/internal/script"
)

// sink receives every event of a run.
type sink interface {
	outcome.Observer
	check.Reporter
	engine.Reporter
}

// session is one fully wired test run.
type session struct {
	stdout    io.Writer
	collector *report.Collector // nil for text output
	engine    *engine.Engine
}

// newLogger returns a text logger on w: Debug when verbose, Warn otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel}))
}

// newRegistry registers modules into a registry bounded by cfg.Capacity.
func newRegistry(cfg config.Config, modules []registry.Module) (*registry.Registry, error) {
	reg := registry.New(registry.WithCapacity(cfg.Capacity))
	if err := reg.RegisterAll(modules...); err != nil {
		return nil, err
	}
	return reg, nil
}

// newBridge builds the script phase for cfg.
func newBridge(cfg config.Config, checker *check.Checker, tracker *outcome.Tracker, logger *slog.Logger, r script.Reporter) *script.Bridge {
	return script.New(checker, tracker,
		script.WithDir(cfg.ScriptDir),
		script.WithExtension(cfg.ScriptExt),
		script.WithMarkers(cfg.TestMarker, cfg.IgnoreMarker),
		script.WithSorted(cfg.SortScripts),
		script.WithLogger(logger),
		script.WithReporter(r),
	)
}

// newSession wires registry, tracker, checker, reporter and engine for cfg.
// Text output streams to stdout as the run progresses; JSON output is
// collected and written by run.
func newSession(cfg config.Config, format string, modules []registry.Module, stdout io.Writer, logger *slog.Logger) (*session, error) {
	reg, err := newRegistry(cfg, modules)
	if err != nil {
		return nil, err
	}

	s := &session{stdout: stdout}

	var out sink
	if format == "json" {
		s.collector = report.NewCollector()
		out = s.collector
	} else {
		out = report.NewConsole(stdout,
			report.WithTheme(report.ThemeFor(stdout, cfg.NoColor)),
			report.WithWrap(cfg.Wrap),
		)
	}

	tracker := outcome.NewTracker(out)
	checker := check.New(tracker, out, check.WithEpsilon(cfg.Epsilon))

	opts := []engine.Option{
		engine.WithReporter(out),
		engine.WithLogger(logger),
	}
	if cfg.Scripts {
		opts = append(opts, engine.WithPhase(newBridge(cfg, checker, tracker, logger, out)))
	}
	s.engine = engine.New(reg, tracker, checker, opts...)
	return s, nil
}

// run executes every test and returns the failed count.
func (s *session) run() (int, error) {
	failed := s.engine.RunAll()
	if s.collector != nil {
		f := &OutputFormatter{Format: "json", Writer: s.stdout}
		if err := f.Success(s.collector.Result()); err != nil {
			return failed, fmt.Errorf("writing result: %w", err)
		}
	}
	return failed, nil
}

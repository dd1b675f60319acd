package engine

import (
	"io"
	"log/slog"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/outcome"
	"github.com/awesomekyle/unit-test/internal/registry"
)

// Phase is an extra stage run after the native tests, such as the script
// bridge. A phase classifies its tests through the same tracker.
type Phase interface {
	Name() string
	Run() error
}

// Run identifies one RunAll call.
type Run struct {
	ID  string `json:"run_id"`
	Seq int64  `json:"seq"`
}

// Reporter renders the run header, phase problems and the summary.
type Reporter interface {
	Begin(run Run)
	Problem(phase string, err error)
	Summary(run Run, counters outcome.Counters)
}

// Engine executes registered tests one at a time.
type Engine struct {
	registry *registry.Registry
	tracker  *outcome.Tracker
	checker  *check.Checker
	phases   []Phase
	reporter Reporter
	logger   *slog.Logger
	runIDs   RunIDGenerator
	runs     int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithPhase appends a phase that runs after the native tests.
func WithPhase(p Phase) Option {
	return func(e *Engine) {
		if p != nil {
			e.phases = append(e.phases, p)
		}
	}
}

// WithReporter sets the reporter for headers, problems and the summary.
func WithReporter(r Reporter) Option {
	return func(e *Engine) { e.reporter = r }
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithRunIDGenerator overrides the UUIDv7 run ID generator.
func WithRunIDGenerator(g RunIDGenerator) Option {
	return func(e *Engine) { e.runIDs = g }
}

// New creates an engine over reg. The checker must fail tests on tracker.
func New(reg *registry.Registry, tracker *outcome.Tracker, checker *check.Checker, opts ...Option) *Engine {
	e := &Engine{
		registry: reg,
		tracker:  tracker,
		checker:  checker,
		reporter: nopReporter{},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		runIDs:   uuidV7{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RunAll runs every registered test and every phase, prints the summary and
// returns the number of failed tests recorded by the tracker so far. Zero
// means every test passed or was ignored.
func (e *Engine) RunAll() int {
	e.runs++
	run := Run{ID: e.runIDs.Generate(), Seq: e.runs}
	e.logger.Info("run starting",
		"run_id", run.ID,
		"seq", run.Seq,
		"native_tests", e.registry.Len(),
		"phases", len(e.phases),
	)
	e.reporter.Begin(run)

	e.runNative(run)

	for _, p := range e.phases {
		e.logger.Debug("phase starting", "run_id", run.ID, "phase", p.Name())
		if err := p.Run(); err != nil {
			e.logger.Error("phase failed", "run_id", run.ID, "phase", p.Name(), "error", err)
			e.reporter.Problem(p.Name(), err)
		}
	}

	counters := e.tracker.Counters()
	e.reporter.Summary(run, counters)
	e.logger.Info("run finished",
		"run_id", run.ID,
		"passed", counters.Passed,
		"failed", counters.Failed,
		"ignored", counters.Ignored,
		"total", counters.Total,
	)
	return counters.Failed
}

func (e *Engine) runNative(run Run) {
	t := check.NewT(e.checker)
	for _, slot := range e.registry.Slots() {
		e.tracker.Begin()
		slot.Test.Run(t)
		state := e.tracker.Classify()
		e.logger.Debug("test classified",
			"run_id", run.ID,
			"index", slot.Index,
			"module", slot.Module,
			"test", slot.Name,
			"state", state.String(),
		)
	}
}

type nopReporter struct{}

func (nopReporter) Begin(Run)                     {}
func (nopReporter) Problem(string, error)         {}
func (nopReporter) Summary(Run, outcome.Counters) {}

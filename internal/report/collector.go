package report

import (
	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/engine"
	"github.com/awesomekyle/unit-test/internal/outcome"
)

// Diagnostic is one assertion failure.
type Diagnostic struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Problem is one run-level diagnostic.
type Problem struct {
	Phase   string `json:"phase"`
	Message string `json:"message"`
}

// Result is the machine-readable outcome of one run.
type Result struct {
	RunID    string           `json:"run_id"`
	Seq      int64            `json:"seq"`
	Counters outcome.Counters `json:"counters"`
	Failures []Diagnostic     `json:"failures"`
	Problems []Problem        `json:"problems,omitempty"`
}

// Collector accumulates a Result instead of printing. It is the reporter
// used for JSON output.
type Collector struct {
	result Result
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{result: Result{Failures: []Diagnostic{}}}
}

func (c *Collector) Begin(run engine.Run) {
	c.result.RunID = run.ID
	c.result.Seq = run.Seq
}

func (c *Collector) Classified(outcome.State) {}

func (c *Collector) Failure(loc check.Location, message string) {
	c.result.Failures = append(c.result.Failures, Diagnostic{File: loc.File, Line: loc.Line, Message: message})
}

func (c *Collector) Problem(phase string, err error) {
	c.result.Problems = append(c.result.Problems, Problem{Phase: phase, Message: err.Error()})
}

func (c *Collector) Summary(_ engine.Run, counters outcome.Counters) {
	c.result.Counters = counters
}

// Result returns the collected result.
func (c *Collector) Result() Result {
	return c.result
}

// Package testutil provides deterministic helpers for harness tests.
package testutil

import (
	"fmt"
	"strings"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/engine"
	"github.com/awesomekyle/unit-test/internal/outcome"
)

// Failure is one diagnostic captured by a Recorder.
type Failure struct {
	Loc     check.Location
	Message string
}

// Recorder captures everything a console reporter would print.
// It satisfies check.Reporter, outcome.Observer and engine.Reporter.
type Recorder struct {
	Failures  []Failure
	States    []outcome.State
	Problems  []string
	Runs      []engine.Run
	Summaries []outcome.Counters
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Failure(loc check.Location, message string) {
	r.Failures = append(r.Failures, Failure{Loc: loc, Message: message})
}

func (r *Recorder) Classified(s outcome.State) {
	r.States = append(r.States, s)
}

func (r *Recorder) Begin(run engine.Run) {
	r.Runs = append(r.Runs, run)
}

func (r *Recorder) Problem(phase string, err error) {
	r.Problems = append(r.Problems, fmt.Sprintf("%s: %v", phase, err))
}

func (r *Recorder) Summary(_ engine.Run, counters outcome.Counters) {
	r.Summaries = append(r.Summaries, counters)
}

// Messages returns the captured failure messages in order.
func (r *Recorder) Messages() []string {
	out := make([]string, len(r.Failures))
	for i, f := range r.Failures {
		out[i] = f.Message
	}
	return out
}

// Glyphs renders the captured states the way the console does.
func (r *Recorder) Glyphs() string {
	var b strings.Builder
	for _, s := range r.States {
		switch s {
		case outcome.Pass:
			b.WriteByte('.')
		case outcome.Ignore:
			b.WriteByte('!')
		}
	}
	return b.String()
}

package outcome

// Observer is notified once per classified test.
// The console reporter uses it to print progress glyphs.
type Observer interface {
	Classified(s State)
}

// Tracker owns the current test's State and the run's Counters.
type Tracker struct {
	state    State
	counters Counters
	observer Observer
}

// NewTracker creates a tracker in the Pass state with zero counters.
// observer may be nil.
func NewTracker(observer Observer) *Tracker {
	return &Tracker{state: Pass, observer: observer}
}

// Begin resets the state to Pass before a test body runs.
func (t *Tracker) Begin() {
	t.state = Pass
}

// Fail records an assertion violation. Only Pass moves to Fail; an ignored
// test stays ignored.
func (t *Tracker) Fail() {
	if t.state == Pass {
		t.state = Fail
	}
}

// Ignore marks the current test as ignored.
func (t *Tracker) Ignore() {
	t.state = Ignore
}

// State returns the current test's state.
func (t *Tracker) State() State {
	return t.state
}

// Classify reads the current state exactly once, records it, notifies the
// observer and resets the state to Pass for the next test.
func (t *Tracker) Classify() State {
	s := t.state
	t.counters.Record(s)
	if t.observer != nil {
		t.observer.Classified(s)
	}
	t.state = Pass
	return s
}

// Counters returns a snapshot of the aggregate counters.
func (t *Tracker) Counters() Counters {
	return t.counters
}

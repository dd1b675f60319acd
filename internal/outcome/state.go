package outcome

import "fmt"

// State is the outcome of the currently running test.
type State int

const (
	// Pass is the state every test starts in.
	Pass State = iota
	// Fail is entered on the first violated assertion and kept until the
	// test is classified.
	Fail
	// Ignore marks a test whose body was not executed.
	Ignore
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case Pass:
		return "pass"
	case Fail:
		return "fail"
	case Ignore:
		return "ignore"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Counters are the aggregate tallies for a run.
//
// Total == Passed + Failed + Ignored holds after every Record.
type Counters struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Ignored int `json:"ignored"`
	Total   int `json:"total"`
}

// Record counts one classified test.
func (c *Counters) Record(s State) {
	switch s {
	case Fail:
		c.Failed++
	case Ignore:
		c.Ignored++
	default:
		c.Passed++
	}
	c.Total++
}

// Add returns the sum of two counter sets.
func (c Counters) Add(o Counters) Counters {
	return Counters{
		Passed:  c.Passed + o.Passed,
		Failed:  c.Failed + o.Failed,
		Ignored: c.Ignored + o.Ignored,
		Total:   c.Total + o.Total,
	}
}

// Consistent reports whether Total equals the sum of the classified counts.
func (c Counters) Consistent() bool {
	return c.Total == c.Passed+c.Failed+c.Ignored
}

// String renders the summary line printed at the end of a run.
func (c Counters) String() string {
	return fmt.Sprintf("%d failed, %d passed, %d ignored, %d total",
		c.Failed, c.Passed, c.Ignored, c.Total)
}

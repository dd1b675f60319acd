package check

import (
	"fmt"
	"reflect"

	"github.com/awesomekyle/unit-test/internal/outcome"
)

// DefaultEpsilon is the tolerance used by float checks unless overridden.
// Earlier revisions of the harness used 1e-3; it is configurable because the
// choice changes which tests pass.
const DefaultEpsilon = 1e-5

// Reporter receives the diagnostic for every violated check.
type Reporter interface {
	Failure(loc Location, message string)
}

// Checker evaluates checks against the tracker's current test.
type Checker struct {
	tracker  *outcome.Tracker
	reporter Reporter
	epsilon  float64
}

// Option configures a Checker.
type Option func(*Checker)

// WithEpsilon sets the default float tolerance. Non-positive values are
// ignored.
func WithEpsilon(epsilon float64) Option {
	return func(c *Checker) {
		if epsilon > 0 {
			c.epsilon = epsilon
		}
	}
}

// New creates a Checker that fails tests on tracker and reports diagnostics
// to reporter.
func New(tracker *outcome.Tracker, reporter Reporter, opts ...Option) *Checker {
	c := &Checker{
		tracker:  tracker,
		reporter: reporter,
		epsilon:  DefaultEpsilon,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Epsilon returns the default float tolerance.
func (c *Checker) Epsilon() float64 {
	return c.epsilon
}

// Failf unconditionally records a violation with a caller-supplied message.
func (c *Checker) Failf(loc Location, format string, args ...any) {
	c.violation(loc, fmt.Sprintf(format, args...))
}

// Bool checks that actual equals expected.
func (c *Checker) Bool(loc Location, expected, actual bool) {
	if expected != actual {
		c.violation(loc, fmt.Sprintf("expected %t, actual %t", expected, actual))
	}
}

// Int checks a op b for 64-bit signed integers.
func (c *Checker) Int(loc Location, op Op, a, b int64) {
	if !compareOrdered(op, a, b) {
		c.violation(loc, describe(op, a, b, "%d"))
	}
}

// Float checks a op b using the checker's default epsilon.
func (c *Checker) Float(loc Location, op Op, a, b float64) {
	c.FloatEpsilon(loc, op, a, b, c.epsilon)
}

// FloatEpsilon checks a op b, treating |a-b| <= epsilon as equal.
func (c *Checker) FloatEpsilon(loc Location, op Op, a, b, epsilon float64) {
	if !compareFloat(op, a, b, epsilon) {
		c.violation(loc, fmt.Sprintf("%s (epsilon %g)", describe(op, a, b, "%g"), epsilon))
	}
}

// String checks a op b comparing bytes lexicographically.
func (c *Checker) String(loc Location, op Op, a, b string) {
	if !compareOrdered(op, a, b) {
		c.violation(loc, describe(op, a, b, "%q"))
	}
}

// Pointer checks the identity of two references. Only OpEqual and
// OpNotEqual are meaningful; pointees are never compared.
func (c *Checker) Pointer(loc Location, op Op, a, b any) {
	pa, okA := address(a)
	pb, okB := address(b)
	switch {
	case !okA || !okB:
		c.violation(loc, fmt.Sprintf("cannot compare %T and %T by identity", a, b))
	case op != OpEqual && op != OpNotEqual:
		c.violation(loc, fmt.Sprintf("pointer comparison %s is not supported", op))
	case !compareOrdered(op, pa, pb):
		c.violation(loc, describe(op, pa, pb, "%#x"))
	}
}

// Null checks that p is a nil reference.
func (c *Checker) Null(loc Location, p any) {
	addr, ok := address(p)
	switch {
	case !ok:
		c.violation(loc, fmt.Sprintf("expected nil, actual %T %v", p, p))
	case addr != 0:
		c.violation(loc, fmt.Sprintf("expected nil, actual %#x", addr))
	}
}

// NotNull checks that p is a non-nil reference. Like Null, it fails for
// values that are not references at all.
func (c *Checker) NotNull(loc Location, p any) {
	addr, ok := address(p)
	switch {
	case !ok:
		c.violation(loc, fmt.Sprintf("expected non-nil reference, actual %T %v", p, p))
	case addr == 0:
		c.violation(loc, "expected non-nil reference, actual nil")
	}
}

func (c *Checker) violation(loc Location, message string) {
	if c.reporter != nil {
		c.reporter.Failure(loc, message)
	}
	c.tracker.Fail()
}

func describe[V any](op Op, a, b V, verb string) string {
	switch op {
	case OpEqual:
		return fmt.Sprintf("expected "+verb+", actual "+verb, a, b)
	case OpNotEqual:
		return fmt.Sprintf("expected a value other than "+verb+", actual "+verb, a, b)
	default:
		return fmt.Sprintf("expected "+verb+" %s "+verb, a, op, b)
	}
}

// address returns the identity of reference-like values. Non-reference
// values report ok=false.
func address(v any) (addr uintptr, ok bool) {
	if v == nil {
		return 0, true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.UnsafePointer, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Slice:
		return rv.Pointer(), true
	case reflect.Uintptr:
		return uintptr(rv.Uint()), true
	default:
		return 0, false
	}
}

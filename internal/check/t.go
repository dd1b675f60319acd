package check

import "github.com/awesomekyle/unit-test/internal/outcome"

// T is handed to native test bodies. Every method records the location of
// the line that called it.
type T struct {
	c *Checker
}

// NewT wraps a Checker for use by native tests.
func NewT(c *Checker) *T {
	return &T{c: c}
}

// Ignore marks the running test as ignored.
func (t *T) Ignore() { t.c.tracker.Ignore() }

// Failed reports whether a check in the running test has failed.
func (t *T) Failed() bool { return t.c.tracker.State() == outcome.Fail }

// Fail unconditionally fails the test with a formatted message.
func (t *T) Fail(format string, args ...any) { t.c.Failf(Caller(1), format, args...) }

func (t *T) True(v bool)  { t.c.Bool(Caller(1), true, v) }
func (t *T) False(v bool) { t.c.Bool(Caller(1), false, v) }

func (t *T) Equal(expected, actual int64)    { t.c.Int(Caller(1), OpEqual, expected, actual) }
func (t *T) NotEqual(expected, actual int64) { t.c.Int(Caller(1), OpNotEqual, expected, actual) }
func (t *T) Less(a, b int64)                 { t.c.Int(Caller(1), OpLess, a, b) }
func (t *T) Greater(a, b int64)              { t.c.Int(Caller(1), OpGreater, a, b) }
func (t *T) LessEqual(a, b int64)            { t.c.Int(Caller(1), OpLessEqual, a, b) }
func (t *T) GreaterEqual(a, b int64)         { t.c.Int(Caller(1), OpGreaterEqual, a, b) }

func (t *T) EqualFloat(expected, actual float64) {
	t.c.Float(Caller(1), OpEqual, expected, actual)
}

func (t *T) NotEqualFloat(expected, actual float64) {
	t.c.Float(Caller(1), OpNotEqual, expected, actual)
}

func (t *T) LessFloat(a, b float64)         { t.c.Float(Caller(1), OpLess, a, b) }
func (t *T) GreaterFloat(a, b float64)      { t.c.Float(Caller(1), OpGreater, a, b) }
func (t *T) LessEqualFloat(a, b float64)    { t.c.Float(Caller(1), OpLessEqual, a, b) }
func (t *T) GreaterEqualFloat(a, b float64) { t.c.Float(Caller(1), OpGreaterEqual, a, b) }

// EqualFloatEpsilon passes iff |expected-actual| <= epsilon.
func (t *T) EqualFloatEpsilon(expected, actual, epsilon float64) {
	t.c.FloatEpsilon(Caller(1), OpEqual, expected, actual, epsilon)
}

func (t *T) NotEqualFloatEpsilon(expected, actual, epsilon float64) {
	t.c.FloatEpsilon(Caller(1), OpNotEqual, expected, actual, epsilon)
}

func (t *T) EqualString(expected, actual string)    { t.c.String(Caller(1), OpEqual, expected, actual) }
func (t *T) NotEqualString(expected, actual string) { t.c.String(Caller(1), OpNotEqual, expected, actual) }
func (t *T) LessString(a, b string)                 { t.c.String(Caller(1), OpLess, a, b) }
func (t *T) GreaterString(a, b string)              { t.c.String(Caller(1), OpGreater, a, b) }

func (t *T) EqualPointer(expected, actual any)    { t.c.Pointer(Caller(1), OpEqual, expected, actual) }
func (t *T) NotEqualPointer(expected, actual any) { t.c.Pointer(Caller(1), OpNotEqual, expected, actual) }
func (t *T) Null(p any)                           { t.c.Null(Caller(1), p) }
func (t *T) NotNull(p any)                        { t.c.NotNull(Caller(1), p) }

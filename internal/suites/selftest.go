package suites

import (
	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/registry"
)

// UnitTest exercises every assertion family once with passing operands.
var UnitTest = registry.Module{
	Name: "unit_test",
	Register: func(r *registry.Registry) error {
		tests := []struct {
			name    string
			fn      func(*check.T)
			ignored bool
		}{
			{"MakeTest", makeTest, false},
			{"FailTest", failTest, true},
			{"BoolChecks", boolChecks, false},
			{"CheckIntEqual", checkIntEqual, false},
			{"CheckIntLTGT", checkIntLTGT, false},
			{"CheckPointerEqual", checkPointerEqual, false},
			{"CheckFloatEqual", checkFloatEqual, false},
			{"CheckFloatLTGT", checkFloatLTGT, false},
			{"CheckString", checkString, false},
		}
		for _, tt := range tests {
			var err error
			if tt.ignored {
				_, err = r.IgnoreFunc(tt.name, tt.fn)
			} else {
				_, err = r.RegisterFunc(tt.name, tt.fn)
			}
			if err != nil {
				return err
			}
		}
		return nil
	},
}

func makeTest(t *check.T) {}

func failTest(t *check.T) {
	t.Fail("Failure!")
}

func boolChecks(t *check.T) {
	t.True(true)
	t.False(false)
}

func checkIntEqual(t *check.T) {
	t.Equal(33, 33)
	t.NotEqual(-56, 56)
}

func checkIntLTGT(t *check.T) {
	t.Less(458, 558)
	t.Greater(-564, -664)
	t.LessEqual(458, 558)
	t.LessEqual(458, 458)
	t.GreaterEqual(-564, -564)
	t.GreaterEqual(-564, -664)
}

func checkPointerEqual(t *check.T) {
	var i [3]int
	a := &i[0]
	b := &i[0]
	c := &i[2]
	var d *int
	t.EqualPointer(a, b)
	t.NotEqualPointer(a, c)
	t.Null(d)
	t.NotNull(a)
}

func checkFloatEqual(t *check.T) {
	t.EqualFloatEpsilon(33.9234, 33.9233, 1e-3)
	t.NotEqualFloat(-56.233, 56.985)
}

func checkFloatLTGT(t *check.T) {
	t.LessFloat(458.134, 558.3284)
	t.GreaterFloat(-564.324, -664.23423)
	t.LessEqualFloat(458.53, 558.75)
	t.LessEqualFloat(458.123, 458.1234)
	t.GreaterEqualFloat(-564.345, -564.345)
	t.GreaterEqualFloat(-564.324, -664.873)
}

func checkString(t *check.T) {
	a := "Hello World"
	b := "Hello World"
	c := "Goodbye world"
	t.EqualString(a, b)
	t.NotEqualString(a, c)
}

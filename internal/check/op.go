package check

import (
	"cmp"
	"fmt"
	"math"
)

// Op is the comparison a check asserts.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpLess
	OpGreater
	OpLessEqual
	OpGreaterEqual
)

var opSymbols = map[Op]string{
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpLess:         "<",
	OpGreater:      ">",
	OpLessEqual:    "<=",
	OpGreaterEqual: ">=",
}

// String returns the operator symbol.
func (op Op) String() string {
	if s, ok := opSymbols[op]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// holds reports whether op is satisfied by the three-way result c.
func (op Op) holds(c int) bool {
	switch op {
	case OpEqual:
		return c == 0
	case OpNotEqual:
		return c != 0
	case OpLess:
		return c < 0
	case OpGreater:
		return c > 0
	case OpLessEqual:
		return c <= 0
	case OpGreaterEqual:
		return c >= 0
	default:
		return false
	}
}

func compareOrdered[V cmp.Ordered](op Op, a, b V) bool {
	return op.holds(cmp.Compare(a, b))
}

// compareFloat treats a and b as equal when |a-b| <= epsilon; the strict
// orderings require the values to be further apart than epsilon.
func compareFloat(op Op, a, b, epsilon float64) bool {
	c := 0
	if math.IsNaN(a) || math.IsNaN(b) {
		// NaN is neither near nor ordered; only != can hold.
		return op == OpNotEqual
	}
	if math.Abs(a-b) > epsilon {
		c = cmp.Compare(a, b)
	}
	return op.holds(c)
}

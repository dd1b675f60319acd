package script

import (
	"math"
	"sort"
	"strconv"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/awesomekyle/unit-test/internal/check"
)

// bindingTable maps every Lua global the bridge installs to its handler.
// The table is built once per bridge and never changes afterwards.
func (b *Bridge) bindingTable() map[string]lua.LGFunction {
	t := map[string]lua.LGFunction{
		"CHECK_TRUE":  b.boolCheck(true),
		"CHECK_FALSE": b.boolCheck(false),

		"CHECK_NULL":     b.checkNull,
		"CHECK_NOT_NULL": b.checkNotNull,
		"FAIL":           b.fail,

		"CHECK_EQUAL_FLOAT_EPSILON":     b.floatEpsilonCheck(check.OpEqual),
		"CHECK_NOT_EQUAL_FLOAT_EPSILON": b.floatEpsilonCheck(check.OpNotEqual),

		"UNIT_BEGIN_TEST":  b.beginTest,
		"UNIT_COUNT_TEST":  b.countTest,
		"UNIT_IGNORE_TEST": b.ignoreTest,
		"UNIT_TEST_ERROR":  b.testError,
	}

	ops := []struct {
		suffix string
		op     check.Op
	}{
		{"EQUAL", check.OpEqual},
		{"NOT_EQUAL", check.OpNotEqual},
		{"LESS_THAN", check.OpLess},
		{"GREATER_THAN", check.OpGreater},
		{"LESS_THAN_EQUAL", check.OpLessEqual},
		{"GREATER_THAN_EQUAL", check.OpGreaterEqual},
	}
	for _, o := range ops {
		t["CHECK_"+o.suffix] = b.intCheck(o.op)
		t["CHECK_"+o.suffix+"_FLOAT"] = b.floatCheck(o.op)
	}
	for _, o := range ops[:4] {
		t["CHECK_"+o.suffix+"_STRING"] = b.stringCheck(o.op)
	}
	t["CHECK_EQUAL_POINTER"] = b.pointerCheck(check.OpEqual)
	t["CHECK_NOT_EQUAL_POINTER"] = b.pointerCheck(check.OpNotEqual)
	return t
}

// BindingNames returns the names of the Lua globals the bridge installs,
// sorted.
func (b *Bridge) BindingNames() []string {
	names := make([]string, 0, len(b.bindings))
	for name := range b.bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// where returns the location of the Lua line that called the current
// binding.
func (b *Bridge) where(L *lua.LState) check.Location {
	loc := check.Location{File: b.current}
	dbg, ok := L.GetStack(1)
	if !ok {
		return loc
	}
	if _, err := L.GetInfo("Sl", dbg, lua.LNil); err != nil {
		return loc
	}
	if dbg.Source != "" && dbg.Source != "[G]" {
		loc.File = strings.TrimPrefix(dbg.Source, "@")
	}
	if dbg.CurrentLine > 0 {
		loc.Line = dbg.CurrentLine
	}
	return loc
}

func (b *Bridge) boolCheck(expected bool) lua.LGFunction {
	return func(L *lua.LState) int {
		b.checker.Bool(b.where(L), expected, lua.LVAsBool(L.Get(1)))
		return 0
	}
}

func (b *Bridge) intCheck(op check.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		loc := b.where(L)
		b.checker.Int(loc, op, checkInt(L, 1), checkInt(L, 2))
		return 0
	}
}

func (b *Bridge) floatCheck(op check.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		loc := b.where(L)
		b.checker.Float(loc, op, float64(L.CheckNumber(1)), float64(L.CheckNumber(2)))
		return 0
	}
}

func (b *Bridge) floatEpsilonCheck(op check.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		loc := b.where(L)
		b.checker.FloatEpsilon(loc, op,
			float64(L.CheckNumber(1)), float64(L.CheckNumber(2)), float64(L.CheckNumber(3)))
		return 0
	}
}

func (b *Bridge) stringCheck(op check.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		loc := b.where(L)
		b.checker.String(loc, op, L.CheckString(1), L.CheckString(2))
		return 0
	}
}

func (b *Bridge) pointerCheck(op check.Op) lua.LGFunction {
	return func(L *lua.LState) int {
		b.checker.Pointer(b.where(L), op, reference(L.Get(1)), reference(L.Get(2)))
		return 0
	}
}

func (b *Bridge) checkNull(L *lua.LState) int {
	b.checker.Null(b.where(L), reference(L.Get(1)))
	return 0
}

func (b *Bridge) checkNotNull(L *lua.LState) int {
	b.checker.NotNull(b.where(L), reference(L.Get(1)))
	return 0
}

// fail formats its arguments with string.format.
func (b *Bridge) fail(L *lua.LState) int {
	loc := b.where(L)
	msg := L.CheckString(1)
	if top := L.GetTop(); top > 1 {
		args := make([]lua.LValue, 0, top)
		for i := 1; i <= top; i++ {
			args = append(args, L.Get(i))
		}
		format := L.GetField(L.GetGlobal("string"), "format")
		if err := L.CallByParam(lua.P{Fn: format, NRet: 1, Protect: true}, args...); err == nil {
			msg = L.ToString(-1)
			L.Pop(1)
		}
	}
	b.checker.Failf(loc, "%s", msg)
	return 0
}

func (b *Bridge) beginTest(L *lua.LState) int {
	b.test = L.OptString(1, "")
	b.tracker.Begin()
	return 0
}

func (b *Bridge) countTest(L *lua.LState) int {
	name := L.OptString(1, b.test)
	state := b.tracker.Classify()
	b.logger.Debug("test classified", "file", b.current, "test", name, "state", state.String())
	b.test = ""
	return 0
}

func (b *Bridge) ignoreTest(L *lua.LState) int {
	b.tracker.Ignore()
	return 0
}

// testError reports a runtime error raised by a test body and fails the
// test. Error values carrying a "file:line:" prefix keep that position.
func (b *Bridge) testError(L *lua.LState) int {
	name := L.OptString(1, b.test)
	msg := L.Get(2).String()
	loc := check.Location{File: b.current}
	if line, rest, ok := splitPosition(msg, b.current); ok {
		loc.Line, msg = line, rest
	}
	b.checker.Failf(loc, "%s raised: %s", name, msg)
	return 0
}

// reference maps a Lua value to something check.Pointer can compare by
// identity. Tables, functions, userdata and coroutines are references; nil
// is the null reference; other values are passed through and rejected by
// the checker.
func reference(v lua.LValue) any {
	switch v := v.(type) {
	case *lua.LNilType:
		return nil
	case *lua.LTable, *lua.LFunction, *lua.LUserData, *lua.LState:
		return v
	case lua.LString:
		return string(v)
	case lua.LNumber:
		return float64(v)
	case lua.LBool:
		return bool(v)
	default:
		return v
	}
}

func checkInt(L *lua.LState, n int) int64 {
	v := float64(L.CheckNumber(n))
	if math.IsInf(v, 0) || math.IsNaN(v) || v != math.Trunc(v) {
		L.ArgError(n, "integer expected, got "+strconv.FormatFloat(v, 'g', -1, 64))
	}
	// -2^63 is exact as a float64; 2^63 is the first value past MaxInt64.
	if v < math.MinInt64 || v >= -math.MinInt64 {
		L.ArgError(n, "integer out of range, got "+strconv.FormatFloat(v, 'g', -1, 64))
	}
	return int64(v)
}

// splitPosition strips a "<file>:<line>: " prefix from a Lua error message.
func splitPosition(msg, file string) (int, string, bool) {
	if file == "" {
		return 0, msg, false
	}
	rest, ok := strings.CutPrefix(msg, file+":")
	if !ok {
		return 0, msg, false
	}
	digits, tail, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, msg, false
	}
	line, err := strconv.Atoi(digits)
	if err != nil {
		return 0, msg, false
	}
	return line, strings.TrimSpace(tail), true
}

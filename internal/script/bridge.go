// Package script runs tests written in Lua.
//
// A script file defines global functions whose names contain the test
// marker ("_Test" by default). The bridge executes each file in a shared Lua
// state, then a fixed driver program calls every such function, classifies
// it through the tracker and removes it from the global table so it is never
// counted twice. Functions whose names also contain the ignore marker
// ("_Ignore") are classified Ignore without running.
//
// Assertions are exposed as Lua globals with the same names the native
// checks use in diagnostics: CHECK_TRUE, CHECK_EQUAL_FLOAT, FAIL and so on.
//
//	function Parse_Test()
//		CHECK_EQUAL(tonumber("42"), 42)
//		CHECK_EQUAL_STRING(string.upper("ok"), "OK")
//	end
package script

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	lua "github.com/yuin/gopher-lua"
	"golang.org/x/text/unicode/norm"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/outcome"
)

// Default discovery settings.
const (
	DefaultExtension    = ".lua"
	DefaultTestMarker   = "_Test"
	DefaultIgnoreMarker = "_Ignore"
)

//go:embed driver.lua
var driverSource string

// Reporter receives diagnostics about script files that contributed no
// tests. The engine's console reporter satisfies it.
type Reporter interface {
	Problem(phase string, err error)
}

// Bridge discovers and runs script tests. It is an engine phase.
type Bridge struct {
	checker      *check.Checker
	tracker      *outcome.Tracker
	dir          string
	ext          string
	testMarker   string
	ignoreMarker string
	sorted       bool
	logger       *slog.Logger
	reporter     Reporter

	bindings map[string]lua.LGFunction

	// Per-run state, valid between Open and Close.
	state    *lua.LState
	driver   *lua.LFunction
	reserved *lua.LTable
	current  string
	test     string
}

// Option configures a Bridge.
type Option func(*Bridge)

// WithDir sets the directory scanned for script files. The default is the
// working directory.
func WithDir(dir string) Option {
	return func(b *Bridge) { b.dir = dir }
}

// WithExtension sets the file suffix that marks a script file.
func WithExtension(ext string) Option {
	return func(b *Bridge) {
		if ext != "" {
			b.ext = ext
		}
	}
}

// WithMarkers sets the name substrings that mark test and ignored test
// functions. Empty values keep the defaults.
func WithMarkers(test, ignore string) Option {
	return func(b *Bridge) {
		if test != "" {
			b.testMarker = test
		}
		if ignore != "" {
			b.ignoreMarker = ignore
		}
	}
}

// WithSorted controls whether script files are processed in name order.
// When false, files are processed in directory order.
func WithSorted(sorted bool) Option {
	return func(b *Bridge) { b.sorted = sorted }
}

// WithLogger sets the structured logger. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) { b.logger = l }
}

// WithReporter sets the receiver of load diagnostics.
func WithReporter(r Reporter) Option {
	return func(b *Bridge) { b.reporter = r }
}

// New creates a bridge that checks through checker and classifies through
// tracker. The checker must fail tests on the same tracker.
func New(checker *check.Checker, tracker *outcome.Tracker, opts ...Option) *Bridge {
	b := &Bridge{
		checker:      checker,
		tracker:      tracker,
		dir:          ".",
		ext:          DefaultExtension,
		testMarker:   DefaultTestMarker,
		ignoreMarker: DefaultIgnoreMarker,
		sorted:       true,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.bindings = b.bindingTable()
	return b
}

// Name implements engine.Phase.
func (b *Bridge) Name() string { return "script" }

// Run processes every script file in the directory inside one Lua state.
// Files that fail to load are reported and skipped. A directory that cannot
// be listed returns a *ScanError.
func (b *Bridge) Run() error {
	files, err := b.Discover()
	if err != nil {
		return err
	}
	if err := b.Open(); err != nil {
		return err
	}
	defer b.Close()

	b.logger.Debug("script phase starting", "dir", b.dir, "files", len(files))
	for _, path := range files {
		b.RunFile(path)
	}
	return nil
}

// Discover lists the script files Run would process, as absolute paths.
func (b *Bridge) Discover() ([]string, error) {
	f, err := os.Open(b.dir)
	if err != nil {
		return nil, &ScanError{Dir: b.dir, Err: err}
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &ScanError{Dir: b.dir, Err: err}
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != b.ext {
			continue
		}
		names = append(names, entry.Name())
	}
	if b.sorted {
		sort.SliceStable(names, func(i, j int) bool {
			ki, kj := norm.NFC.String(names[i]), norm.NFC.String(names[j])
			if ki != kj {
				return ki < kj
			}
			return names[i] < names[j]
		})
	}

	abs, err := filepath.Abs(b.dir)
	if err != nil {
		return nil, &ScanError{Dir: b.dir, Err: err}
	}
	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(abs, name)
	}
	return paths, nil
}

// Open creates the Lua state, installs the bindings and compiles the driver.
// Run calls it; tests may call it directly together with RunFile and Close.
func (b *Bridge) Open() error {
	if b.state != nil {
		return fmt.Errorf("script: state already open")
	}
	L := lua.NewState()
	for name, fn := range b.bindings {
		L.SetGlobal(name, L.NewFunction(fn))
	}
	driver, err := L.LoadString(driverSource)
	if err != nil {
		L.Close()
		return fmt.Errorf("compile driver: %w", err)
	}
	reserved := L.NewTable()
	for name := range b.bindings {
		reserved.RawSetString(name, lua.LTrue)
	}
	b.state, b.driver, b.reserved = L, driver, reserved
	return nil
}

// Close releases the Lua state. It is safe to call when nothing is open.
func (b *Bridge) Close() {
	if b.state == nil {
		return
	}
	b.state.Close()
	b.state, b.driver, b.reserved = nil, nil, nil
	b.current, b.test = "", ""
}

// RunFile executes one script file and then its tests. Open must have been
// called.
func (b *Bridge) RunFile(path string) {
	if b.state == nil {
		b.problem(&LoadError{Path: path, Stage: "load", Err: fmt.Errorf("state not open")})
		return
	}
	L := b.state
	b.current = path
	defer func() { b.current = "" }()

	chunk, err := L.LoadFile(path)
	if err != nil {
		b.problem(&LoadError{Path: path, Stage: "load", Err: err})
		return
	}
	if err := L.CallByParam(lua.P{Fn: chunk, NRet: 0, Protect: true}); err != nil {
		b.problem(&LoadError{Path: path, Stage: "execute", Err: err})
		b.discard()
		return
	}

	before := b.tracker.Counters().Total
	err = L.CallByParam(lua.P{Fn: b.driver, NRet: 0, Protect: true},
		lua.LString(b.testMarker), lua.LString(b.ignoreMarker), b.reserved)
	if err != nil {
		b.problem(fmt.Errorf("driver %s: %w", path, err))
		return
	}
	b.logger.Debug("script file finished", "path", path, "tests", b.tracker.Counters().Total-before)
}

// discard removes the test functions a skipped file defined before it
// failed, so a later file does not run them.
func (b *Bridge) discard() {
	L := b.state
	var names []string
	L.G.Global.ForEach(func(k, v lua.LValue) {
		name, ok := k.(lua.LString)
		if !ok || v.Type() != lua.LTFunction {
			return
		}
		if b.reserved.RawGetString(string(name)) != lua.LNil {
			return
		}
		if strings.Contains(string(name), b.testMarker) {
			names = append(names, string(name))
		}
	})
	for _, name := range names {
		L.SetGlobal(name, lua.LNil)
	}
	if len(names) > 0 {
		b.logger.Debug("discarded tests of skipped file", "path", b.current, "tests", len(names))
	}
}

// Global returns a global of the open state, or nil when nothing is open.
func (b *Bridge) Global(name string) lua.LValue {
	if b.state == nil {
		return lua.LNil
	}
	return b.state.GetGlobal(name)
}

func (b *Bridge) problem(err error) {
	b.logger.Warn("script file skipped", "error", err)
	if b.reporter != nil {
		b.reporter.Problem(b.Name(), err)
	}
}

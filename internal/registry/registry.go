// Package registry is the ordered, append-only list of native tests.
//
// Registration is explicit. A program assembles its tests from Modules and
// calls RegisterAll once at startup, in a declared order; nothing registers
// itself from package init. Slots keep their index for the life of the
// registry and are never removed, so running does not consume them.
package registry

import (
	"fmt"

	"github.com/awesomekyle/unit-test/internal/check"
)

// DefaultCapacity is the registration limit used unless WithCapacity says
// otherwise.
const DefaultCapacity = 4096

// Test is an invocable native test body.
type Test interface {
	Run(t *check.T)
}

// Func adapts a plain function to Test.
type Func func(t *check.T)

// Run calls f(t).
func (f Func) Run(t *check.T) { f(t) }

// ignoreMarker stands in for the body of an ignored test.
type ignoreMarker struct{}

func (ignoreMarker) Run(t *check.T) { t.Ignore() }

// Slot is one registered test. For ignored tests Test is the ignore marker,
// not the original body.
type Slot struct {
	Index   int
	Name    string
	Module  string
	Ignored bool
	Test    Test
}

// Registry holds the registered tests in registration order.
type Registry struct {
	slots    []Slot
	capacity int
	module   string
}

// Option configures a Registry.
type Option func(*Registry)

// WithCapacity sets the maximum number of registrations. Zero removes the
// limit and the registry grows as needed.
func WithCapacity(n int) Option {
	return func(r *Registry) {
		if n >= 0 {
			r.capacity = n
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends a test and returns its slot index.
func (r *Registry) Register(name string, test Test) (int, error) {
	return r.add(name, test, false)
}

// RegisterFunc is Register for a plain function.
func (r *Registry) RegisterFunc(name string, fn func(t *check.T)) (int, error) {
	return r.add(name, Func(fn), false)
}

// Ignore registers an ignore marker in place of test. The test is counted
// and reported as ignored; its body never runs.
func (r *Registry) Ignore(name string, test Test) (int, error) {
	return r.add(name, test, true)
}

// IgnoreFunc is Ignore for a plain function.
func (r *Registry) IgnoreFunc(name string, fn func(t *check.T)) (int, error) {
	return r.add(name, Func(fn), true)
}

func (r *Registry) add(name string, test Test, ignored bool) (int, error) {
	if test == nil {
		return -1, fmt.Errorf("cannot register %q: nil test", name)
	}
	if r.capacity > 0 && len(r.slots) >= r.capacity {
		return -1, &CapacityError{Capacity: r.capacity, Name: name}
	}
	if ignored {
		test = ignoreMarker{}
	}
	idx := len(r.slots)
	r.slots = append(r.slots, Slot{
		Index:   idx,
		Name:    name,
		Module:  r.module,
		Ignored: ignored,
		Test:    test,
	})
	return idx, nil
}

// Slots returns a copy of the registered slots in registration order.
func (r *Registry) Slots() []Slot {
	out := make([]Slot, len(r.slots))
	copy(out, r.slots)
	return out
}

// Len returns the number of registered tests.
func (r *Registry) Len() int {
	return len(r.slots)
}

// Capacity returns the registration limit; zero means unbounded.
func (r *Registry) Capacity() int {
	return r.capacity
}

package suites

import (
	"strings"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/registry"
)

// Fixtures exercises setup and teardown around test bodies.
var Fixtures = registry.Module{
	Name: "fixture",
	Register: func(r *registry.Registry) error {
		if _, err := r.Register("BuilderStartsEmpty", registry.FixtureTest(newBuilderFixture(func(t *check.T, b *strings.Builder) {
			t.Equal(0, int64(b.Len()))
			b.WriteString("scratch")
		}))); err != nil {
			return err
		}
		_, err := r.Register("BuilderAccumulates", registry.FixtureTest(newBuilderFixture(func(t *check.T, b *strings.Builder) {
			b.WriteString("abc")
			b.WriteString("def")
			t.EqualString("abcdef", b.String())
		})))
		return err
	},
}

// builderFixture hands each run a fresh builder and checks on teardown
// that the body left it non-empty.
type builderFixture struct {
	b    *strings.Builder
	body func(*check.T, *strings.Builder)
}

func newBuilderFixture(body func(*check.T, *strings.Builder)) func() registry.Fixture {
	return func() registry.Fixture {
		return &builderFixture{body: body}
	}
}

func (f *builderFixture) Setup(t *check.T) {
	f.b = &strings.Builder{}
	t.NotNull(f.b)
}

func (f *builderFixture) Run(t *check.T) {
	f.body(t, f.b)
}

func (f *builderFixture) Teardown(t *check.T) {
	t.Greater(int64(f.b.Len()), 0)
	f.b = nil
}

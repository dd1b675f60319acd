package registry

import "github.com/awesomekyle/unit-test/internal/check"

// Fixture is a test with setup and teardown.
type Fixture interface {
	Setup(t *check.T)
	Run(t *check.T)
	Teardown(t *check.T)
}

type fixtureTest struct {
	newFixture func() Fixture
}

// FixtureTest adapts a fixture constructor to Test. Each invocation gets a
// fresh fixture; Teardown runs on every exit path once Setup has started,
// including failed checks and panics.
func FixtureTest(newFixture func() Fixture) Test {
	return fixtureTest{newFixture: newFixture}
}

func (f fixtureTest) Run(t *check.T) {
	fx := f.newFixture()
	defer fx.Teardown(t)
	fx.Setup(t)
	fx.Run(t)
}

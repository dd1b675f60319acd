package testutil

// FixedRunIDGenerator hands out predetermined run IDs in order and then keeps
// returning the last one, so tests can call RunAll any number of times and
// compare output byte for byte.
type FixedRunIDGenerator struct {
	ids  []string
	next int
}

// NewFixedRunIDGenerator creates a generator for ids. With no ids it returns
// "test-run-default".
func NewFixedRunIDGenerator(ids ...string) *FixedRunIDGenerator {
	if len(ids) == 0 {
		ids = []string{"test-run-default"}
	}
	return &FixedRunIDGenerator{ids: ids}
}

// Generate returns the next run ID.
func (g *FixedRunIDGenerator) Generate() string {
	id := g.ids[g.next]
	if g.next < len(g.ids)-1 {
		g.next++
	}
	return id
}

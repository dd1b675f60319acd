// Package suites holds the harness's own native test modules.
package suites

import "github.com/awesomekyle/unit-test/internal/registry"

// Modules lists every built-in module in registration order.
var Modules = []registry.Module{
	UnitTest,
	Fixtures,
}

// RegisterAll registers every built-in module into r.
func RegisterAll(r *registry.Registry) error {
	return r.RegisterAll(Modules...)
}

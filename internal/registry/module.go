package registry

import "fmt"

// Module groups the registrations of one test file or package.
type Module struct {
	Name     string
	Register func(r *Registry) error
}

// RegisterAll runs each module's Register in the order given. Slots created
// by a module carry its name. The first error stops registration.
func (r *Registry) RegisterAll(modules ...Module) error {
	defer func() { r.module = "" }()
	for _, m := range modules {
		if m.Register == nil {
			return fmt.Errorf("module %q: no register function", m.Name)
		}
		r.module = m.Name
		if err := m.Register(r); err != nil {
			return fmt.Errorf("module %q: %w", m.Name, err)
		}
	}
	return nil
}

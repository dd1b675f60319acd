package registry

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded is matched by every CapacityError.
var ErrCapacityExceeded = errors.New("registry capacity exceeded")

// CapacityError is returned when a registration would exceed the registry's
// capacity. The registry is left unchanged.
type CapacityError struct {
	Capacity int
	Name     string
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("cannot register %q: %v (capacity %d)", e.Name, ErrCapacityExceeded, e.Capacity)
}

// Is makes errors.Is(err, ErrCapacityExceeded) match.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

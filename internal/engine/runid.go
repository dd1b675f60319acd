package engine

import "github.com/google/uuid"

// RunIDGenerator produces the identifier attached to each run.
type RunIDGenerator interface {
	Generate() string
}

// uuidV7 generates time-sortable run IDs. It panics only if the random
// source is broken.
type uuidV7 struct{}

func (uuidV7) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

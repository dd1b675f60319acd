package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDv7_ValidVersion(t *testing.T) {
	id := uuidV7{}.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}

func TestUUIDv7_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 500; i++ {
		id := uuidV7{}.Generate()
		require.False(t, seen[id], "run ID %s generated twice", id)
		seen[id] = true
	}
}

func TestNew_DefaultsToUUIDv7(t *testing.T) {
	e := New(nil, nil, nil)
	assert.IsType(t, uuidV7{}, e.runIDs)
	assert.Equal(t, int64(0), e.runs)
}

package identity_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/project-tracker/internal/platform/identity"
)

func TestUUID_NewID(t *testing.T) {
	t.Parallel()

	gen := identity.UUID{}

	first := gen.NewID()
	second := gen.NewID()

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())
	assert.NotEqual(t, first, second)
}

func TestSequence_NewID(t *testing.T) {
	t.Parallel()

	seq := identity.NewSequence("p-1", "i-1")

	assert.Equal(t, "p-1", seq.NewID())
	assert.Equal(t, "i-1", seq.NewID())

	_, err := uuid.Parse(seq.NewID())
	assert.NoError(t, err, "exhausted sequence falls back to UUIDs")
}

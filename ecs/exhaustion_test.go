package ecs

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exhaustion is a white-box test: walking the counter through 2^32 real
// creates is not viable, so the counter is placed at the last issuable ID
// directly.
func TestEntityIDSpaceExhaustion(t *testing.T) {
	m := NewEntityManager(nil)
	m.nextID = EntityID(math.MaxUint32)

	last := m.Create()
	require.Equal(t, EntityID(math.MaxUint32), last)
	assert.True(t, m.IsAlive(last))

	// The sequential space is spent: creation fails with the sentinel.
	assert.Equal(t, NilEntity, m.Create())
	assert.Equal(t, 1, m.Count(), "a failed create leaves no liveness trace")

	// Recycling still works after exhaustion.
	m.Destroy(last)
	assert.Equal(t, last, m.Create())
}

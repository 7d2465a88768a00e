package ecs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Hendrin-Mckay/odingame/ecs"
)

func TestEntityAliveCountTracksChurn(t *testing.T) {
	m := ecs.NewEntityManager(zaptest.NewLogger(t))

	created := make([]ecs.EntityID, 0, 100)
	for i := 0; i < 100; i++ {
		id := m.Create()
		require.NotEqual(t, ecs.NilEntity, id)
		created = append(created, id)
	}
	assert.Equal(t, 100, m.Count())

	// No two simultaneously alive entities share an ID.
	seen := make(map[ecs.EntityID]bool, len(created))
	for _, id := range created {
		assert.False(t, seen[id], "duplicate live ID %d", id)
		seen[id] = true
	}

	for _, id := range created[:40] {
		m.Destroy(id)
	}
	assert.Equal(t, 60, m.Count())
	for _, id := range created[:40] {
		assert.False(t, m.IsAlive(id))
	}
	for _, id := range created[40:] {
		assert.True(t, m.IsAlive(id))
	}
}

// TestEntityRecycleIsLIFO pins the recycling discipline: the most recently
// freed ID comes back first, and a destroy-then-create pair may legally
// return the same ID. There is no generation counter; that is contractual,
// not a defect.
func TestEntityRecycleIsLIFO(t *testing.T) {
	m := ecs.NewEntityManager(zaptest.NewLogger(t))

	a := m.Create()
	b := m.Create()
	c := m.Create()

	m.Destroy(a)
	m.Destroy(c)

	assert.Equal(t, c, m.Create(), "most recently freed ID is reused first")
	assert.Equal(t, a, m.Create())
	assert.True(t, m.IsAlive(b))
}

func TestEntityDestroyIsIdempotent(t *testing.T) {
	m := ecs.NewEntityManager(zaptest.NewLogger(t))
	id := m.Create()

	m.Destroy(id)
	m.Destroy(id)                 // dead: logged no-op
	m.Destroy(ecs.NilEntity)      // sentinel: logged no-op
	m.Destroy(ecs.EntityID(9000)) // never issued: logged no-op

	assert.Equal(t, 0, m.Count())

	// The double destroy must not have queued the ID twice.
	first := m.Create()
	second := m.Create()
	assert.Equal(t, id, first)
	assert.NotEqual(t, id, second)
}

func TestNilEntityNeverAlive(t *testing.T) {
	m := ecs.NewEntityManager(zaptest.NewLogger(t))
	assert.False(t, m.IsAlive(ecs.NilEntity))
	assert.False(t, m.IsAlive(ecs.EntityID(42)))
}

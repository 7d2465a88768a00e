package ecs

import (
	"go.uber.org/zap"
)

// EntityID is an opaque handle to a game object. It stays unique for as long
// as the entity is alive; once destroyed, the ID returns to a free list and
// the next Create may hand it out again. There is no generation counter, so a
// handle held across a destroy/create cycle cannot be told apart from a
// handle to the new occupant.
type EntityID uint32

// NilEntity is the reserved "no entity" sentinel. It is never alive.
const NilEntity EntityID = 0

// EntityManager issues and recycles entity identifiers and tracks which of
// them are currently alive. It never touches component storage; the World
// coordinates the two.
type EntityManager struct {
	nextID  EntityID
	freeIDs []EntityID
	alive   map[EntityID]struct{}
	log     *zap.Logger
}

// NewEntityManager creates an entity manager. A nil logger disables
// diagnostics.
func NewEntityManager(log *zap.Logger) *EntityManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &EntityManager{
		nextID:  1,
		freeIDs: make([]EntityID, 0, 64),
		alive:   make(map[EntityID]struct{}, 256),
		log:     log,
	}
}

// Create returns a live entity ID. The most recently freed ID is reused
// first; only when the free list is empty does the sequential counter
// advance. Returns NilEntity when the 32-bit ID space is exhausted, so
// callers must treat creation as fallible.
func (m *EntityManager) Create() EntityID {
	var id EntityID
	if n := len(m.freeIDs); n > 0 {
		id = m.freeIDs[n-1]
		m.freeIDs = m.freeIDs[:n-1]
	} else {
		if m.nextID == 0 {
			m.log.Error("entity ID space exhausted")
			return NilEntity
		}
		id = m.nextID
		m.nextID++ // wraps to 0 once every ID has been issued
	}
	m.alive[id] = struct{}{}
	return id
}

// Destroy releases an entity ID back to the free list. Destroying NilEntity
// or an ID that is not alive is a logged no-op.
func (m *EntityManager) Destroy(id EntityID) {
	if id == NilEntity {
		m.log.Warn("destroy of nil entity ignored")
		return
	}
	if _, ok := m.alive[id]; !ok {
		m.log.Warn("destroy of dead entity ignored", zap.Uint32("entity", uint32(id)))
		return
	}
	delete(m.alive, id)
	m.freeIDs = append(m.freeIDs, id)
}

// IsAlive reports whether id refers to a live entity.
func (m *EntityManager) IsAlive(id EntityID) bool {
	_, ok := m.alive[id]
	return ok
}

// Count returns the number of live entities.
func (m *EntityManager) Count() int {
	return len(m.alive)
}

// Each calls fn for every live entity. Iteration order is unspecified.
// fn must not create or destroy entities.
func (m *EntityManager) Each(fn func(EntityID)) {
	for id := range m.alive {
		fn(id)
	}
}

// reset drops all liveness and recycling state, returning the manager to its
// freshly constructed form. Used by World teardown.
func (m *EntityManager) reset() {
	m.nextID = 1
	m.freeIDs = m.freeIDs[:0]
	m.alive = make(map[EntityID]struct{})
}

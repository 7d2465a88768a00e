// Package ecs implements the entity-component-system core of the framework:
// recyclable entity identifiers, densely packed per-type component storage
// with O(1) add/remove/lookup, and per-frame system scheduling over the
// entities matching a component signature.
package ecs

import (
	"go.uber.org/zap"
)

// defaultPoolCapacity sizes a pool created lazily on first component use.
const defaultPoolCapacity = 64

// World owns one EntityManager, one ComponentRegistry, the pool for every
// component type seen so far, and one SystemManager. All mutation of entity
// and component state goes through it. A World is confined to the single
// goroutine running the frame loop; nothing in it locks.
type World struct {
	log      *zap.Logger
	entities *EntityManager
	registry *ComponentRegistry
	pools    map[ComponentID]componentPool
	systems  *SystemManager
}

// NewWorld creates an empty world. The logger is the world's diagnostic
// sink; nil disables diagnostics.
func NewWorld(log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}
	return &World{
		log:      log,
		entities: NewEntityManager(log),
		registry: NewComponentRegistry(),
		pools:    make(map[ComponentID]componentPool, 16),
		systems:  NewSystemManager(log),
	}
}

// CreateEntity returns a new live entity with no components, or NilEntity if
// the ID space is exhausted.
func (w *World) CreateEntity() EntityID {
	return w.entities.Create()
}

// DestroyEntity removes the entity's components from every pool and then
// frees its ID for reuse. The sweep happens before the ID is freed so a
// recycled ID can never observe stale component data. Destroying NilEntity
// or a dead entity is a logged no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.entities.IsAlive(id) {
		w.entities.Destroy(id) // routes through the manager for the diagnostic
		return
	}
	for _, p := range w.pools {
		p.remove(id)
	}
	w.entities.Destroy(id)
}

// IsAlive reports whether id refers to a live entity.
func (w *World) IsAlive(id EntityID) bool {
	return w.entities.IsAlive(id)
}

// EntityCount returns the number of live entities.
func (w *World) EntityCount() int {
	return w.entities.Count()
}

// Registry exposes the component registry, mainly for runtime-keyed callers
// and diagnostics.
func (w *World) Registry() *ComponentRegistry {
	return w.registry
}

// PoolCount returns the number of component pools created so far.
func (w *World) PoolCount() int {
	return len(w.pools)
}

// HasComponentID reports whether the entity owns the component with the
// given registered type ID. Dead entities and unknown IDs never match.
func (w *World) HasComponentID(e EntityID, id ComponentID) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	p, ok := w.pools[id]
	if !ok {
		return false
	}
	return p.has(e)
}

// RemoveComponentID detaches the component with the given type ID from the
// entity. Returns false when the entity is dead, the ID is unknown, or the
// entity does not own the component.
func (w *World) RemoveComponentID(e EntityID, id ComponentID) bool {
	if !w.entities.IsAlive(e) {
		w.log.Warn("remove component on dead entity",
			zap.Uint32("entity", uint32(e)), zap.Uint32("component", uint32(id)))
		return false
	}
	p, ok := w.pools[id]
	if !ok {
		w.log.Warn("remove of unknown component type", zap.Uint32("component", uint32(id)))
		return false
	}
	return p.remove(e)
}

// Destroy tears the world down: systems first, then every pool, then the
// registry metadata the pools referenced, then the entity manager. The world
// must not be used afterwards.
func (w *World) Destroy() {
	w.systems.clear()
	for id, p := range w.pools {
		p.destroy()
		delete(w.pools, id)
	}
	w.registry.reset()
	w.entities.reset()
}

// ── generic component API ──────────────────────────────────────────

// RegisterComponent registers T with the world's registry and returns its
// ID. Registration is idempotent; any component operation registers on
// demand, so calling this explicitly is only needed when the ID itself is
// wanted up front (for queries).
func RegisterComponent[T any](w *World) ComponentID {
	return w.registry.Register(typeOf[T]())
}

// ComponentIDOf returns the registered ID for T without registering it.
func ComponentIDOf[T any](w *World) (ComponentID, bool) {
	return w.registry.Lookup(typeOf[T]())
}

// PoolOf returns the world's pool for T, creating it (and registering T) on
// first use. Systems that iterate one component type heavily can cache the
// result for the lifetime of the world.
func PoolOf[T any](w *World) *Pool[T] {
	id := w.registry.GetOrRegister(typeOf[T]())
	if p, ok := w.pools[id]; ok {
		return p.(*Pool[T])
	}
	meta, _ := w.registry.GetTypeInfo(id)
	p := NewPool[T](meta, defaultPoolCapacity, w.log)
	w.pools[id] = p
	return p
}

// AddComponent attaches a component value to a live entity, overwriting in
// place if the entity already owns one. Returns false (with a warning) when
// the entity is dead.
func AddComponent[T any](w *World, e EntityID, v T) bool {
	if !w.entities.IsAlive(e) {
		w.log.Warn("add component on dead entity", zap.Uint32("entity", uint32(e)))
		return false
	}
	PoolOf[T](w).Add(e, v)
	return true
}

// RemoveComponent detaches T from the entity. Returns false when the entity
// is dead, T was never registered, or the entity does not own a T.
func RemoveComponent[T any](w *World, e EntityID) bool {
	if !w.entities.IsAlive(e) {
		w.log.Warn("remove component on dead entity", zap.Uint32("entity", uint32(e)))
		return false
	}
	id, ok := w.registry.Lookup(typeOf[T]())
	if !ok {
		w.log.Warn("remove of unregistered component type", zap.String("type", typeOf[T]().String()))
		return false
	}
	p, ok := w.pools[id]
	if !ok {
		return false
	}
	return p.remove(e)
}

// GetComponent returns a handle to the entity's T, or absent. The handle is
// valid only until the next structural mutation of T's pool; do not retain
// it across an add/remove or a frame boundary. Dead entities and
// unregistered types fail closed.
func GetComponent[T any](w *World, e EntityID) (*T, bool) {
	if !w.entities.IsAlive(e) {
		w.log.Warn("get component on dead entity", zap.Uint32("entity", uint32(e)))
		return nil, false
	}
	id, ok := w.registry.Lookup(typeOf[T]())
	if !ok {
		return nil, false
	}
	p, ok := w.pools[id]
	if !ok {
		return nil, false
	}
	return p.(*Pool[T]).Get(e)
}

// HasComponent reports whether a live entity owns a T.
func HasComponent[T any](w *World, e EntityID) bool {
	if !w.entities.IsAlive(e) {
		return false
	}
	id, ok := w.registry.Lookup(typeOf[T]())
	if !ok {
		return false
	}
	p, ok := w.pools[id]
	if !ok {
		return false
	}
	return p.has(e)
}

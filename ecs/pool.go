package ecs

import (
	"fmt"
	"unsafe"

	"go.uber.org/zap"
)

// componentPool is the type-erased view of a Pool[T]. The World keeps one
// per registered component type, keyed by ComponentID, and uses it for the
// operations that cannot name T at compile time: the destroy-entity sweep,
// ID-keyed lookups and query filtering. Raw pointers address the component's
// bytes inside the dense buffer.
type componentPool interface {
	addRaw(e EntityID, src unsafe.Pointer)
	remove(e EntityID) bool
	getRaw(e EntityID) (unsafe.Pointer, bool)
	has(e EntityID) bool
	count() int
	owners() []EntityID
	info() TypeInfo
	destroy()
}

// Pool is the dense storage for one component type. Component values live
// contiguously in a single slice; a sparse map translates an owning entity to
// its dense index and a parallel entity slice translates back. Add, Remove
// and Get are O(1) while iteration over the dense slice stays contiguous.
type Pool[T any] struct {
	meta     TypeInfo
	data     []T
	entities []EntityID
	sparse   map[EntityID]int
	log      *zap.Logger
}

// NewPool creates a pool sized for initialCapacity elements. A nil logger
// disables diagnostics.
func NewPool[T any](meta TypeInfo, initialCapacity int, log *zap.Logger) *Pool[T] {
	if initialCapacity < 0 {
		initialCapacity = 0
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Pool[T]{
		meta:     meta,
		data:     make([]T, 0, initialCapacity),
		entities: make([]EntityID, 0, initialCapacity),
		sparse:   make(map[EntityID]int, initialCapacity),
		log:      log,
	}
}

// Add attaches a component value to an entity. If the entity already owns
// this component the existing slot is overwritten in place, leaving the dense
// length unchanged. Amortized O(1); the buffer grows by reallocation when
// full, which invalidates previously returned handles.
func (p *Pool[T]) Add(e EntityID, v T) {
	if i, ok := p.sparse[e]; ok {
		p.log.Debug("component overwritten in place",
			zap.String("component", p.meta.Name), zap.Uint32("entity", uint32(e)))
		p.data[i] = v
		return
	}
	p.sparse[e] = len(p.data)
	p.data = append(p.data, v)
	p.entities = append(p.entities, e)
}

// Remove detaches the entity's component, returning false when the entity
// owns none. The last dense element is swapped into the vacated slot so the
// array stays packed; element order is not preserved.
func (p *Pool[T]) Remove(e EntityID) bool {
	i, ok := p.sparse[e]
	if !ok {
		return false
	}
	if p.entities[i] != e {
		panic(fmt.Sprintf("ecs: pool %s corrupt: dense index %d owned by entity %d, expected %d",
			p.meta.Name, i, p.entities[i], e))
	}
	last := len(p.data) - 1
	if i != last {
		moved := p.entities[last]
		p.data[i] = p.data[last]
		p.entities[i] = moved
		p.sparse[moved] = i
	}
	p.data = p.data[:last]
	p.entities = p.entities[:last]
	delete(p.sparse, e)
	return true
}

// Get returns a handle to the entity's component, or absent. The handle
// points into the dense buffer and is valid only until the next structural
// mutation of this pool; do not retain it across an Add, a Remove or a frame
// boundary.
func (p *Pool[T]) Get(e EntityID) (*T, bool) {
	i, ok := p.sparse[e]
	if !ok {
		return nil, false
	}
	return &p.data[i], true
}

// Has reports whether the entity owns this component.
func (p *Pool[T]) Has(e EntityID) bool {
	_, ok := p.sparse[e]
	return ok
}

// Len returns the number of stored components.
func (p *Pool[T]) Len() int {
	return len(p.data)
}

// Entities returns the dense owner list: Entities()[i] owns the component at
// dense index i. The slice is the pool's own storage; callers must not
// mutate it.
func (p *Pool[T]) Entities() []EntityID {
	return p.entities
}

// Destroy releases the dense buffer and both index maps. The pool must not
// be used afterwards.
func (p *Pool[T]) Destroy() {
	p.data = nil
	p.entities = nil
	p.sparse = nil
}

// ── type-erased view ───────────────────────────────────────────────

func (p *Pool[T]) addRaw(e EntityID, src unsafe.Pointer) {
	p.Add(e, *(*T)(src))
}

func (p *Pool[T]) remove(e EntityID) bool {
	return p.Remove(e)
}

func (p *Pool[T]) getRaw(e EntityID) (unsafe.Pointer, bool) {
	v, ok := p.Get(e)
	if !ok {
		return nil, false
	}
	return unsafe.Pointer(v), true
}

func (p *Pool[T]) has(e EntityID) bool { return p.Has(e) }

func (p *Pool[T]) count() int { return p.Len() }

func (p *Pool[T]) owners() []EntityID { return p.entities }

func (p *Pool[T]) info() TypeInfo { return p.meta }

func (p *Pool[T]) destroy() { p.Destroy() }

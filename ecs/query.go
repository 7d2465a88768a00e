package ecs

// QueryFunc is invoked once per entity matching a query's component
// signature.
type QueryFunc func(w *World, e EntityID)

// QueryEntities visits every live entity owning all of the given component
// types and invokes fn for each. The alive set is walked in unspecified
// order, testing each required type in turn and short-circuiting at the
// first miss. Creating or destroying entities, or adding or removing
// components, from inside fn while the query runs is undefined behavior;
// collect the IDs and mutate after the query returns.
func (w *World) QueryEntities(ids []ComponentID, fn QueryFunc) {
	pools := make([]componentPool, len(ids))
	for i, id := range ids {
		p, ok := w.pools[id]
		if !ok {
			// No pool means no entity owns this type yet.
			return
		}
		pools[i] = p
	}
	w.entities.Each(func(e EntityID) {
		for _, p := range pools {
			if !p.has(e) {
				return
			}
		}
		fn(w, e)
	})
}

// Each1 visits every entity owning an A, with a handle to the component.
// The same mid-iteration mutation rules as QueryEntities apply; handles are
// valid only for the duration of the callback.
func Each1[A any](w *World, fn func(e EntityID, a *A)) {
	pa, ok := lookupPool[A](w)
	if !ok {
		return
	}
	for i := 0; i < pa.Len(); i++ {
		e := pa.entities[i]
		fn(e, &pa.data[i])
	}
}

// Each2 visits every entity owning both an A and a B.
func Each2[A, B any](w *World, fn func(e EntityID, a *A, b *B)) {
	pa, ok := lookupPool[A](w)
	if !ok {
		return
	}
	pb, ok := lookupPool[B](w)
	if !ok {
		return
	}
	for i := 0; i < pa.Len(); i++ {
		e := pa.entities[i]
		if b, ok := pb.Get(e); ok {
			fn(e, &pa.data[i], b)
		}
	}
}

// Each3 visits every entity owning an A, a B and a C.
func Each3[A, B, C any](w *World, fn func(e EntityID, a *A, b *B, c *C)) {
	pa, ok := lookupPool[A](w)
	if !ok {
		return
	}
	pb, ok := lookupPool[B](w)
	if !ok {
		return
	}
	pc, ok := lookupPool[C](w)
	if !ok {
		return
	}
	for i := 0; i < pa.Len(); i++ {
		e := pa.entities[i]
		b, ok := pb.Get(e)
		if !ok {
			continue
		}
		c, ok := pc.Get(e)
		if !ok {
			continue
		}
		fn(e, &pa.data[i], b, c)
	}
}

// lookupPool resolves T's pool without creating it.
func lookupPool[T any](w *World) (*Pool[T], bool) {
	id, ok := w.registry.Lookup(typeOf[T]())
	if !ok {
		return nil, false
	}
	p, ok := w.pools[id]
	if !ok {
		return nil, false
	}
	return p.(*Pool[T]), true
}

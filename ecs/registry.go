package ecs

import (
	"reflect"
)

// ComponentID identifies a registered component type. IDs are assigned
// sequentially at first registration and stay stable for the life of the
// registry.
type ComponentID uint32

// TypeInfo records the layout metadata of a registered component type.
type TypeInfo struct {
	ID    ComponentID
	Type  reflect.Type
	Size  uintptr
	Align int
	Name  string
}

// ComponentRegistry maps component runtime types to stable small integer IDs
// and keeps the per-type layout metadata used to size pool storage.
type ComponentRegistry struct {
	byType map[reflect.Type]ComponentID
	infos  []TypeInfo
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		byType: make(map[reflect.Type]ComponentID, 16),
		infos:  make([]TypeInfo, 0, 16),
	}
}

// Register assigns an ID to a component type, recording its size, alignment
// and name. Registering a type twice returns the existing ID.
func (r *ComponentRegistry) Register(t reflect.Type) ComponentID {
	if id, ok := r.byType[t]; ok {
		return id
	}
	id := ComponentID(len(r.infos))
	r.byType[t] = id
	r.infos = append(r.infos, TypeInfo{
		ID:    id,
		Type:  t,
		Size:  t.Size(),
		Align: t.Align(),
		Name:  t.String(),
	})
	return id
}

// GetOrRegister resolves a type to its ID, registering it on demand so that
// callers need no explicit pre-registration step.
func (r *ComponentRegistry) GetOrRegister(t reflect.Type) ComponentID {
	return r.Register(t)
}

// Lookup resolves a type to its ID without registering it.
func (r *ComponentRegistry) Lookup(t reflect.Type) (ComponentID, bool) {
	id, ok := r.byType[t]
	return id, ok
}

// GetTypeInfo returns the metadata recorded for id.
func (r *ComponentRegistry) GetTypeInfo(id ComponentID) (TypeInfo, bool) {
	if int(id) >= len(r.infos) {
		return TypeInfo{}, false
	}
	return r.infos[id], true
}

// Len returns the number of registered component types.
func (r *ComponentRegistry) Len() int {
	return len(r.infos)
}

// reset forgets every registration. Used by World teardown, after the pools
// referencing this metadata are gone.
func (r *ComponentRegistry) reset() {
	r.byType = make(map[reflect.Type]ComponentID)
	r.infos = r.infos[:0]
}

// typeOf resolves the reflect.Type key for a component type parameter.
func typeOf[T any]() reflect.Type {
	var zero T
	return reflect.TypeOf(zero)
}

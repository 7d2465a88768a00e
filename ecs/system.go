package ecs

import (
	"go.uber.org/zap"
)

// SystemFunc is a per-frame update callback. Systems hold no state of their
// own beyond what they read and write through the World; stateful systems
// register a method value.
type SystemFunc func(w *World, dt float64)

type namedSystem struct {
	name   string
	update SystemFunc
}

// SystemManager keeps the ordered list of update callbacks run every frame.
// Ordering is pure registration order; there is no dependency graph and no
// priority.
type SystemManager struct {
	systems []namedSystem
	log     *zap.Logger
}

// NewSystemManager creates an empty system list.
func NewSystemManager(log *zap.Logger) *SystemManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &SystemManager{
		systems: make([]namedSystem, 0, 16),
		log:     log,
	}
}

// Add appends a system. The name is diagnostic only, not a key; duplicates
// are permitted.
func (m *SystemManager) Add(fn SystemFunc, name string) {
	m.systems = append(m.systems, namedSystem{name: name, update: fn})
	m.log.Debug("system registered", zap.String("system", name), zap.Int("order", len(m.systems)-1))
}

// RunAll invokes every system in registration order, synchronously, with the
// same world and delta-time. There is no isolation between systems: a panic
// in one aborts the remainder of the frame.
func (m *SystemManager) RunAll(w *World, dt float64) {
	for _, s := range m.systems {
		s.update(w, dt)
	}
}

// Len returns the number of registered systems.
func (m *SystemManager) Len() int {
	return len(m.systems)
}

// Names returns the registered system names in run order.
func (m *SystemManager) Names() []string {
	names := make([]string, len(m.systems))
	for i, s := range m.systems {
		names[i] = s.name
	}
	return names
}

func (m *SystemManager) clear() {
	m.systems = m.systems[:0]
}

// AddSystem registers a per-frame update callback with the world.
func (w *World) AddSystem(fn SystemFunc, name string) {
	w.systems.Add(fn, name)
}

// Update runs all registered systems in registration order. dt is the
// frame's delta-time in seconds, already clamped by the caller.
func (w *World) Update(dt float64) {
	w.systems.RunAll(w, dt)
}

// Systems exposes the system manager, mainly for diagnostics.
func (w *World) Systems() *SystemManager {
	return w.systems
}

// Package components defines the concrete component types the framework's
// built-in systems operate on. They are plain fixed-size value structs; the
// ECS core stores them without knowing anything about them.
package components

import (
	"github.com/Hendrin-Mckay/odingame/ecs"
	"github.com/Hendrin-Mckay/odingame/geom"
)

// Position stores an entity's location in world space, in pixels.
type Position struct {
	geom.Vec2
}

// Velocity stores an entity's movement in pixels per second. The movement
// system integrates it into Position every frame.
type Velocity struct {
	geom.Vec2
}

// Sprite makes an entity drawable: an image from the asset cache plus an
// optional atlas frame within it.
type Sprite struct {
	Image   string  // asset cache key of the image
	Frame   string  // atlas frame name; empty draws the whole image
	Layer   int     // draw order, lower layers first
	OffsetX float32 // drawing offset from Position
	OffsetY float32
}

// Animation advances a Sprite through a named atlas frame sequence.
type Animation struct {
	Sequence string  // atlas sequence name
	Elapsed  float32 // seconds accumulated toward the next frame
	Frame    int     // current index into the sequence
	Loop     bool
	Done     bool // set when a non-looping sequence finishes
}

// Lifetime destroys its entity once the countdown reaches zero.
type Lifetime struct {
	Remaining float32 // seconds
}

// Camera marks the viewport entity. The camera system moves the owning
// entity's Position toward the target each frame; the renderer subtracts
// that position from everything it draws.
type Camera struct {
	Target ecs.EntityID // entity to follow; NilEntity disables following
	Offset geom.Vec2    // fixed offset from the target, e.g. to center the view
	Lerp   float32      // follow speed factor in (0,1]; 1 snaps immediately
}

// Name labels an entity for diagnostics and script lookups. Not unique.
type Name struct {
	Value string
}

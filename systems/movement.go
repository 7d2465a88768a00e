// Package systems provides the framework's built-in systems: movement,
// lifetime, animation and camera follow as per-frame update functions, and
// the sprite renderer driven from the draw phase.
package systems

import (
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
)

// Movement returns the system integrating Velocity into Position.
func Movement() ecs.SystemFunc {
	return func(w *ecs.World, dt float64) {
		ecs.Each2(w, func(_ ecs.EntityID, p *components.Position, v *components.Velocity) {
			p.Vec2 = p.Add(v.Scale(float32(dt)))
		})
	}
}

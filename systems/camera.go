package systems

import (
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
)

// CameraFollow returns the system moving each camera entity's Position
// toward its target's Position plus the camera offset. A missing or dead
// target leaves the camera where it is.
func CameraFollow() ecs.SystemFunc {
	return func(w *ecs.World, dt float64) {
		ecs.Each2(w, func(_ ecs.EntityID, c *components.Camera, p *components.Position) {
			if c.Target == ecs.NilEntity {
				return
			}
			target, ok := ecs.GetComponent[components.Position](w, c.Target)
			if !ok {
				return
			}
			goal := target.Add(c.Offset)
			lerp := c.Lerp
			if lerp <= 0 || lerp > 1 {
				lerp = 1
			}
			p.Vec2 = p.Lerp(goal, lerp)
		})
	}
}

// CameraPosition returns the first camera entity's position, or the origin
// when no camera exists. The renderer subtracts it from everything drawn.
func CameraPosition(w *ecs.World) components.Position {
	var pos components.Position
	found := false
	ecs.Each2(w, func(_ ecs.EntityID, _ *components.Camera, p *components.Position) {
		if !found {
			pos = *p
			found = true
		}
	})
	return pos
}

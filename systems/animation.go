package systems

import (
	"github.com/Hendrin-Mckay/odingame/assets"
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
)

// Animate returns the system advancing Animation components against the
// atlas's sequences and writing the current frame name into the entity's
// Sprite. Entities referencing a sequence the atlas does not define are
// skipped.
func Animate(atlas *assets.Atlas) ecs.SystemFunc {
	return func(w *ecs.World, dt float64) {
		ecs.Each2(w, func(_ ecs.EntityID, a *components.Animation, s *components.Sprite) {
			seq, ok := atlas.Sequences[a.Sequence]
			if !ok || a.Done {
				return
			}
			// A sequence swap can leave Frame past the new sequence's end;
			// restart rather than index a stale position.
			if a.Frame < 0 || a.Frame >= len(seq.Frames) {
				a.Frame = 0
				a.Elapsed = 0
			}
			frameTime := 1 / seq.FPS

			a.Elapsed += float32(dt)
			for a.Elapsed >= frameTime {
				a.Elapsed -= frameTime
				a.Frame++
				if a.Frame < len(seq.Frames) {
					continue
				}
				if a.Loop {
					a.Frame = 0
				} else {
					a.Frame = len(seq.Frames) - 1
					a.Done = true
					break
				}
			}
			s.Frame = seq.Frames[a.Frame]
		})
	}
}

package systems

import (
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
)

// Lifetime returns the system counting down Lifetime components and
// destroying expired entities. Destruction happens after the iteration:
// mutating the entity set mid-query is undefined, so expired IDs are
// collected first and destroyed once the query returns.
func Lifetime() ecs.SystemFunc {
	var expired []ecs.EntityID
	return func(w *ecs.World, dt float64) {
		expired = expired[:0]
		ecs.Each1(w, func(e ecs.EntityID, l *components.Lifetime) {
			l.Remaining -= float32(dt)
			if l.Remaining <= 0 {
				expired = append(expired, e)
			}
		})
		for _, e := range expired {
			w.DestroyEntity(e)
		}
	}
}

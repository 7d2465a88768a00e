// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/pkg/profile"

	"github.com/Hendrin-Mckay/odingame/ecs"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

func main() {
	rounds := 50
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run stresses entity churn: create a batch of entities with two components,
// walk them once, destroy them all, repeat.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(nil)

		for it := 0; it < iters; it++ {
			ids := make([]ecs.EntityID, 0, numEntities)
			for n := 0; n < numEntities; n++ {
				e := w.CreateEntity()
				ecs.AddComponent(w, e, comp1{V: 1, W: 2})
				ecs.AddComponent(w, e, comp2{V: 3, W: 4})
				ids = append(ids, e)
			}
			ecs.Each2(w, func(_ ecs.EntityID, a *comp1, b *comp2) {
				a.V += b.V
				a.W += b.W
			})
			for _, e := range ids {
				w.DestroyEntity(e)
			}
		}
	}
}

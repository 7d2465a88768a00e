// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

func main() {
	rounds := 10
	iters := 10000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(rounds, iters, entities)
	p.Stop()
}

// run stresses steady-state iteration: a fixed population, half of it with a
// third component, queried every iteration through both the alive-set path
// and the dense-pool path.
func run(rounds, iters, numEntities int) {
	for r := 0; r < rounds; r++ {
		w := ecs.NewWorld(nil)
		c1 := ecs.RegisterComponent[comp1](w)
		c2 := ecs.RegisterComponent[comp2](w)

		for i := 0; i < numEntities; i++ {
			e := w.CreateEntity()
			ecs.AddComponent(w, e, comp1{V: 1})
			ecs.AddComponent(w, e, comp2{V: 2})
			if i%2 == 0 {
				ecs.AddComponent(w, e, comp3{V: 3})
			}
		}

		for it := 0; it < iters; it++ {
			ecs.Each3(w, func(_ ecs.EntityID, a *comp1, b *comp2, c *comp3) {
				a.V += b.V + c.V
			})
			w.QueryEntities([]ecs.ComponentID{c1, c2}, func(w *ecs.World, e ecs.EntityID) {
				a, _ := ecs.GetComponent[comp1](w, e)
				b, _ := ecs.GetComponent[comp2](w, e)
				a.W += b.W
			})
		}
	}
}

package data

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/ecs"
	"github.com/Hendrin-Mckay/odingame/geom"
)

// Spawner instantiates templates into a world.
type Spawner struct {
	world     *ecs.World
	templates *TemplateManager
	log       *zap.Logger
}

// NewSpawner creates a spawner bound to one world and one template set.
func NewSpawner(world *ecs.World, templates *TemplateManager, log *zap.Logger) *Spawner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Spawner{world: world, templates: templates, log: log}
}

// Spawn creates an entity from the named template at (x, y), overriding the
// template's own position. Fails when the template is unknown or the entity
// ID space is exhausted.
func (s *Spawner) Spawn(name string, x, y float32) (ecs.EntityID, error) {
	tpl, ok := s.templates.Get(name)
	if !ok {
		return ecs.NilEntity, errors.Errorf("unknown template %q", name)
	}

	e := s.world.CreateEntity()
	if e == ecs.NilEntity {
		return ecs.NilEntity, errors.New("entity ID space exhausted")
	}

	ecs.AddComponent(s.world, e, components.Name{Value: tpl.Name})
	ecs.AddComponent(s.world, e, components.Position{Vec2: geom.V(x, y)})
	if tpl.Velocity != nil {
		ecs.AddComponent(s.world, e, components.Velocity{Vec2: geom.V(tpl.Velocity.DX, tpl.Velocity.DY)})
	}
	if tpl.Sprite != nil {
		ecs.AddComponent(s.world, e, components.Sprite{
			Image: tpl.Sprite.Image,
			Frame: tpl.Sprite.Frame,
			Layer: tpl.Sprite.Layer,
		})
	}
	if tpl.Animation != nil {
		ecs.AddComponent(s.world, e, components.Animation{
			Sequence: tpl.Animation.Sequence,
			Loop:     tpl.Animation.Loop,
		})
	}
	if tpl.Lifetime != nil {
		ecs.AddComponent(s.world, e, components.Lifetime{Remaining: *tpl.Lifetime})
	}

	s.log.Debug("entity spawned",
		zap.String("template", name), zap.Uint32("entity", uint32(e)))
	return e, nil
}

// SpawnAt creates an entity at the template's own position (or the origin
// when the template has none).
func (s *Spawner) SpawnAt(name string) (ecs.EntityID, error) {
	tpl, ok := s.templates.Get(name)
	if !ok {
		return ecs.NilEntity, errors.Errorf("unknown template %q", name)
	}
	var x, y float32
	if tpl.Position != nil {
		x, y = tpl.Position.X, tpl.Position.Y
	}
	return s.Spawn(name, x, y)
}

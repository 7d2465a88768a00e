package main

import (
	"image/color"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/assets"
	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/config"
	"github.com/Hendrin-Mckay/odingame/data"
	"github.com/Hendrin-Mckay/odingame/ecs"
	"github.com/Hendrin-Mckay/odingame/engine"
	"github.com/Hendrin-Mckay/odingame/script"
	"github.com/Hendrin-Mckay/odingame/systems"
)

// playerSpeed is the player's movement speed in pixels per second.
const playerSpeed = 120

// PlayScene is the demo playfield: a world populated from templates and
// level scripts, with a player entity driven by the input axis and a camera
// following it.
type PlayScene struct {
	log      *zap.Logger
	world    *ecs.World
	renderer *systems.Renderer
	scripts  *script.Engine
	player   ecs.EntityID
}

// NewPlayScene builds the world: renderer and atlas, templates, level
// scripts, the player and its camera, and the system list.
func NewPlayScene(cfg *config.Config, cache *assets.Cache, log *zap.Logger) (*PlayScene, error) {
	world := ecs.NewWorld(log)

	renderer, err := systems.NewRenderer(cache, filepath.Join(cfg.Assets.Dir, "sprites.atlas.yaml"), log)
	if err != nil {
		return nil, errors.Wrap(err, "create renderer")
	}

	templates := data.NewTemplateManager(log)
	if err := templates.LoadDir(cfg.Assets.Templates); err != nil {
		return nil, errors.Wrap(err, "load templates")
	}
	spawner := data.NewSpawner(world, templates, log)

	scripts := script.NewEngine(spawner, log)
	if err := scripts.LoadDir(cfg.Assets.Scripts); err != nil {
		return nil, errors.Wrap(err, "run level scripts")
	}

	s := &PlayScene{
		log:      log,
		world:    world,
		renderer: renderer,
		scripts:  scripts,
	}

	player, err := spawner.SpawnAt("player")
	if err != nil {
		// Playable content is optional; the scene still runs whatever the
		// level scripts spawned.
		log.Warn("no player template", zap.Error(err))
	} else {
		s.player = player
		camera := world.CreateEntity()
		ecs.AddComponent(world, camera, components.Position{})
		ecs.AddComponent(world, camera, components.Camera{Target: player, Lerp: 0.15})
	}

	world.AddSystem(systems.Movement(), "movement")
	world.AddSystem(systems.Lifetime(), "lifetime")
	world.AddSystem(systems.Animate(renderer.Atlas()), "animation")
	world.AddSystem(systems.CameraFollow(), "camera")

	log.Info("play scene ready",
		zap.Int("entities", world.EntityCount()),
		zap.Int("templates", templates.Len()))
	return s, nil
}

// Update steers the player from the input axis and advances the world.
func (s *PlayScene) Update(e *engine.Engine, dt float64) error {
	in := e.Input()
	if in.PausePressed {
		e.Scenes().Push(NewPauseScene())
		return nil
	}

	if s.player != ecs.NilEntity {
		if v, ok := ecs.GetComponent[components.Velocity](s.world, s.player); ok {
			v.Vec2 = in.Axis.Scale(playerSpeed)
		}
	}

	s.world.Update(dt)
	return nil
}

// Draw renders the world.
func (s *PlayScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 32, A: 255})
	s.renderer.Draw(s.world, screen)
}

// Close tears the scene down: scripts, renderer references, then the world.
func (s *PlayScene) Close() {
	s.scripts.Close()
	s.renderer.Close()
	s.world.Destroy()
}

// PauseScene is a translucent overlay freezing the scene beneath it.
type PauseScene struct {
	overlay *ebiten.Image
}

// NewPauseScene creates the overlay scene.
func NewPauseScene() *PauseScene {
	return &PauseScene{}
}

// Update pops the scene when the pause key is pressed again.
func (s *PauseScene) Update(e *engine.Engine, dt float64) error {
	if e.Input().PausePressed {
		e.Scenes().Pop()
	}
	return nil
}

// Draw dims the playfield and prints the resume hint.
func (s *PauseScene) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if s.overlay == nil || s.overlay.Bounds().Dx() != w || s.overlay.Bounds().Dy() != h {
		s.overlay = ebiten.NewImage(w, h)
		s.overlay.Fill(color.RGBA{A: 160})
	}
	screen.DrawImage(s.overlay, nil)
	ebitenutil.DebugPrintAt(screen, "PAUSED (press Escape to resume)", w/2-90, h/2)
}

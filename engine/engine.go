// Package engine is the presentation boundary of the framework: the ebiten
// window and frame loop, per-frame timing with delta clamping, explicit
// input state, the scene stack and audio playback. The ECS core knows
// nothing about it; the engine only feeds delta-time into scene updates.
package engine

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Hendrin-Mckay/odingame/assets"
	"github.com/Hendrin-Mckay/odingame/config"
)

// MaxDelta caps the delta-time passed into scene updates, in seconds. A
// stalled frame (debugger pause, window drag) resumes as one long-but-sane
// step instead of teleporting every moving entity.
const MaxDelta = 0.05

// frameTimer measures wall-clock time between frames and clamps the result.
type frameTimer struct {
	last time.Time
}

// delta returns the clamped seconds since the previous call. The first call
// returns zero.
func (t *frameTimer) delta(now time.Time) float64 {
	if t.last.IsZero() {
		t.last = now
		return 0
	}
	dt := now.Sub(t.last).Seconds()
	t.last = now
	return clampDelta(dt)
}

// clampDelta bounds a raw frame delta to [0, MaxDelta].
func clampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxDelta {
		return MaxDelta
	}
	return dt
}

// Engine implements ebiten.Game. Each frame it samples input, advances the
// top scene with the clamped delta, prunes the asset cache, and draws the
// scene stack bottom-up.
type Engine struct {
	log    *zap.Logger
	cfg    *config.Config
	cache  *assets.Cache
	scenes *SceneStack
	input  Input
	timer  frameTimer
}

// New creates an engine around an empty scene stack. A nil logger disables
// diagnostics.
func New(cfg *config.Config, cache *assets.Cache, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{
		log:    log,
		cfg:    cfg,
		cache:  cache,
		scenes: NewSceneStack(log),
	}
}

// Scenes returns the engine's scene stack.
func (e *Engine) Scenes() *SceneStack {
	return e.scenes
}

// Cache returns the engine's asset cache.
func (e *Engine) Cache() *assets.Cache {
	return e.cache
}

// Input returns the input state sampled at the top of the current frame.
// Scenes read it during Update; the pointer stays valid for the engine's
// lifetime.
func (e *Engine) Input() *Input {
	return &e.input
}

// Update runs one logical frame. Part of ebiten.Game.
func (e *Engine) Update() error {
	dt := e.timer.delta(time.Now())
	e.input.Sample()

	if err := e.scenes.Update(e, dt); err != nil {
		return err
	}
	e.cache.Prune()
	return nil
}

// Draw renders the scene stack. Part of ebiten.Game.
func (e *Engine) Draw(screen *ebiten.Image) {
	e.scenes.Draw(screen)
}

// Layout reports the logical screen size. Part of ebiten.Game.
func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return e.cfg.Window.Width, e.cfg.Window.Height
}

// Run configures the window from the engine's config and enters the ebiten
// frame loop. It blocks until the window closes or a scene returns an error.
func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.cfg.Window.Width, e.cfg.Window.Height)
	ebiten.SetWindowTitle(e.cfg.Window.Title)
	ebiten.SetFullscreen(e.cfg.Window.Fullscreen)

	e.log.Info("engine starting",
		zap.Int("width", e.cfg.Window.Width),
		zap.Int("height", e.cfg.Window.Height),
		zap.Bool("fullscreen", e.cfg.Window.Fullscreen))

	if err := ebiten.RunGame(e); err != nil {
		return errors.Wrap(err, "frame loop")
	}
	return nil
}

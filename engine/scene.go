package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

// Scene is one screen of the game: the playfield, a pause overlay, a menu.
// Update receives the engine (for input, the scene stack and the asset
// cache) and the clamped frame delta in seconds.
type Scene interface {
	Update(e *Engine, dt float64) error
	Draw(screen *ebiten.Image)
}

// SceneStack holds the active scenes. Only the top scene updates each
// frame; every scene draws, bottom-up, so an overlay like a pause screen
// renders on top of the frozen playfield beneath it.
type SceneStack struct {
	scenes []Scene
	log    *zap.Logger
}

// NewSceneStack creates an empty stack.
func NewSceneStack(log *zap.Logger) *SceneStack {
	if log == nil {
		log = zap.NewNop()
	}
	return &SceneStack{log: log}
}

// Push makes scene the active one.
func (s *SceneStack) Push(scene Scene) {
	s.scenes = append(s.scenes, scene)
	s.log.Debug("scene pushed", zap.Int("depth", len(s.scenes)))
}

// Pop removes the active scene, returning it. Popping an empty stack
// returns nil.
func (s *SceneStack) Pop() Scene {
	n := len(s.scenes)
	if n == 0 {
		s.log.Warn("pop of empty scene stack")
		return nil
	}
	top := s.scenes[n-1]
	s.scenes[n-1] = nil
	s.scenes = s.scenes[:n-1]
	s.log.Debug("scene popped", zap.Int("depth", len(s.scenes)))
	return top
}

// Top returns the active scene, nil when the stack is empty.
func (s *SceneStack) Top() Scene {
	if len(s.scenes) == 0 {
		return nil
	}
	return s.scenes[len(s.scenes)-1]
}

// Len returns the number of stacked scenes.
func (s *SceneStack) Len() int {
	return len(s.scenes)
}

// Update advances the top scene. An empty stack is a quiet no-op so the
// window can outlive the last scene during shutdown.
func (s *SceneStack) Update(e *Engine, dt float64) error {
	top := s.Top()
	if top == nil {
		return nil
	}
	return top.Update(e, dt)
}

// Draw renders every scene bottom-up.
func (s *SceneStack) Draw(screen *ebiten.Image) {
	for _, scene := range s.scenes {
		scene.Draw(screen)
	}
}

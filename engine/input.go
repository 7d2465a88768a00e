package engine

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Hendrin-Mckay/odingame/geom"
)

// Input is the input state for one frame, sampled once at the top of Update
// and read by scenes. It is an explicit struct passed by reference; there is
// no global input singleton.
type Input struct {
	// Axis is the normalized movement direction from the arrow keys and
	// WASD, zero when nothing is held.
	Axis geom.Vec2

	// Action is true while the primary action key (Space) is held.
	Action bool

	// PausePressed is true only on the frame the pause key (Escape) went
	// down.
	PausePressed bool
}

// Sample reads the current keyboard state into the struct, replacing the
// previous frame's values.
func (in *Input) Sample() {
	var axis geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA) {
		axis.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD) {
		axis.X += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) {
		axis.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS) {
		axis.Y += 1
	}
	in.Axis = axis.Normalize()

	in.Action = ebiten.IsKeyPressed(ebiten.KeySpace)
	in.PausePressed = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

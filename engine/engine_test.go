package engine

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Hendrin-Mckay/odingame/assets"
)

func TestClampDelta(t *testing.T) {
	assert.Equal(t, 0.0, clampDelta(-1))
	assert.Equal(t, 0.016, clampDelta(0.016))
	assert.Equal(t, MaxDelta, clampDelta(MaxDelta))
	assert.Equal(t, MaxDelta, clampDelta(3.5), "a stalled frame resumes with one clamped step")
}

func TestFrameTimer(t *testing.T) {
	var ft frameTimer
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, ft.delta(base), "first frame has no previous timestamp")
	assert.InDelta(t, 0.016, ft.delta(base.Add(16*time.Millisecond)), 1e-9)
	assert.Equal(t, MaxDelta, ft.delta(base.Add(10*time.Second)), "long stall clamps")
}

type recordScene struct {
	updates int
	draws   int
	dts     []float64
}

func (s *recordScene) Update(_ *Engine, dt float64) error {
	s.updates++
	s.dts = append(s.dts, dt)
	return nil
}

func (s *recordScene) Draw(_ *ebiten.Image) { s.draws++ }

func TestSceneStackUpdatesTopDrawsAll(t *testing.T) {
	stack := NewSceneStack(zaptest.NewLogger(t))
	below := &recordScene{}
	top := &recordScene{}
	stack.Push(below)
	stack.Push(top)

	assert.NoError(t, stack.Update(nil, 0.016))
	assert.Equal(t, 0, below.updates, "only the top scene updates")
	assert.Equal(t, 1, top.updates)
	assert.Equal(t, []float64{0.016}, top.dts)

	stack.Draw(nil)
	assert.Equal(t, 1, below.draws, "every stacked scene draws")
	assert.Equal(t, 1, top.draws)

	assert.Same(t, top, stack.Pop())
	assert.Same(t, below, stack.Top())
}

// TestStopMusicReleasesCacheReference pins the acquire/release pairing of
// the music path: stopping the track must drop the reference PlayMusic
// took, or the file's bytes survive every prune. The player is built
// without an audio context; only the cache bookkeeping is under test.
func TestStopMusicReleasesCacheReference(t *testing.T) {
	cache := assets.NewCache(zaptest.NewLogger(t))
	path := filepath.Join(t.TempDir(), "theme.mp3")
	require.NoError(t, os.WriteFile(path, []byte{1, 2, 3}, 0o644))

	// The state PlayMusic leaves behind on success: one cache reference
	// held under musicPath.
	_, err := cache.AcquireAudio(path)
	require.NoError(t, err)
	player := &AudioPlayer{cache: cache, log: zaptest.NewLogger(t), musicPath: path}
	require.Equal(t, 1, cache.Refs(path))

	player.StopMusic()
	assert.Equal(t, 0, cache.Refs(path))
	assert.Equal(t, "", player.musicPath)
	assert.Equal(t, 1, cache.Prune(), "the stopped track is prunable")

	// A second stop is a no-op, not a double release.
	player.StopMusic()
	assert.Equal(t, 0, cache.Len())
}

func TestSceneStackEmptyIsQuiet(t *testing.T) {
	stack := NewSceneStack(zaptest.NewLogger(t))
	assert.Nil(t, stack.Pop())
	assert.Nil(t, stack.Top())
	assert.NoError(t, stack.Update(nil, 0.016))
}

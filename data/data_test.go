package data_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Hendrin-Mckay/odingame/components"
	"github.com/Hendrin-Mckay/odingame/data"
	"github.com/Hendrin-Mckay/odingame/ecs"
	"github.com/Hendrin-Mckay/odingame/geom"
)

const droneTemplate = `
name: drone
velocity: {dx: 12, dy: -3}
sprite:
  image: assets/sprites.png
  frame: walk_0
  layer: 1
animation:
  sequence: walk
  loop: true
lifetime: 4.5
`

func loadTemplates(t *testing.T, files map[string]string) *data.TemplateManager {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	m := data.NewTemplateManager(zaptest.NewLogger(t))
	require.NoError(t, m.LoadDir(dir))
	return m
}

func TestLoadDirSkipsNonYAML(t *testing.T) {
	m := loadTemplates(t, map[string]string{
		"drone.yaml": droneTemplate,
		"notes.txt":  "not a template",
	})
	assert.Equal(t, 1, m.Len())

	tpl, ok := m.Get("drone")
	require.True(t, ok)
	assert.Equal(t, float32(12), tpl.Velocity.DX)
	require.NotNil(t, tpl.Lifetime)
	assert.Equal(t, float32(4.5), *tpl.Lifetime)
}

func TestTemplateNameDefaultsToFileName(t *testing.T) {
	m := loadTemplates(t, map[string]string{
		"crate.yaml": "sprite: {image: assets/sprites.png, frame: crate}\n",
	})
	_, ok := m.Get("crate")
	assert.True(t, ok)
}

func TestSpawnCreatesExactlyTemplatedComponents(t *testing.T) {
	m := loadTemplates(t, map[string]string{"drone.yaml": droneTemplate})
	w := ecs.NewWorld(zaptest.NewLogger(t))
	s := data.NewSpawner(w, m, zaptest.NewLogger(t))

	e, err := s.Spawn("drone", 30, 40)
	require.NoError(t, err)
	require.NotEqual(t, ecs.NilEntity, e)

	p, ok := ecs.GetComponent[components.Position](w, e)
	require.True(t, ok)
	assert.Equal(t, geom.V(30, 40), p.Vec2, "spawn position overrides the template")

	v, ok := ecs.GetComponent[components.Velocity](w, e)
	require.True(t, ok)
	assert.Equal(t, geom.V(12, -3), v.Vec2)

	sp, ok := ecs.GetComponent[components.Sprite](w, e)
	require.True(t, ok)
	assert.Equal(t, "walk_0", sp.Frame)
	assert.Equal(t, 1, sp.Layer)

	assert.True(t, ecs.HasComponent[components.Animation](w, e))
	assert.True(t, ecs.HasComponent[components.Lifetime](w, e))

	n, ok := ecs.GetComponent[components.Name](w, e)
	require.True(t, ok)
	assert.Equal(t, "drone", n.Value)
}

func TestSpawnSparseTemplateOmitsComponents(t *testing.T) {
	m := loadTemplates(t, map[string]string{
		"marker.yaml": "position: {x: 7, y: 8}\n",
	})
	w := ecs.NewWorld(zaptest.NewLogger(t))
	s := data.NewSpawner(w, m, zaptest.NewLogger(t))

	e, err := s.SpawnAt("marker")
	require.NoError(t, err)

	p, ok := ecs.GetComponent[components.Position](w, e)
	require.True(t, ok)
	assert.Equal(t, geom.V(7, 8), p.Vec2)

	assert.False(t, ecs.HasComponent[components.Velocity](w, e))
	assert.False(t, ecs.HasComponent[components.Sprite](w, e))
	assert.False(t, ecs.HasComponent[components.Lifetime](w, e))
}

func TestSpawnUnknownTemplate(t *testing.T) {
	m := data.NewTemplateManager(zaptest.NewLogger(t))
	w := ecs.NewWorld(zaptest.NewLogger(t))
	s := data.NewSpawner(w, m, zaptest.NewLogger(t))

	e, err := s.Spawn("ghost", 0, 0)
	assert.Error(t, err)
	assert.Equal(t, ecs.NilEntity, e)
	assert.Equal(t, 0, w.EntityCount(), "failed spawn leaks no entity")
}

func TestLoadFileMalformed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("velocity: [not, a, map]"), 0o644))

	m := data.NewTemplateManager(zaptest.NewLogger(t))
	assert.Error(t, m.LoadFile(path))
}

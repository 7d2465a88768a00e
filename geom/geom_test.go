package geom_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Hendrin-Mckay/odingame/geom"
)

func TestVec2Arithmetic(t *testing.T) {
	a := geom.V(3, 4)
	b := geom.V(1, -2)

	assert.Equal(t, geom.V(4, 2), a.Add(b))
	assert.Equal(t, geom.V(2, 6), a.Sub(b))
	assert.Equal(t, geom.V(6, 8), a.Scale(2))
	assert.Equal(t, float32(-5), a.Dot(b))
	assert.Equal(t, float32(5), a.Len())
}

func TestVec2Normalize(t *testing.T) {
	assert.Equal(t, geom.Vec2{}, geom.Vec2{}.Normalize())

	n := geom.V(0, -7).Normalize()
	assert.Equal(t, geom.V(0, -1), n)
}

func TestVec2Lerp(t *testing.T) {
	a := geom.V(0, 0)
	b := geom.V(10, 20)

	assert.Equal(t, geom.V(5, 10), a.Lerp(b, 0.5))
	assert.Equal(t, b, a.Lerp(b, 1))
	assert.Equal(t, b, a.Lerp(b, 2)) // t clamps to [0,1]
	assert.Equal(t, a, a.Lerp(b, -1))
}

func TestRect(t *testing.T) {
	r := geom.R(0, 0, 10, 5)

	assert.Equal(t, float32(10), r.W())
	assert.Equal(t, float32(5), r.H())
	assert.True(t, r.Contains(geom.V(0, 0)))
	assert.False(t, r.Contains(geom.V(10, 0))) // max edge is exclusive

	assert.True(t, r.Overlaps(geom.R(9, 4, 20, 20)))
	assert.False(t, r.Overlaps(geom.R(10, 0, 20, 5)))

	assert.Equal(t, geom.R(1, 1, 11, 6), r.Translate(geom.V(1, 1)))
}

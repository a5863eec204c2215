package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVecOps(t *testing.T) {
	a := V3(1, 2, 3)
	b := V3(4, 6, 3)

	assert.Equal(t, V3(5, 8, 6), a.Add(b))
	assert.Equal(t, V3(3, 4, 0), b.Sub(a))
	assert.Equal(t, V3(2, 4, 6), a.Scale(2))
	assert.InDelta(t, 5.0, b.Sub(a).Len(), 1e-9)
}

func TestNormalizeZeroVector(t *testing.T) {
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 1.0, V3(3, 0, 4).Normalize().Len(), 1e-9)
}

func TestDistXZIgnoresHeight(t *testing.T) {
	a := V3(0, 100, 0)
	b := V3(3, -50, 4)
	assert.InDelta(t, 5.0, DistXZ(a, b), 1e-9)
}

func TestDirXZ(t *testing.T) {
	d := DirXZ(V3(0, 5, 0), V3(10, 0, 0))
	assert.InDelta(t, 1.0, d.X, 1e-9)
	assert.Zero(t, d.Y)
	assert.Zero(t, d.Z)

	assert.Equal(t, Vec3{}, DirXZ(V3(2, 0, 2), V3(2, 9, 2)))
}

func TestHeadingXZ(t *testing.T) {
	assert.InDelta(t, 0, HeadingXZ(V3(0, 0, 0), V3(5, 0, 0)), 1e-9)
	assert.InDelta(t, math.Pi/2, HeadingXZ(V3(0, 0, 0), V3(0, 0, 5)), 1e-9)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1.0, Clamp(-3, 1, 9))
	assert.Equal(t, 9.0, Clamp(12, 1, 9))
	assert.Equal(t, 5.0, Clamp(5, 1, 9))
}

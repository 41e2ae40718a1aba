package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelmap/internal/geom"
)

func TestTransformSquare(t *testing.T) {
	tr := NewTransform(DefaultSurface(), geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10})
	assert.Equal(t, 60.0, tr.Scale)

	x, y := tr.ToSurface(0, 0)
	assert.Equal(t, []float64{100, 700}, []float64{x, y})
	x, y = tr.ToSurface(10, 10)
	assert.Equal(t, []float64{700, 100}, []float64{x, y})
}

func TestTransformUniformScale(t *testing.T) {
	tr := NewTransform(DefaultSurface(), geom.BBox{MinX: 0, MinY: 0, MaxX: 20, MaxY: 10})
	assert.Equal(t, 30.0, tr.Scale)
	x, y := tr.ToSurface(20, 10)
	assert.InDelta(t, 700, x, 1e-9)
	assert.InDelta(t, 400, y, 1e-9)
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(DefaultSurface(), geom.BBox{MinX: 2114.65, MinY: 6005.93, MaxX: 2124.31, MaxY: 6014.06})
	for _, p := range [][2]float64{{2114.65, 6005.93}, {2120, 6010}, {2124.31, 6014.06}, {0, 0}} {
		sx, sy := tr.ToSurface(p[0], p[1])
		x, y := tr.ToWorld(sx, sy)
		assert.InDelta(t, p[0], x, 1e-6)
		assert.InDelta(t, p[1], y, 1e-6)
	}
}

func TestTransformDegenerate(t *testing.T) {
	tr := NewTransform(DefaultSurface(), geom.BBox{MinX: 5, MinY: 5, MaxX: 5, MaxY: 5})
	assert.Equal(t, 1.0, tr.Scale)
	x, y := tr.ToSurface(5, 5)
	assert.Equal(t, []float64{400, 400}, []float64{x, y})

	// a flat row of points keeps the X axis in charge
	tr = NewTransform(DefaultSurface(), geom.BBox{MinX: 0, MinY: 3, MaxX: 10, MaxY: 3})
	assert.Equal(t, 60.0, tr.Scale)
}

func TestForPoints(t *testing.T) {
	_, ok := ForPoints(DefaultSurface(), nil)
	assert.False(t, ok)

	tr, ok := ForPoints(DefaultSurface(),
		[]geom.Point3D{{ID: "a", X: 0, Y: 0}},
		[]geom.Point3D{{ID: "b", X: 10, Y: 10}},
	)
	require.True(t, ok)
	assert.Equal(t, 60.0, tr.Scale)
}

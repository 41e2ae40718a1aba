package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecords(t *testing.T) {
	in := "a 1 2 3\r\nb\t4\t5\t6\r\n\r\n   \nc 7 x\rd 1.5 -2.25 0.001"
	points, malformed := ParseRecords(in)
	require.Len(t, points, 4)
	assert.Equal(t, 1, malformed)

	assert.Equal(t, pt("a", 1, 2, 3), points[0])
	assert.Equal(t, pt("b", 4, 5, 6), points[1])
	assert.Equal(t, "c", points[2].ID)
	assert.Equal(t, 7.0, points[2].X)
	assert.True(t, math.IsNaN(points[2].Y))
	assert.True(t, math.IsNaN(points[2].Z))
	assert.False(t, points[2].Valid())
	assert.Equal(t, pt("d", 1.5, -2.25, 0.001), points[3])
}

func TestParseRecordsEmpty(t *testing.T) {
	points, malformed := ParseRecords("\n\n")
	assert.Empty(t, points)
	assert.Zero(t, malformed)
}

func TestFormatRecordsRoundTrip(t *testing.T) {
	src := []Point3D{pt("1", 2124.252, 6011.666, 8.152), pt("p2", -1, 0, 0.5)}
	out := FormatRecords(src)
	assert.Equal(t, "1\t2124.252\t6011.666\t8.152\np2\t-1.000\t0.000\t0.500\n", out)

	back, malformed := ParseRecords(out)
	assert.Zero(t, malformed)
	assert.Equal(t, src, back)
}

func TestBounds(t *testing.T) {
	b, ok := Bounds(
		[]Point3D{pt("a", 1, 5, 0), pt("nan", math.NaN(), 100, 0)},
		[]Point3D{pt("b", -2, 3, 0), pt("c", 4, 7, math.NaN())},
	)
	require.True(t, ok)
	assert.Equal(t, BBox{MinX: -2, MinY: 3, MaxX: 4, MaxY: 7}, b)
	assert.Equal(t, 6.0, b.Width())
	assert.Equal(t, 4.0, b.Height())

	_, ok = Bounds(nil, []Point3D{pt("x", math.NaN(), 0, 0)})
	assert.False(t, ok)
}

func TestFind(t *testing.T) {
	points := []Point3D{pt("a", 1, 0, 0), pt("b", 2, 0, 0)}
	p, ok := Find(points, "b")
	require.True(t, ok)
	assert.Equal(t, 2.0, p.X)
	_, ok = Find(points, "z")
	assert.False(t, ok)
}

package annotate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelmap/internal/geom"
)

var (
	refA = geom.Point3D{ID: "A", X: 0, Y: 0}
	refB = geom.Point3D{ID: "B", X: 3, Y: 0}
	refC = geom.Point3D{ID: "C", X: 3, Y: 4}
	m1   = geom.Point3D{ID: "1", X: 1, Y: 1}
)

func TestClickInactive(t *testing.T) {
	tool := New()
	assert.False(t, tool.Click(refA, true))
	assert.Empty(t, tool.Current())
}

func TestDrawCommitsOnMeasuredClick(t *testing.T) {
	tool := New()
	assert.Equal(t, Drawing, tool.Toggle())
	tool.Click(refA, true)
	tool.Click(refB, true)
	tool.Click(refC, true)
	assert.Len(t, tool.Current(), 3)

	tool.Click(m1, false)
	assert.Empty(t, tool.Current())
	require.Len(t, tool.Polylines(), 1)
	assert.Equal(t, Polyline{refA, refB, refC}, tool.Polylines()[0])
	assert.Equal(t, Drawing, tool.Mode())
	assert.InDelta(t, 7.0, tool.Polylines()[0].Length(), 1e-9)
}

func TestToggleOffCommits(t *testing.T) {
	tool := New()
	tool.Toggle()
	tool.Click(refA, true)
	tool.Click(refB, true)
	assert.Equal(t, Inactive, tool.Toggle())
	assert.Len(t, tool.Polylines(), 1)
}

func TestSinglePointDiscarded(t *testing.T) {
	tool := New()
	tool.Toggle()
	tool.Click(refA, true)
	tool.Click(m1, false)
	assert.Empty(t, tool.Polylines())
	assert.Empty(t, tool.Current())
}

func TestAuto(t *testing.T) {
	tool := New()
	tool.Toggle()
	tool.Click(refC, true)

	require.True(t, tool.Auto([]geom.Point3D{refA, refB, refC}))
	assert.Equal(t, Inactive, tool.Mode())
	assert.Empty(t, tool.Current())

	lines := tool.Polylines()
	require.Len(t, lines, 1)
	assert.Equal(t, Polyline{refA, refB, refC, refA}, lines[0])
	assert.True(t, lines[0].Closed())
	assert.InDelta(t, 12.0, lines[0].Length(), 1e-9)

	assert.False(t, tool.Auto([]geom.Point3D{refA}))
	assert.Len(t, tool.Polylines(), 1)
}

func TestClear(t *testing.T) {
	tool := New()
	tool.Auto([]geom.Point3D{refA, refB, refC})
	tool.Toggle()
	tool.Click(refA, true)
	tool.Clear()
	assert.Empty(t, tool.Polylines())
	assert.Empty(t, tool.Current())
	assert.Equal(t, Drawing, tool.Mode())
}

func TestRubberBand(t *testing.T) {
	tool := New()
	tool.MoveCursor(1, 1)
	_, _, _, ok := tool.RubberBand()
	assert.False(t, ok)

	tool.Toggle()
	tool.Click(refB, true)
	_, _, _, ok = tool.RubberBand()
	assert.False(t, ok)

	tool.MoveCursor(9, 8)
	from, x, y, ok := tool.RubberBand()
	require.True(t, ok)
	assert.Equal(t, refB, from)
	assert.Equal(t, []float64{9, 8}, []float64{x, y})

	tool.Toggle()
	_, _, _, ok = tool.RubberBand()
	assert.False(t, ok)
}

func TestPolylinesAreCopies(t *testing.T) {
	tool := New()
	tool.Auto([]geom.Point3D{refA, refB})
	lines := tool.Polylines()
	lines[0][0].ID = "changed"
	assert.Equal(t, "A", tool.Polylines()[0][0].ID)
}

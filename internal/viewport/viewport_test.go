package viewport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViewport() *Viewport {
	return New(DefaultSurface(), DefaultZoomLimits())
}

func TestWheelZoomKeepsCursorFixed(t *testing.T) {
	v := newViewport()
	require.True(t, v.Wheel(200, 300, true))

	sx, sy := v.ElementToSurface(200, 300)
	assert.InDelta(t, 200, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)
	assert.InDelta(t, 1.1, v.Zoom(), 1e-9)

	require.True(t, v.Wheel(600, 100, false))
	sx, sy = v.ElementToSurface(600, 100)
	x0, y0 := v.ElementToSurface(0, 0)
	assert.InDelta(t, 1.0, v.Zoom(), 1e-9)
	assert.Less(t, x0, sx)
	assert.Less(t, y0, sy)
}

func TestSurfaceElementRoundTrip(t *testing.T) {
	v := newViewport()
	v.ZoomIn()
	v.Wheel(120, 700, true)
	ex, ey := v.SurfaceToElement(321, 456)
	sx, sy := v.ElementToSurface(ex, ey)
	assert.InDelta(t, 321, sx, 1e-9)
	assert.InDelta(t, 456, sy, 1e-9)
}

func TestZoomLimits(t *testing.T) {
	v := newViewport()
	n := 0
	for v.ZoomIn() {
		n++
		require.Less(t, n, 100)
	}
	assert.LessOrEqual(t, v.Zoom(), DefaultZoomLimits().MaxScale)
	assert.Greater(t, v.Zoom(), DefaultZoomLimits().MaxScale/1.2)

	v.Reset()
	for v.ZoomOut() {
	}
	assert.GreaterOrEqual(t, v.Zoom(), DefaultZoomLimits().MinScale)
}

func TestZoomPrevious(t *testing.T) {
	v := newViewport()
	full := v.Window()
	assert.False(t, v.CanZoomPrevious())
	assert.False(t, v.ZoomPrevious())
	assert.Equal(t, full, v.Window())

	v.ZoomIn()
	first := v.Window()
	v.Wheel(100, 100, true)
	v.Wheel(700, 500, false)
	assert.Equal(t, 4, v.History().Len())

	require.True(t, v.ZoomPrevious())
	require.True(t, v.ZoomPrevious())
	assert.Equal(t, first, v.Window())
	assert.Equal(t, 1, v.History().Cursor())

	require.True(t, v.ZoomPrevious())
	assert.Equal(t, full, v.Window())
	assert.False(t, v.ZoomPrevious())
	assert.Equal(t, full, v.Window())
}

func TestZoomAfterPreviousDropsForwardEntries(t *testing.T) {
	v := newViewport()
	v.ZoomIn()
	v.ZoomIn()
	v.ZoomPrevious()
	assert.True(t, v.History().CanNext())

	v.Wheel(10, 10, true)
	assert.False(t, v.History().CanNext())
	assert.Equal(t, 3, v.History().Len())

	w, ok := v.History().Previous()
	require.True(t, ok)
	_, ok = v.History().Next()
	require.True(t, ok)
	assert.NotEqual(t, w, v.History().Current())
}

func TestDragPansWithoutHistory(t *testing.T) {
	v := newViewport()
	assert.False(t, v.DragTo(50, 50))

	v.BeginDrag(100, 100)
	assert.True(t, v.Dragging())
	require.True(t, v.DragTo(150, 120))
	assert.Equal(t, Window{X: -50, Y: -20, Width: 800, Height: 800}, v.Window())

	v.EndDrag()
	assert.False(t, v.DragTo(300, 300))
	assert.Equal(t, Window{X: -50, Y: -20, Width: 800, Height: 800}, v.Window())
	assert.Equal(t, 1, v.History().Len())
}

func TestDragScalesWithZoom(t *testing.T) {
	v := newViewport()
	v.ZoomIn()
	before := v.Window()
	v.BeginDrag(0, 0)
	v.DragTo(120, 0)
	v.EndDrag()
	assert.InDelta(t, before.X-100, v.Window().X, 1e-9)
	assert.Equal(t, before.Y, v.Window().Y)
}

func TestResetClearsHistory(t *testing.T) {
	v := newViewport()
	v.ZoomIn()
	v.BeginDrag(0, 0)
	v.Reset()
	assert.Equal(t, Full(DefaultSurface()), v.Window())
	assert.Equal(t, 1, v.History().Len())
	assert.False(t, v.Dragging())
}

package viewport

// ZoomLimits configure zoom steps and the allowed magnification range.
type ZoomLimits struct {
	WheelFactor  float64
	ButtonFactor float64
	MinScale     float64
	MaxScale     float64
}

// DefaultZoomLimits uses 1.1 per wheel notch and 1.2 per button press.
func DefaultZoomLimits() ZoomLimits {
	return ZoomLimits{WheelFactor: 1.1, ButtonFactor: 1.2, MinScale: 0.05, MaxScale: 64}
}

// Viewport owns the live view window, its zoom history and the drag state.
//
// Positions passed to Wheel and the drag methods are element coordinates: the
// rendered surface element is Surface.Width x Surface.Height pixels and the
// window is stretched over it, like an SVG viewBox.
type Viewport struct {
	surface Surface
	limits  ZoomLimits
	window  Window
	history *History

	dragging     bool
	dragX, dragY float64
}

// New returns a viewport showing the full surface.
func New(s Surface, limits ZoomLimits) *Viewport {
	w := Full(s)
	return &Viewport{surface: s, limits: limits, window: w, history: NewHistory(w)}
}

func (v *Viewport) Surface() Surface   { return v.surface }
func (v *Viewport) Window() Window     { return v.window }
func (v *Viewport) History() *History  { return v.history }
func (v *Viewport) Dragging() bool     { return v.dragging }
func (v *Viewport) Limits() ZoomLimits { return v.limits }

// Zoom is the current magnification relative to the full surface.
func (v *Viewport) Zoom() float64 {
	if v.window.Width == 0 {
		return 1
	}
	return v.surface.Width / v.window.Width
}

// SurfaceToElement maps a surface position to element pixels through the window.
func (v *Viewport) SurfaceToElement(sx, sy float64) (float64, float64) {
	w := v.window
	return (sx - w.X) * v.surface.Width / w.Width, (sy - w.Y) * v.surface.Height / w.Height
}

// ElementToSurface is the inverse of SurfaceToElement.
func (v *Viewport) ElementToSurface(ex, ey float64) (float64, float64) {
	w := v.window
	return w.X + ex*w.Width/v.surface.Width, w.Y + ey*w.Height/v.surface.Height
}

// Wheel zooms one notch anchored at the element position under the cursor.
func (v *Viewport) Wheel(ex, ey float64, in bool) bool {
	cx, cy := v.ElementToSurface(ex, ey)
	return v.zoomAt(cx, cy, v.limits.WheelFactor, in)
}

// ZoomIn zooms one button step around the window centre.
func (v *Viewport) ZoomIn() bool {
	cx, cy := v.window.Center()
	return v.zoomAt(cx, cy, v.limits.ButtonFactor, true)
}

// ZoomOut zooms one button step out around the window centre.
func (v *Viewport) ZoomOut() bool {
	cx, cy := v.window.Center()
	return v.zoomAt(cx, cy, v.limits.ButtonFactor, false)
}

func (v *Viewport) zoomAt(cx, cy, factor float64, in bool) bool {
	if factor <= 1 {
		return false
	}
	s := factor
	if in {
		s = 1 / factor
	}
	next := v.window.Scaled(cx, cy, s)
	z := v.surface.Width / next.Width
	if z > v.limits.MaxScale || z < v.limits.MinScale {
		return false
	}
	v.window = next
	v.history.Push(next)
	return true
}

// ZoomPrevious restores the window committed before the current one.
func (v *Viewport) ZoomPrevious() bool {
	w, ok := v.history.Previous()
	if !ok {
		return false
	}
	v.window = w
	return true
}

// CanZoomPrevious is false at the oldest history entry.
func (v *Viewport) CanZoomPrevious() bool {
	return v.history.CanPrevious()
}

// Reset shows the full surface and clears the history.
func (v *Viewport) Reset() {
	v.window = Full(v.surface)
	v.history.Reset(v.window)
	v.dragging = false
}

// BeginDrag starts a pan at an element position.
func (v *Viewport) BeginDrag(ex, ey float64) {
	v.dragging = true
	v.dragX, v.dragY = ex, ey
}

// DragTo pans by the cursor delta since the last drag event. It is a no-op
// when no drag is in progress. Pans are not recorded in the history.
func (v *Viewport) DragTo(ex, ey float64) bool {
	if !v.dragging {
		return false
	}
	dx := (ex - v.dragX) * v.window.Width / v.surface.Width
	dy := (ey - v.dragY) * v.window.Height / v.surface.Height
	v.dragX, v.dragY = ex, ey
	if dx == 0 && dy == 0 {
		return false
	}
	v.window = v.window.Pan(dx, dy)
	return true
}

// EndDrag finishes a pan; safe to call at any time.
func (v *Viewport) EndDrag() {
	v.dragging = false
}

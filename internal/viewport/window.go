package viewport

// Window is the visible rectangle of the surface, in surface units.
type Window struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Full shows the whole surface.
func Full(s Surface) Window {
	return Window{Width: s.Width, Height: s.Height}
}

// Center returns the window midpoint.
func (w Window) Center() (float64, float64) {
	return w.X + w.Width/2, w.Y + w.Height/2
}

// Pan moves the window so content follows a cursor moved by (dx, dy).
func (w Window) Pan(dx, dy float64) Window {
	w.X -= dx
	w.Y -= dy
	return w
}

// Scaled multiplies the window size by s keeping (cx, cy) fixed on screen.
// s < 1 zooms in, s > 1 zooms out.
func (w Window) Scaled(cx, cy, s float64) Window {
	return Window{
		X:      cx - (cx-w.X)*s,
		Y:      cy - (cy-w.Y)*s,
		Width:  w.Width * s,
		Height: w.Height * s,
	}
}

// Contains reports whether a surface position is visible.
func (w Window) Contains(x, y float64) bool {
	return x >= w.X && x <= w.X+w.Width && y >= w.Y && y <= w.Y+w.Height
}

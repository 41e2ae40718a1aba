// Package viewport maps survey coordinates onto a fixed display surface and
// keeps the pannable, zoomable view window with its navigation history.
package viewport

import (
	"math"

	"levelmap/internal/geom"
)

// Surface is the fixed drawing surface every consumer of the mapping shares.
type Surface struct {
	Width   float64
	Height  float64
	Padding float64
}

// DefaultSurface is 800x800 with 100 units of padding.
func DefaultSurface() Surface {
	return Surface{Width: 800, Height: 800, Padding: 100}
}

// Transform is the world to surface mapping for one bounding box.
// Y is inverted: surface Y grows downward, world Y grows upward.
type Transform struct {
	Surface Surface
	Bounds  geom.BBox
	Scale   float64
	OffsetX float64
	OffsetY float64
}

// NewTransform fits bounds into the surface with a uniform scale.
// A zero extent on one axis leaves the other axis in charge; a single point
// (zero extent on both) gets scale 1 and sits at the surface centre.
func NewTransform(s Surface, b geom.BBox) Transform {
	sx := (s.Width - 2*s.Padding) / b.Width()
	sy := (s.Height - 2*s.Padding) / b.Height()
	scale := math.Min(sx, sy)
	t := Transform{Surface: s, Bounds: b, Scale: scale}
	if math.IsInf(scale, 1) || math.IsNaN(scale) {
		t.Scale = 1
		t.OffsetX = s.Width/2 - b.MinX
		t.OffsetY = s.Height/2 + b.MinY
		return t
	}
	t.OffsetX = s.Padding - b.MinX*scale
	t.OffsetY = s.Height - s.Padding + b.MinY*scale
	return t
}

// ForPoints builds the transform over every plottable point of the given sets.
// ok is false when no point has finite X and Y.
func ForPoints(s Surface, sets ...[]geom.Point3D) (Transform, bool) {
	b, ok := geom.Bounds(sets...)
	if !ok {
		return Transform{Surface: s, Scale: 1}, false
	}
	return NewTransform(s, b), true
}

// ToSurface maps a world position onto the surface.
func (t Transform) ToSurface(x, y float64) (float64, float64) {
	return t.OffsetX + x*t.Scale, t.OffsetY - y*t.Scale
}

// ToWorld is the inverse of ToSurface.
func (t Transform) ToWorld(sx, sy float64) (float64, float64) {
	return (sx - t.OffsetX) / t.Scale, (t.OffsetY - sy) / t.Scale
}

// Point maps a survey point.
func (t Transform) Point(p geom.Point3D) (float64, float64) {
	return t.ToSurface(p.X, p.Y)
}

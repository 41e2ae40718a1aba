package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Point3D is a surveyed point. ID is free-form and unique within its set.
type Point3D struct {
	ID string
	X  float64
	Y  float64
	Z  float64
}

// Valid reports whether all three coordinates are finite numbers.
func (p Point3D) Valid() bool {
	return finite(p.X) && finite(p.Y) && finite(p.Z)
}

// Planar reports whether X and Y are usable for map placement (Z may be missing).
func (p Point3D) Planar() bool {
	return finite(p.X) && finite(p.Y)
}

// Orb returns the planar position as an orb.Point.
func (p Point3D) Orb() orb.Point {
	return orb.Point{p.X, p.Y}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Width returns the X extent.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns the Y extent.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// Bounds computes the planar bounding box of every point across sets.
// Points with non-finite X or Y are skipped; ok is false when nothing remains.
func Bounds(sets ...[]Point3D) (bbox BBox, ok bool) {
	var mp orb.MultiPoint
	for _, set := range sets {
		for _, p := range set {
			if !p.Planar() {
				continue
			}
			mp = append(mp, p.Orb())
		}
	}
	if len(mp) == 0 {
		return BBox{}, false
	}
	b := mp.Bound()
	return BBox{MinX: b.Min.X(), MinY: b.Min.Y(), MaxX: b.Max.X(), MaxY: b.Max.Y()}, true
}

// Find returns the first point with the given id.
func Find(points []Point3D, id string) (Point3D, bool) {
	for _, p := range points {
		if p.ID == id {
			return p, true
		}
	}
	return Point3D{}, false
}

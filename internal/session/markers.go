package session

import (
	"math"

	"levelmap/internal/deviation"
	"levelmap/internal/geom"
)

// Kind of a map marker.
type Kind int

const (
	// Unclassified measured points have no deviation (no plane, or rejected).
	Unclassified Kind = iota
	Measured
	Reference
)

const (
	referenceRadius    = 10.0
	unclassifiedRadius = 6.0
	selectedGrowth     = 5.0
)

// MarkerRadius grows with the absolute deviation, capped at 14 surface units.
func MarkerRadius(dev int, selected bool) float64 {
	r := 8 + math.Min(6, math.Abs(float64(dev))/5)
	if selected {
		r += selectedGrowth
	}
	return r
}

// Marker colours, shared by the terminal map and the image export.
const (
	ColorAbove        = "#ef4444"
	ColorWithin       = "#10b981"
	ColorBelow        = "#3b82f6"
	ColorReference    = "#ffc107"
	ColorUnclassified = "#9ca3af"
)

// Marker is one point placed on the surface.
type Marker struct {
	Point     geom.Point3D
	Kind      Kind
	Status    deviation.Status
	Deviation int
	SX, SY    float64
	Radius    float64
	Selected  bool
}

// Color is the fill colour as a hex string.
func (m Marker) Color() string {
	switch {
	case m.Kind == Reference:
		return ColorReference
	case m.Kind == Unclassified:
		return ColorUnclassified
	case m.Status == deviation.Above:
		return ColorAbove
	case m.Status == deviation.Below:
		return ColorBelow
	}
	return ColorWithin
}

// Markers returns everything the map draws, in paint order: unclassified and
// measured points, then the selected measured point, then the references.
// Measured markers follow the table filter; the mapping does not.
func (s *Session) Markers() []Marker {
	tr, ok := s.Transform()
	if !ok {
		return nil
	}
	place := func(m Marker) Marker {
		m.SX, m.SY = tr.Point(m.Point)
		return m
	}

	var out []Marker
	var selected *Marker
	for _, rj := range s.rejected {
		if p, ok := geom.Find(s.measured, rj.ID); ok && p.Planar() {
			out = append(out, place(Marker{Point: p, Kind: Unclassified, Radius: unclassifiedRadius}))
		}
	}
	if s.analysis == nil {
		for _, p := range s.measured {
			if p.Planar() {
				out = append(out, place(Marker{Point: p, Kind: Unclassified, Radius: unclassifiedRadius}))
			}
		}
	}
	for _, p := range s.Rows() {
		m := place(Marker{
			Point:     geom.Point3D{ID: p.ID, X: p.X, Y: p.Y, Z: p.Z},
			Kind:      Measured,
			Status:    p.Status,
			Deviation: p.Deviation,
		})
		if s.hasSelected && p.ID == s.selected {
			m.Selected = true
			m.Radius = MarkerRadius(p.Deviation, true)
			selected = &m
			continue
		}
		m.Radius = MarkerRadius(p.Deviation, false)
		out = append(out, m)
	}
	if selected != nil {
		out = append(out, *selected)
	}
	for _, p := range s.refs {
		if !p.Planar() {
			continue
		}
		out = append(out, place(Marker{
			Point:    p,
			Kind:     Reference,
			Radius:   referenceRadius,
			Selected: s.hasSelected && p.ID == s.selected,
		}))
	}
	return out
}

// PointAt returns the topmost marker whose disc contains the surface point.
func (s *Session) PointAt(sx, sy float64) (Marker, bool) {
	ms := s.Markers()
	for i := len(ms) - 1; i >= 0; i-- {
		m := ms[i]
		if math.Hypot(m.SX-sx, m.SY-sy) <= m.Radius {
			return m, true
		}
	}
	return Marker{}, false
}

// Nearest returns the marker closest to the surface point within maxDist.
func (s *Session) Nearest(sx, sy, maxDist float64) (Marker, bool) {
	var best Marker
	found := false
	bestD := maxDist
	for _, m := range s.Markers() {
		if d := math.Hypot(m.SX-sx, m.SY-sy); d <= bestD {
			best, bestD, found = m, d, true
		}
	}
	return best, found
}

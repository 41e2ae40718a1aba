// Package annotate implements point-to-point polyline drawing on reference points.
package annotate

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"levelmap/internal/geom"
)

// Mode of the drawing tool.
type Mode int

const (
	Inactive Mode = iota
	Drawing
)

func (m Mode) String() string {
	if m == Drawing {
		return "drawing"
	}
	return "inactive"
}

// Polyline is an ordered run of reference points.
type Polyline []geom.Point3D

// LineString converts to orb for planar measurements.
func (p Polyline) LineString() orb.LineString {
	ls := make(orb.LineString, len(p))
	for i, pt := range p {
		ls[i] = pt.Orb()
	}
	return ls
}

// Length is the planar length in survey units.
func (p Polyline) Length() float64 {
	return planar.Length(p.LineString())
}

// Closed reports whether the last point repeats the first.
func (p Polyline) Closed() bool {
	return len(p) > 2 && p[0].ID == p[len(p)-1].ID
}

// Tool holds the committed polylines, at most one in-progress polyline and the
// live cursor used for the rubber-band segment.
type Tool struct {
	mode      Mode
	current   Polyline
	committed []Polyline

	cursorSet bool
	cursorX   float64
	cursorY   float64
}

// New returns an inactive tool with no polylines.
func New() *Tool {
	return &Tool{}
}

func (t *Tool) Mode() Mode { return t.mode }

// Toggle switches between inactive and drawing. Leaving drawing mode commits
// the in-progress polyline.
func (t *Tool) Toggle() Mode {
	if t.mode == Drawing {
		t.commit()
		t.mode = Inactive
	} else {
		t.mode = Drawing
	}
	return t.mode
}

// Click handles a click on a point while drawing. A reference point extends
// the in-progress polyline; any other point finishes it. Returns false when
// the tool is inactive.
func (t *Tool) Click(p geom.Point3D, reference bool) bool {
	if t.mode != Drawing {
		return false
	}
	if reference {
		t.current = append(t.current, p)
		return true
	}
	t.commit()
	return true
}

// commit keeps the in-progress polyline if it has a segment, then clears it.
func (t *Tool) commit() {
	if len(t.current) >= 2 {
		t.committed = append(t.committed, t.current)
	}
	t.current = nil
	t.cursorSet = false
}

// Auto appends a closed polyline through all reference points in input order
// and forces the tool inactive.
func (t *Tool) Auto(refs []geom.Point3D) bool {
	t.current = nil
	t.cursorSet = false
	t.mode = Inactive
	if len(refs) < 2 {
		return false
	}
	loop := make(Polyline, 0, len(refs)+1)
	loop = append(loop, refs...)
	loop = append(loop, refs[0])
	t.committed = append(t.committed, loop)
	return true
}

// Clear drops every committed and in-progress polyline.
func (t *Tool) Clear() {
	t.committed = nil
	t.current = nil
	t.cursorSet = false
}

// MoveCursor records the live cursor in world coordinates while drawing.
func (t *Tool) MoveCursor(x, y float64) {
	if t.mode != Drawing {
		return
	}
	t.cursorSet = true
	t.cursorX, t.cursorY = x, y
}

// Current returns a copy of the in-progress polyline.
func (t *Tool) Current() Polyline {
	return append(Polyline(nil), t.current...)
}

// Polylines returns copies of the committed polylines.
func (t *Tool) Polylines() []Polyline {
	out := make([]Polyline, len(t.committed))
	for i, p := range t.committed {
		out[i] = append(Polyline(nil), p...)
	}
	return out
}

// RubberBand is the transient segment from the last placed point to the cursor.
func (t *Tool) RubberBand() (from geom.Point3D, toX, toY float64, ok bool) {
	if t.mode != Drawing || len(t.current) == 0 || !t.cursorSet {
		return geom.Point3D{}, 0, 0, false
	}
	return t.current[len(t.current)-1], t.cursorX, t.cursorY, true
}

package session

import (
	"levelmap/internal/annotate"
	"levelmap/internal/geom"
	"levelmap/internal/viewport"
)

// Selection is the shared highlighted point id.
func (s *Session) Selection() (string, bool) {
	return s.selected, s.hasSelected
}

func (s *Session) ClearSelection() {
	s.selected, s.hasSelected = "", false
}

// Select toggles the highlight on id. It returns whether id is selected afterwards.
func (s *Session) Select(id string) bool {
	if s.hasSelected && s.selected == id {
		s.ClearSelection()
		return false
	}
	if !s.known(id) {
		return false
	}
	s.selected, s.hasSelected = id, true
	return true
}

// CenterRequest asks the map container to scroll so a point sits in its middle.
type CenterRequest struct {
	ID     string
	Target viewport.Scroll
}

// SelectAndCenter is the table path: toggle the selection and, when a point
// ends up selected, compute the container scroll that centres it. Centring
// uses the shared transform and surface geometry only; the view window is
// not taken into account.
func (s *Session) SelectAndCenter(id string, c viewport.Container) (CenterRequest, bool) {
	if !s.Select(id) {
		return CenterRequest{}, false
	}
	return s.CenterOn(id, c)
}

// CenterOn computes the scroll target for id without touching the selection.
func (s *Session) CenterOn(id string, c viewport.Container) (CenterRequest, bool) {
	p, ok := s.locate(id)
	if !ok {
		return CenterRequest{}, false
	}
	tr, ok := s.Transform()
	if !ok {
		return CenterRequest{}, false
	}
	sx, sy := tr.Point(p)
	return CenterRequest{ID: id, Target: viewport.CenterOn(sx, sy, s.view.Surface(), c)}, true
}

func (s *Session) locate(id string) (geom.Point3D, bool) {
	if p, ok := geom.Find(s.activeMeasured(), id); ok && p.Planar() {
		return p, true
	}
	if p, ok := geom.Find(s.refs, id); ok && p.Planar() {
		return p, true
	}
	return geom.Point3D{}, false
}

// Click handles a pointer press on the surface at (sx, sy). While drawing,
// clicks feed the annotation tool; otherwise a hit toggles the selection.
func (s *Session) Click(sx, sy float64) (Marker, bool) {
	m, ok := s.PointAt(sx, sy)
	if !ok {
		return Marker{}, false
	}
	if s.tool.Mode() == annotate.Drawing {
		s.tool.Click(m.Point, m.Kind == Reference)
		return m, true
	}
	s.Select(m.Point.ID)
	return m, true
}

// ToggleDrawing flips the annotation mode.
func (s *Session) ToggleDrawing() annotate.Mode {
	return s.tool.Toggle()
}

// AutoDraw connects all references into a closed loop.
func (s *Session) AutoDraw() bool {
	return s.tool.Auto(s.refs)
}

func (s *Session) ClearAnnotations() {
	s.tool.Clear()
}

// Package session owns the state of one analysis: point sets, plane, deviation
// pipeline, viewport, annotations and the shared selection. Every front end
// (table, map, controls) works through a *Session passed to it explicitly.
package session

import (
	"errors"

	"levelmap/internal/annotate"
	"levelmap/internal/deviation"
	"levelmap/internal/geom"
	"levelmap/internal/viewport"
)

// Options configure a new session.
type Options struct {
	Surface   viewport.Surface
	Zoom      viewport.ZoomLimits
	Tolerance deviation.Tolerance
}

// DefaultOptions mirrors the built-in configuration.
func DefaultOptions() Options {
	return Options{
		Surface:   viewport.DefaultSurface(),
		Zoom:      viewport.DefaultZoomLimits(),
		Tolerance: deviation.DefaultTolerance(),
	}
}

type Session struct {
	refs     []geom.Point3D
	measured []geom.Point3D

	plane    geom.Plane
	planeErr error
	analysis *deviation.Analysis
	rejected []deviation.Rejected

	tol    deviation.Tolerance
	filter deviation.Filter
	sort   deviation.SortState

	view *viewport.Viewport
	tool *annotate.Tool

	selected    string
	hasSelected bool
}

// New returns an empty session.
func New(opts Options) *Session {
	s := &Session{
		tol:  opts.Tolerance,
		view: viewport.New(opts.Surface, opts.Zoom),
		tool: annotate.New(),
	}
	s.recompute()
	return s
}

// SetReference replaces the reference set and reruns the pipeline.
func (s *Session) SetReference(pts []geom.Point3D) {
	s.refs = append([]geom.Point3D(nil), pts...)
	s.dataChanged()
}

// SetMeasured replaces the measured set and reruns the pipeline.
func (s *Session) SetMeasured(pts []geom.Point3D) {
	s.measured = append([]geom.Point3D(nil), pts...)
	s.dataChanged()
}

func (s *Session) ResetReference() { s.SetReference(nil) }
func (s *Session) ResetMeasured()  { s.SetMeasured(nil) }

// ResetAll clears both sets and the annotations.
func (s *Session) ResetAll() {
	s.refs, s.measured = nil, nil
	s.tool.Clear()
	s.dataChanged()
}

func (s *Session) dataChanged() {
	s.recompute()
	s.view.Reset()
	if s.hasSelected && !s.known(s.selected) {
		s.ClearSelection()
	}
}

// recompute fits the plane and starts a fresh deviation analysis. The mean of
// the new analysis covers the whole measured set again.
func (s *Session) recompute() {
	s.analysis = nil
	s.rejected = nil
	s.plane, s.planeErr = geom.FitReference(s.refs)
	if s.planeErr != nil || len(s.measured) == 0 {
		return
	}
	records, rejected := deviation.Compare(s.measured, s.plane)
	s.rejected = rejected
	s.analysis = deviation.NewAnalysis(records)
}

func (s *Session) Reference() []geom.Point3D { return append([]geom.Point3D(nil), s.refs...) }
func (s *Session) Measured() []geom.Point3D  { return append([]geom.Point3D(nil), s.measured...) }

// Plane returns the fitted plane or why there is none.
func (s *Session) Plane() (geom.Plane, error) {
	return s.plane, s.planeErr
}

// PlaneText is the plane equation, or a neutral note while it is unavailable.
func (s *Session) PlaneText() string {
	switch {
	case s.planeErr == nil:
		return s.plane.String()
	case errors.Is(s.planeErr, geom.ErrInsufficientPoints):
		return "plane not yet available"
	}
	return "no plane: " + s.planeErr.Error()
}

// Rejected lists measured points without a computable distance.
func (s *Session) Rejected() []deviation.Rejected {
	return append([]deviation.Rejected(nil), s.rejected...)
}

// HasResults reports whether a deviation analysis exists.
func (s *Session) HasResults() bool { return s.analysis != nil }

// Averages returns the frozen mean and absolute mean deviation.
func (s *Session) Averages() (mean, absMean float64, ok bool) {
	if s.analysis == nil || s.analysis.Population == 0 {
		return 0, 0, false
	}
	return s.analysis.Mean, s.analysis.AbsMean, true
}

func (s *Session) Tolerance() deviation.Tolerance { return s.tol }

// SetTolerance changes the policy; classification follows on the next read.
func (s *Session) SetTolerance(t deviation.Tolerance) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.tol = t
	return nil
}

func (s *Session) Filter() deviation.Filter     { return s.filter }
func (s *Session) SetFilter(f deviation.Filter) { s.filter = f }
func (s *Session) Sort() deviation.SortState    { return s.sort }

// RequestSort toggles direction on the active key or starts a new key ascending.
func (s *Session) RequestSort(key deviation.SortKey) deviation.SortState {
	s.sort = s.sort.Request(key)
	return s.sort
}

// Rows is the filtered, sorted table content.
func (s *Session) Rows() []deviation.Point {
	if s.analysis == nil {
		return nil
	}
	return s.analysis.View(s.tol, s.filter, s.sort)
}

// Classified is the unfiltered, unsorted classification of the working set.
func (s *Session) Classified() []deviation.Point {
	if s.analysis == nil {
		return nil
	}
	return s.analysis.Classify(s.tol)
}

// Counts feed the filter labels and ignore the active filter.
func (s *Session) Counts() deviation.Counts {
	if s.analysis == nil {
		return deviation.Counts{}
	}
	return s.analysis.Counts(s.tol)
}

// Delete removes a measured point from the working set. It does not come back
// until the measured set is reloaded and does not change the averages.
func (s *Session) Delete(id string) bool {
	if s.analysis == nil || !s.analysis.Delete(id) {
		return false
	}
	if s.hasSelected && s.selected == id {
		s.ClearSelection()
	}
	return true
}

func (s *Session) Viewport() *viewport.Viewport { return s.view }
func (s *Session) Annotations() *annotate.Tool  { return s.tool }

// activeMeasured is what the map shows for the measured set: the working
// records plus points that were rejected by the distance stage.
func (s *Session) activeMeasured() []geom.Point3D {
	if s.analysis == nil {
		return s.measured
	}
	var out []geom.Point3D
	for _, r := range s.analysis.Records() {
		out = append(out, geom.Point3D{ID: r.ID, X: r.X, Y: r.Y, Z: r.Z})
	}
	for _, rj := range s.rejected {
		if p, ok := geom.Find(s.measured, rj.ID); ok {
			out = append(out, p)
		}
	}
	return out
}

// Transform is the one world to surface mapping used by rendering, centring
// and annotation alike. Bounds cover references plus the active measured set,
// independent of the table filter.
func (s *Session) Transform() (viewport.Transform, bool) {
	return viewport.ForPoints(s.view.Surface(), s.refs, s.activeMeasured())
}

func (s *Session) known(id string) bool {
	if _, ok := geom.Find(s.refs, id); ok {
		return true
	}
	_, ok := geom.Find(s.activeMeasured(), id)
	return ok
}

// LoadDemo replaces both sets with the bundled sample survey.
func (s *Session) LoadDemo() {
	refs, _ := geom.ParseRecords(DemoReference)
	measured, _ := geom.ParseRecords(DemoMeasured)
	s.refs = refs
	s.measured = measured
	s.dataChanged()
}

package export

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"levelmap/internal/session"
)

// FeatureCollection builds the GeoJSON view of a session: reference points,
// classified measured points and annotation polylines. Heights go into
// properties because the geometries are planar.
func FeatureCollection(s *session.Session) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	fc.ExtraMembers = geojson.Properties{"plane": s.PlaneText()}
	if mean, abs, ok := s.Averages(); ok {
		fc.ExtraMembers["mean_mm"] = mean
		fc.ExtraMembers["abs_mean_mm"] = abs
	}

	for _, p := range s.Reference() {
		if !p.Planar() {
			continue
		}
		f := geojson.NewFeature(p.Orb())
		f.ID = p.ID
		f.Properties["role"] = "reference"
		f.Properties["z"] = p.Z
		fc.Append(f)
	}
	for _, p := range s.Classified() {
		f := geojson.NewFeature(orb.Point{p.X, p.Y})
		f.ID = p.ID
		f.Properties["role"] = "measured"
		f.Properties["z"] = p.Z
		f.Properties["vertical_distance_mm"] = p.VerticalDistance
		f.Properties["deviation_mm"] = p.Deviation
		f.Properties["status"] = p.Status.String()
		fc.Append(f)
	}
	for i, pl := range s.Annotations().Polylines() {
		f := geojson.NewFeature(pl.LineString())
		f.ID = fmt.Sprintf("annotation-%d", i+1)
		f.Properties["role"] = "annotation"
		f.Properties["length"] = pl.Length()
		f.Properties["closed"] = pl.Closed()
		fc.Append(f)
	}
	return fc
}

// WriteGeoJSON writes FeatureCollection(s) to w.
func WriteGeoJSON(w io.Writer, s *session.Session) error {
	data, err := FeatureCollection(s).MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling geojson: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing geojson: %w", err)
	}
	return nil
}

package geom

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadGeoJSON reads Point features from a GeoJSON Feature or FeatureCollection.
// The id comes from the feature id, then the "id" or "name" property; z comes
// from the third coordinate, then the "z", "elevation" or "height" property.
func LoadGeoJSON(path string) ([]Point3D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGeoJSON(data)
}

// ParseGeoJSON is LoadGeoJSON over an in-memory document.
func ParseGeoJSON(data []byte) ([]Point3D, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil || len(fc.Features) == 0 {
		f, ferr := geojson.UnmarshalFeature(data)
		if ferr != nil {
			if err != nil {
				return nil, fmt.Errorf("geojson: %w", err)
			}
			return nil, fmt.Errorf("geojson: %w", ferr)
		}
		fc = geojson.NewFeatureCollection().Append(f)
	}
	heights := rawHeights(data)

	var points []Point3D
	for i, f := range fc.Features {
		pt, ok := f.Geometry.(orb.Point)
		if !ok {
			continue
		}
		p := Point3D{ID: featureID(f, i), X: pt.X(), Y: pt.Y(), Z: math.NaN()}
		if i < len(heights) && !math.IsNaN(heights[i]) {
			p.Z = heights[i]
		} else {
			for _, k := range []string{"z", "elevation", "height"} {
				if v, ok := f.Properties[k].(float64); ok {
					p.Z = v
					break
				}
			}
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return nil, errors.New("no point features found")
	}
	return points, nil
}

func featureID(f *geojson.Feature, i int) string {
	switch v := f.ID.(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%g", v)
	}
	for _, k := range []string{"id", "name"} {
		switch v := f.Properties[k].(type) {
		case string:
			if v != "" {
				return v
			}
		case float64:
			return fmt.Sprintf("%g", v)
		}
	}
	return fmt.Sprintf("%d", i+1)
}

// rawHeights recovers the third Point coordinate per feature, which orb drops.
// Entries are NaN when a feature has no height.
func rawHeights(data []byte) []float64 {
	type rawGeom struct {
		Type        string          `json:"type"`
		Coordinates json.RawMessage `json:"coordinates"`
	}
	type rawFeature struct {
		Geometry *rawGeom `json:"geometry"`
	}
	var doc struct {
		Type     string       `json:"type"`
		Features []rawFeature `json:"features"`
		Geometry *rawGeom     `json:"geometry"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if doc.Type == "Feature" {
		doc.Features = []rawFeature{{Geometry: doc.Geometry}}
	}
	out := make([]float64, len(doc.Features))
	for i, f := range doc.Features {
		out[i] = math.NaN()
		if f.Geometry == nil || f.Geometry.Type != "Point" {
			continue
		}
		var c []float64
		if err := json.Unmarshal(f.Geometry.Coordinates, &c); err == nil && len(c) >= 3 {
			out[i] = c[2]
		}
	}
	return out
}

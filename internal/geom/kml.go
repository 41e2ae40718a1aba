package geom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadKML extracts Placemark points from a KML file.
// KML coordinates are "lon,lat[,alt]" and map to x, y, z; the Placemark name is the id.
func LoadKML(path string) ([]Point3D, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Name  string    `xml:"name"`
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Document>Placemark"`
		Loose      []kmlPlacemark `xml:"Placemark"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("kml: %w", err)
	}
	var points []Point3D
	for _, pm := range append(doc.Placemarks, doc.Loose...) {
		if pm.Point == nil {
			continue
		}
		tuple := strings.Fields(pm.Point.Coordinates)
		if len(tuple) == 0 {
			continue
		}
		vals := strings.Split(tuple[0], ",")
		coord := func(i int) float64 {
			if i >= len(vals) {
				return math.NaN()
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(vals[i]), 64)
			if err != nil {
				return math.NaN()
			}
			return v
		}
		id := strings.TrimSpace(pm.Name)
		if id == "" {
			id = strconv.Itoa(len(points) + 1)
		}
		points = append(points, Point3D{ID: id, X: coord(0), Y: coord(1), Z: coord(2)})
	}
	if len(points) == 0 {
		return nil, errors.New("kml: no points found")
	}
	return points, nil
}

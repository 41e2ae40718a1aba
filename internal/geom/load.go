package geom

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Extensions lists the file types LoadPath understands.
var Extensions = []string{".txt", ".xyz", ".csv", ".geojson", ".json", ".kml"}

// Supported reports whether LoadPath can read the file.
func Supported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// LoadPath reads a point file, choosing the parser by extension.
func LoadPath(path string) ([]Point3D, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return LoadCSV(path)
	case ".geojson", ".json":
		return LoadGeoJSON(path)
	case ".kml":
		return LoadKML(path)
	case ".txt", ".xyz":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		pts, _ := ParseRecords(string(data))
		if len(pts) == 0 {
			return nil, fmt.Errorf("%s: no point rows", filepath.Base(path))
		}
		return pts, nil
	}
	return nil, fmt.Errorf("unsupported file type %q", ext)
}

package geom

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSVHeader(t *testing.T) {
	path := writeFile(t, "pts.csv", "Easting,Northing,Height,Name\n10,20,1.5,p1\n11,21,bad,p2\n12,22,1.7,\n")
	points, err := LoadPath(path)
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, pt("p1", 10, 20, 1.5), points[0])
	assert.Equal(t, "p2", points[1].ID)
	assert.True(t, math.IsNaN(points[1].Z))
	assert.Equal(t, "3", points[2].ID)
}

func TestLoadCSVHeaderless(t *testing.T) {
	path := writeFile(t, "pts.csv", "a,1,2,3\nb,4,5,6\n")
	points, err := LoadCSV(path)
	require.NoError(t, err)
	assert.Equal(t, []Point3D{pt("a", 1, 2, 3), pt("b", 4, 5, 6)}, points)
}

func TestLoadGeoJSON(t *testing.T) {
	doc := `{"type":"FeatureCollection","features":[
	 {"type":"Feature","id":"r1","geometry":{"type":"Point","coordinates":[1,2,3]},"properties":{}},
	 {"type":"Feature","geometry":{"type":"Point","coordinates":[4,5]},"properties":{"name":"r2","elevation":6}},
	 {"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[1,1]]},"properties":{}},
	 {"type":"Feature","geometry":{"type":"Point","coordinates":[7,8]},"properties":{}}
	]}`
	points, err := LoadPath(writeFile(t, "pts.geojson", doc))
	require.NoError(t, err)
	require.Len(t, points, 3)
	assert.Equal(t, pt("r1", 1, 2, 3), points[0])
	assert.Equal(t, pt("r2", 4, 5, 6), points[1])
	assert.Equal(t, "4", points[2].ID)
	assert.True(t, math.IsNaN(points[2].Z))
}

func TestParseGeoJSONSingleFeature(t *testing.T) {
	points, err := ParseGeoJSON([]byte(`{"type":"Feature","id":7,"geometry":{"type":"Point","coordinates":[1,2,0.5]},"properties":null}`))
	require.NoError(t, err)
	assert.Equal(t, []Point3D{pt("7", 1, 2, 0.5)}, points)

	_, err = ParseGeoJSON([]byte(`{"type":"FeatureCollection","features":[]}`))
	assert.Error(t, err)
}

func TestLoadKML(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
<Document>
  <Placemark><name>k1</name><Point><coordinates>1.5,2.5,3.5</coordinates></Point></Placemark>
  <Placemark><name></name><Point><coordinates> 4,5 </coordinates></Point></Placemark>
  <Placemark><name>line</name></Placemark>
</Document>
</kml>`
	points, err := LoadPath(writeFile(t, "pts.kml", doc))
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, pt("k1", 1.5, 2.5, 3.5), points[0])
	assert.Equal(t, "2", points[1].ID)
	assert.True(t, math.IsNaN(points[1].Z))
}

func TestLoadText(t *testing.T) {
	points, err := LoadPath(writeFile(t, "pts.xyz", "a 1 2 3\nb 4 5 6\n"))
	require.NoError(t, err)
	assert.Len(t, points, 2)

	_, err = LoadPath(writeFile(t, "empty.txt", "\n"))
	assert.Error(t, err)

	_, err = LoadPath(writeFile(t, "pts.shp", ""))
	assert.Error(t, err)
	assert.False(t, Supported("pts.shp"))
	assert.True(t, Supported("PTS.CSV"))
}

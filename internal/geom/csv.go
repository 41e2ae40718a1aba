package geom

import (
	"encoding/csv"
	"errors"
	"math"
	"os"
	"strconv"
	"strings"
)

// LoadCSV reads a CSV with id/x/y/z columns and returns points.
// Column detection (case-insensitive): id|name|point, x|e|east|easting,
// y|n|north|northing, z|h|elev|elevation|height. Without a recognizable header
// the first four columns are taken as id, x, y, z.
func LoadCSV(path string) ([]Point3D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1
	recs, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, errors.New("empty csv")
	}
	idxID, idxX, idxY, idxZ := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id", "name", "point":
			if idxID == -1 {
				idxID = i
			}
		case "x", "e", "east", "easting":
			if idxX == -1 {
				idxX = i
			}
		case "y", "n", "north", "northing":
			if idxY == -1 {
				idxY = i
			}
		case "z", "h", "elev", "elevation", "height":
			if idxZ == -1 {
				idxZ = i
			}
		}
	}
	rows := recs[1:]
	if idxX == -1 || idxY == -1 || idxZ == -1 {
		// headerless: positional columns
		idxID, idxX, idxY, idxZ = 0, 1, 2, 3
		rows = recs
	}
	cell := func(row []string, i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	num := func(row []string, i int) float64 {
		v, err := strconv.ParseFloat(cell(row, i), 64)
		if err != nil {
			return math.NaN()
		}
		return v
	}
	var points []Point3D
	for n, row := range rows {
		id := cell(row, idxID)
		if id == "" {
			id = strconv.Itoa(n + 1)
		}
		points = append(points, Point3D{ID: id, X: num(row, idxX), Y: num(row, idxY), Z: num(row, idxZ)})
	}
	if len(points) == 0 {
		return nil, errors.New("csv: no rows")
	}
	return points, nil
}

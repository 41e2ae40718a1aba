package geom

import (
	"math"
	"strconv"
	"strings"
)

// ParseRecords tokenizes pasted tabular text into points.
// Rows are "id x y z" separated by tabs or spaces; CRLF and CR line endings are
// normalized and blank lines dropped. A missing or non-numeric coordinate becomes
// NaN rather than 0; malformed counts those rows.
func ParseRecords(text string) (points []Point3D, malformed int) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	for _, line := range strings.Split(text, "\n") {
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		p := Point3D{
			ID: parts[0],
			X:  field(parts, 1),
			Y:  field(parts, 2),
			Z:  field(parts, 3),
		}
		if !p.Valid() {
			malformed++
		}
		points = append(points, p)
	}
	return points, malformed
}

func field(parts []string, i int) float64 {
	if i >= len(parts) {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(parts[i], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// FormatRecords renders points back into the tab-separated paste format.
func FormatRecords(points []Point3D) string {
	var sb strings.Builder
	for _, p := range points {
		sb.WriteString(p.ID)
		for _, v := range []float64{p.X, p.Y, p.Z} {
			sb.WriteByte('\t')
			sb.WriteString(strconv.FormatFloat(v, 'f', 3, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

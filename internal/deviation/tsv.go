package deviation

import (
	"fmt"
	"io"
	"strings"
)

// TSVHeader is the first row of a table export.
var TSVHeader = []string{"ID", "X", "Y", "Z (m)", "Dev. (mm)", "Status"}

// WriteTSV writes points as tab-separated rows for pasting into a spreadsheet.
func WriteTSV(w io.Writer, points []Point) error {
	if _, err := io.WriteString(w, strings.Join(TSVHeader, "\t")); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "\n%s\t%.3f\t%.3f\t%.3f\t%d\t%s",
			p.ID, p.X, p.Y, p.Z, p.Deviation, p.Status.Label()); err != nil {
			return err
		}
	}
	return nil
}

// TSV is WriteTSV into a string.
func TSV(points []Point) string {
	var sb strings.Builder
	_ = WriteTSV(&sb, points)
	return sb.String()
}

// Package deviation turns vertical distances into tolerance status labels and
// provides the filter/sort/delete pipeline behind the results table.
package deviation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"levelmap/internal/geom"
)

// Record is one measured point with its signed vertical distance in millimetres.
type Record struct {
	ID               string
	X, Y, Z          float64
	VerticalDistance float64
}

// Rejected is a measured point whose distance could not be computed.
type Rejected struct {
	ID  string
	Err error
}

// Compare computes a Record for every measured point against plane.
// Points that fail (vertical plane, malformed coordinates) are returned in
// rejected instead; they never appear in records with a substitute value.
func Compare(measured []geom.Point3D, plane geom.Plane) (records []Record, rejected []Rejected) {
	for _, p := range measured {
		d, err := geom.VerticalDistanceMm(p, plane)
		if err != nil {
			rejected = append(rejected, Rejected{ID: p.ID, Err: err})
			continue
		}
		records = append(records, Record{ID: p.ID, X: p.X, Y: p.Y, Z: p.Z, VerticalDistance: d})
	}
	return records, rejected
}

// Status classifies a deviation. The numeric values are the sort ordinals.
type Status int

const (
	Below  Status = 1
	Within Status = 2
	Above  Status = 3
)

func (s Status) String() string {
	switch s {
	case Below:
		return "below"
	case Within:
		return "within"
	case Above:
		return "above"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Label is the short table/export label.
func (s Status) Label() string {
	switch s {
	case Above:
		return "Upper"
	case Below:
		return "Lower"
	}
	return "Ok"
}

// Mode selects what the tolerance band is centred on.
type Mode int

const (
	RelativeToAverage Mode = iota
	RelativeToPlane
)

func (m Mode) String() string {
	if m == RelativeToPlane {
		return "plane"
	}
	return "average"
}

// ParseMode accepts "average" and "plane" (also "sop_plane").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "average", "avg":
		return RelativeToAverage, nil
	case "plane", "sop_plane", "sop":
		return RelativeToPlane, nil
	}
	return RelativeToAverage, fmt.Errorf("unknown tolerance mode %q", s)
}

// Tolerance is the active tolerance policy; limits are in millimetres.
type Tolerance struct {
	Mode  Mode
	Upper float64
	Lower float64
}

// DefaultTolerance is ±5 mm around the average.
func DefaultTolerance() Tolerance {
	return Tolerance{Mode: RelativeToAverage, Upper: 5, Lower: 5}
}

var errNegativeLimit = errors.New("tolerance limits must be >= 0")

// Validate rejects negative or non-finite limits.
func (t Tolerance) Validate() error {
	if t.Upper < 0 || t.Lower < 0 || math.IsNaN(t.Upper) || math.IsNaN(t.Lower) {
		return errNegativeLimit
	}
	return nil
}

// Round converts a distance to whole millimetres, halves away from zero.
func Round(mm float64) int {
	return int(math.Round(mm))
}

// Classify is the single status rule. mean only matters in RelativeToAverage mode.
func Classify(deviation int, tol Tolerance, mean float64) Status {
	d := float64(deviation)
	var above, below bool
	if tol.Mode == RelativeToPlane {
		above = d > tol.Upper
		below = d < -tol.Lower
	} else {
		above = d > mean+tol.Upper
		below = d < mean-tol.Lower
	}
	switch {
	case above:
		return Above
	case below:
		return Below
	}
	return Within
}

// Point is a Record with its rounded deviation and derived status.
type Point struct {
	Record
	Deviation int
	Status    Status
}

// Filter restricts a view to one status.
type Filter int

const (
	All Filter = iota
	OnlyAbove
	OnlyWithin
	OnlyBelow
)

func (f Filter) String() string {
	switch f {
	case OnlyAbove:
		return "above"
	case OnlyWithin:
		return "within"
	case OnlyBelow:
		return "below"
	}
	return "all"
}

// Match reports whether a status passes the filter.
func (f Filter) Match(s Status) bool {
	switch f {
	case OnlyAbove:
		return s == Above
	case OnlyWithin:
		return s == Within
	case OnlyBelow:
		return s == Below
	}
	return true
}

// Counts feed the filter labels; they always cover the unfiltered set.
type Counts struct {
	Total int
	Above int
	Below int
}

// Within is derived as Total - Above - Below.
func (c Counts) Within() int {
	return c.Total - c.Above - c.Below
}

package deviation

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SortKey names a sortable column.
type SortKey string

const (
	SortNone      SortKey = ""
	SortID        SortKey = "id"
	SortX         SortKey = "x"
	SortY         SortKey = "y"
	SortZ         SortKey = "z"
	SortDeviation SortKey = "deviation"
	SortStatus    SortKey = "status"
)

// SortKeys in column order.
var SortKeys = []SortKey{SortID, SortX, SortY, SortZ, SortDeviation, SortStatus}

// SortState is the active sort column and direction. The zero value keeps input order.
type SortState struct {
	Key        SortKey
	Descending bool
}

// Request returns the state after a sort request on key: the same key flips
// ascending to descending, anything else starts ascending.
func (s SortState) Request(key SortKey) SortState {
	if s.Key == key && !s.Descending {
		return SortState{Key: key, Descending: true}
	}
	return SortState{Key: key}
}

// Apply sorts points in place. Equal elements keep their relative order.
func (s SortState) Apply(points []Point) {
	if s.Key == SortNone {
		return
	}
	sort.SliceStable(points, func(i, j int) bool {
		c := compare(points[i], points[j], s.Key)
		if s.Descending {
			return c > 0
		}
		return c < 0
	})
}

func compare(a, b Point, key SortKey) int {
	switch key {
	case SortStatus:
		return cmpFloat(float64(a.Status), float64(b.Status))
	case SortX:
		return cmpFloat(a.X, b.X)
	case SortY:
		return cmpFloat(a.Y, b.Y)
	case SortZ:
		return cmpFloat(a.Z, b.Z)
	case SortDeviation:
		return cmpFloat(float64(a.Deviation), float64(b.Deviation))
	case SortID:
		av, aok := numeric(a.ID)
		bv, bok := numeric(b.ID)
		if aok && bok {
			return cmpFloat(av, bv)
		}
		switch {
		case a.ID < b.ID:
			return -1
		case a.ID > b.ID:
			return 1
		}
	}
	return 0
}

// numeric reports whether an id reads as a finite number.
func numeric(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

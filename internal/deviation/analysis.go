package deviation

import (
	"math"
)

// Analysis is one run of the pipeline over a record set.
//
// Mean and AbsMean are computed once from the full set handed to NewAnalysis
// and stay frozen: Delete only shrinks the working set.
type Analysis struct {
	Mean    float64
	AbsMean float64

	// Population is the record count the averages were taken over.
	Population int

	working []Record
}

// NewAnalysis aggregates the population mean and mean absolute deviation.
func NewAnalysis(records []Record) *Analysis {
	a := &Analysis{working: append([]Record(nil), records...)}
	if len(records) == 0 {
		return a
	}
	var sum, abs float64
	for _, r := range records {
		sum += r.VerticalDistance
		abs += math.Abs(r.VerticalDistance)
	}
	a.Population = len(records)
	n := float64(len(records))
	a.Mean = sum / n
	a.AbsMean = abs / n
	return a
}

// Len is the size of the working set.
func (a *Analysis) Len() int { return len(a.working) }

// Records returns a copy of the working set in input order.
func (a *Analysis) Records() []Record {
	return append([]Record(nil), a.working...)
}

// Classify derives status for every working record under tol.
// Nothing is cached, so a tolerance change is always reflected.
func (a *Analysis) Classify(tol Tolerance) []Point {
	out := make([]Point, len(a.working))
	for i, r := range a.working {
		dev := Round(r.VerticalDistance)
		out[i] = Point{Record: r, Deviation: dev, Status: Classify(dev, tol, a.Mean)}
	}
	return out
}

// Counts tallies above/below over the unfiltered working set.
func (a *Analysis) Counts(tol Tolerance) Counts {
	c := Counts{Total: len(a.working)}
	for _, p := range a.Classify(tol) {
		switch p.Status {
		case Above:
			c.Above++
		case Below:
			c.Below++
		}
	}
	return c
}

// View runs classify, filter and sort.
func (a *Analysis) View(tol Tolerance, f Filter, s SortState) []Point {
	all := a.Classify(tol)
	out := all[:0:0]
	for _, p := range all {
		if f.Match(p.Status) {
			out = append(out, p)
		}
	}
	s.Apply(out)
	return out
}

// Delete removes the record with id from the working set. The mean is untouched.
func (a *Analysis) Delete(id string) bool {
	for i, r := range a.working {
		if r.ID == id {
			a.working = append(a.working[:i:i], a.working[i+1:]...)
			return true
		}
	}
	return false
}

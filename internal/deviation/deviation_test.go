package deviation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelmap/internal/geom"
)

func records(devs ...float64) []Record {
	out := make([]Record, len(devs))
	for i, d := range devs {
		out[i] = Record{ID: string(rune('a' + i)), X: float64(i), Y: float64(i), VerticalDistance: d}
	}
	return out
}

func statuses(points []Point) []Status {
	out := make([]Status, len(points))
	for i, p := range points {
		out[i] = p.Status
	}
	return out
}

func ids(points []Point) []string {
	out := make([]string, len(points))
	for i, p := range points {
		out[i] = p.ID
	}
	return out
}

func TestCompare(t *testing.T) {
	plane := geom.Plane{C: 1}
	measured := []geom.Point3D{
		{ID: "1", X: 0, Y: 0, Z: 0.004},
		{ID: "2", X: 0, Y: 0, Z: math.NaN()},
		{ID: "3", X: 1, Y: 1, Z: -0.002},
	}
	recs, rejected := Compare(measured, plane)
	require.Len(t, recs, 2)
	assert.InDelta(t, 4, recs[0].VerticalDistance, 1e-9)
	assert.InDelta(t, -2, recs[1].VerticalDistance, 1e-9)
	require.Len(t, rejected, 1)
	assert.Equal(t, "2", rejected[0].ID)
	assert.ErrorIs(t, rejected[0].Err, geom.ErrMalformedRecord)

	recs, rejected = Compare(measured, geom.Plane{B: 1})
	assert.Empty(t, recs)
	assert.Len(t, rejected, 3)
}

func TestClassifyAroundAverage(t *testing.T) {
	a := NewAnalysis(records(2, 6, -7, 0))
	assert.InDelta(t, 0.25, a.Mean, 1e-12)
	assert.InDelta(t, 3.75, a.AbsMean, 1e-12)

	tol := Tolerance{Mode: RelativeToAverage, Upper: 5, Lower: 5}
	assert.Equal(t, []Status{Within, Above, Below, Within}, statuses(a.Classify(tol)))
}

func TestClassifyRelativeToPlane(t *testing.T) {
	a := NewAnalysis(records(100, 101, 96, 95, 94))
	tol := Tolerance{Mode: RelativeToPlane, Upper: 100, Lower: 0}
	assert.Equal(t, []Status{Within, Above, Within, Within, Within}, statuses(a.Classify(tol)))

	tol = Tolerance{Mode: RelativeToPlane, Upper: 0, Lower: 0}
	a = NewAnalysis(records(0, -1, 1))
	assert.Equal(t, []Status{Within, Below, Above}, statuses(a.Classify(tol)))
}

func TestClassifyBoundariesAreInclusive(t *testing.T) {
	tol := Tolerance{Mode: RelativeToAverage, Upper: 5, Lower: 5}
	assert.Equal(t, Within, Classify(5, tol, 0))
	assert.Equal(t, Within, Classify(-5, tol, 0))
	assert.Equal(t, Above, Classify(6, tol, 0))
	assert.Equal(t, Below, Classify(-6, tol, 0))
	assert.Equal(t, Above, Classify(9, tol, 3.5))
}

func TestWideningToleranceNeverAddsOutliers(t *testing.T) {
	a := NewAnalysis(records(-12, -4, 0, 3, 7, 15, 22))
	prev := a.Counts(Tolerance{Mode: RelativeToPlane})
	for lim := 1.0; lim <= 20; lim++ {
		c := a.Counts(Tolerance{Mode: RelativeToPlane, Upper: lim, Lower: lim})
		assert.LessOrEqual(t, c.Above, prev.Above)
		assert.LessOrEqual(t, c.Below, prev.Below)
		assert.Equal(t, c.Total, c.Above+c.Below+c.Within())
		prev = c
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 3, Round(2.5))
	assert.Equal(t, -3, Round(-2.5))
	assert.Equal(t, 2, Round(2.49))
	assert.Equal(t, 0, Round(-0.4))
}

func TestDeleteKeepsFrozenMean(t *testing.T) {
	a := NewAnalysis(records(10, -20, 4, 6))
	mean, abs := a.Mean, a.AbsMean
	require.Equal(t, 4, a.Population)

	assert.True(t, a.Delete("b"))
	assert.False(t, a.Delete("b"))
	assert.False(t, a.Delete("missing"))

	assert.Equal(t, 3, a.Len())
	assert.Equal(t, mean, a.Mean)
	assert.Equal(t, abs, a.AbsMean)
	assert.Equal(t, []string{"a", "c", "d"}, ids(a.Classify(DefaultTolerance())))
	assert.Equal(t, 3, a.Counts(DefaultTolerance()).Total)
}

func TestViewFilterAndCounts(t *testing.T) {
	a := NewAnalysis(records(2, 6, -7, 0))
	tol := DefaultTolerance()

	c := a.Counts(tol)
	assert.Equal(t, Counts{Total: 4, Above: 1, Below: 1}, c)
	assert.Equal(t, 2, c.Within())

	assert.Equal(t, []string{"b"}, ids(a.View(tol, OnlyAbove, SortState{})))
	assert.Equal(t, []string{"c"}, ids(a.View(tol, OnlyBelow, SortState{})))
	assert.Equal(t, []string{"a", "d"}, ids(a.View(tol, OnlyWithin, SortState{})))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(a.View(tol, All, SortState{})))

	// counts ignore the filter
	assert.Equal(t, c, a.Counts(tol))
}

func TestTolerance(t *testing.T) {
	assert.NoError(t, DefaultTolerance().Validate())
	assert.Error(t, Tolerance{Upper: -1}.Validate())
	assert.Error(t, Tolerance{Lower: math.NaN()}.Validate())

	m, err := ParseMode("sop_plane")
	require.NoError(t, err)
	assert.Equal(t, RelativeToPlane, m)
	m, err = ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, RelativeToAverage, m)
	_, err = ParseMode("median")
	assert.Error(t, err)
}

func TestStatusLabels(t *testing.T) {
	assert.Equal(t, "Upper", Above.Label())
	assert.Equal(t, "Ok", Within.Label())
	assert.Equal(t, "Lower", Below.Label())
	assert.Equal(t, "above", Above.String())
}

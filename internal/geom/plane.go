package geom

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrInsufficientPoints means fewer than three reference points are present.
	ErrInsufficientPoints = errors.New("at least 3 reference points are required")
	// ErrDegeneratePlane means the fitting points are collinear (zero normal).
	ErrDegeneratePlane = errors.New("reference points are collinear")
	// ErrUndefinedDistance means the plane is vertical (C = 0).
	ErrUndefinedDistance = errors.New("vertical distance undefined for a vertical plane")
	// ErrMalformedRecord means a point has a missing or non-numeric coordinate.
	ErrMalformedRecord = errors.New("malformed point record")
)

// collinearEps is relative to |v1|·|v2|, so the check is independent of survey units.
const collinearEps = 1e-12

// Plane holds A·x + B·y + C·z + D = 0.
type Plane struct {
	A, B, C, D float64
}

// Normal returns (A, B, C).
func (p Plane) Normal() Vec3 {
	return Vec3{X: p.A, Y: p.B, Z: p.C}
}

// Eval returns A·x + B·y + C·z + D for the point; zero on the plane.
func (p Plane) Eval(pt Point3D) float64 {
	return p.A*pt.X + p.B*pt.Y + p.C*pt.Z + p.D
}

// FitPlane builds the plane through p1, p2 and p3.
//
// The normal is (p2-p1) × (p3-p1), so the sign of the coefficients follows
// point order: counter-clockwise points seen from above give C > 0.
func FitPlane(p1, p2, p3 Point3D) (Plane, error) {
	for _, p := range []Point3D{p1, p2, p3} {
		if !p.Valid() {
			return Plane{}, fmt.Errorf("reference point %q: %w", p.ID, ErrMalformedRecord)
		}
	}
	v1 := vecOf(p2).Sub(vecOf(p1))
	v2 := vecOf(p3).Sub(vecOf(p1))
	n := v1.Cross(v2)
	if n.IsZero() || n.Length() <= collinearEps*v1.Length()*v2.Length() {
		return Plane{}, ErrDegeneratePlane
	}
	d := -n.Dot(vecOf(p1))
	return Plane{A: n.X, B: n.Y, C: n.Z, D: d}, nil
}

// FitReference fits the plane from the first three points of the reference set.
// Extra points are ignored; callers wanting a sturdier fit must pre-select them.
func FitReference(refs []Point3D) (Plane, error) {
	if len(refs) < 3 {
		return Plane{}, ErrInsufficientPoints
	}
	return FitPlane(refs[0], refs[1], refs[2])
}

// VerticalDistanceMm returns the signed vertical offset of pt from the plane in
// millimetres (coordinates in metres). Positive means pt lies above the plane.
func VerticalDistanceMm(pt Point3D, plane Plane) (float64, error) {
	if plane.C == 0 {
		return 0, ErrUndefinedDistance
	}
	if !pt.Valid() {
		return 0, ErrMalformedRecord
	}
	zPlane := -(plane.A*pt.X + plane.B*pt.Y + plane.D) / plane.C
	return (pt.Z - zPlane) * 1000, nil
}

// String formats the plane as "Ax + By + Cz + D = 0" with three decimals,
// dropping zero terms.
func (p Plane) String() string {
	var sb strings.Builder
	terms := []struct {
		v   float64
		sfx string
	}{{p.A, "x"}, {p.B, "y"}, {p.C, "z"}, {p.D, ""}}
	for _, t := range terms {
		if t.v == 0 {
			continue
		}
		abs := math.Abs(t.v)
		switch {
		case sb.Len() == 0 && t.v < 0:
			fmt.Fprintf(&sb, "-%.3f%s", abs, t.sfx)
		case sb.Len() == 0:
			fmt.Fprintf(&sb, "%.3f%s", abs, t.sfx)
		case t.v < 0:
			fmt.Fprintf(&sb, " - %.3f%s", abs, t.sfx)
		default:
			fmt.Fprintf(&sb, " + %.3f%s", abs, t.sfx)
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("0")
	}
	sb.WriteString(" = 0")
	return sb.String()
}

package pathfit

import (
	"math"
	"testing"
)

func TestEstimateLengthsCollinear(t *testing.T) {
	d := []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	u := make([]float64, len(d))
	chordLengthParameterize(d, u)

	var bez CubicBez
	estimateLengths(&bez, d, u, Vec(1, 0), Vec(-1, 0))

	diff(t, d[0], bez.P0)
	diff(t, d[3], bez.P3)
	if math.Abs(bez.P1.Y) > 1e-9 || math.Abs(bez.P2.Y) > 1e-9 {
		t.Errorf("control points left the line: P1=%v P2=%v", bez.P1, bez.P2)
	}
	if bez.P1.X <= bez.P0.X || bez.P2.X >= bez.P3.X {
		t.Errorf("control points placed against the tangents: P1=%v P2=%v", bez.P1, bez.P2)
	}
}

func TestEstimateLengthsTwoPointFallback(t *testing.T) {
	// With only the endpoints, the system is under-determined all the way
	// down and the Wu/Barsky one-third heuristic kicks in.
	d := []Point{Pt(0, 0), Pt(1, 0)}
	u := []float64{0, 1}

	var bez CubicBez
	estimateLengths(&bez, d, u, Vec(1, 0), Vec(-1, 0))

	diff(t, Pt(1.0/3.0, 0), bez.P1, approxPoints(1e-12))
	diff(t, Pt(2.0/3.0, 0), bez.P2, approxPoints(1e-12))
}

func TestGenerateBezierConstrainedTangent(t *testing.T) {
	// Quarter-arc-like data, left tangent pinned straight up.
	d := []Point{Pt(0, 0), Pt(0.3, 0.8), Pt(1.2, 1.6), Pt(2, 2)}
	u := make([]float64, len(d))
	chordLengthParameterize(d, u)

	var bez CubicBez
	generateBezier(&bez, d, u, Vec(0, 1), Vec2{}, 1e-6)

	if math.Abs(bez.P1.X-bez.P0.X) > 1e-9 {
		t.Errorf("P1 not on the constrained tangent: %v", bez.P1)
	}
	if bez.P1.Y <= bez.P0.Y {
		t.Errorf("P1 placed against the tangent direction: %v", bez.P1)
	}
}

func TestGenerateBezierEstimatesTangents(t *testing.T) {
	d := []Point{Pt(0, 0), Pt(1, 1), Pt(2, 1), Pt(3, 0)}
	u := make([]float64, len(d))
	chordLengthParameterize(d, u)

	var bez CubicBez
	generateBezier(&bez, d, u, Vec2{}, Vec2{}, 1e-6)

	diff(t, d[0], bez.P0)
	diff(t, d[3], bez.P3)
	if bez.P1 == bez.P0 || bez.P2 == bez.P3 {
		t.Errorf("coincident control points: %+v", bez)
	}
	if bez.IsNaN() {
		t.Errorf("NaN control points: %+v", bez)
	}
}

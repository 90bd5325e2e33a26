package pathfit

import (
	"testing"
)

func TestBezierDegree1(t *testing.T) {
	ctrl := []Point{Pt(1, 2), Pt(5, -2)}
	const n = 8
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		want := ctrl[0].Lerp(ctrl[1], ts)
		diff(t, want, Bezier(ctrl, ts), approxPoints(1e-12))
	}
}

func TestBezierDegree2(t *testing.T) {
	ctrl := []Point{Pt(0, 0), Pt(1, 2), Pt(2, 0)}
	diff(t, Pt(1, 1), Bezier(ctrl, 0.5), approxPoints(1e-12))
	diff(t, ctrl[0], Bezier(ctrl, 0))
	diff(t, ctrl[2], Bezier(ctrl, 1))
}

func TestBezierDegree3MatchesCubic(t *testing.T) {
	c := CubicBez{
		Pt(20, 40),
		Pt(40, 80),
		Pt(-40, 40),
		Pt(42, 62),
	}
	ctrl := []Point{c.P0, c.P1, c.P2, c.P3}
	const n = 16
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		diff(t, c.Eval(ts), Bezier(ctrl, ts), approxPoints(1e-9))
	}
}

func TestCubicBezDeriv(t *testing.T) {
	// y = x^2
	c := CubicBez{
		Pt(0.0, 0.0),
		Pt(1.0/3.0, 0.0),
		Pt(2.0/3.0, 1.0/3.0),
		Pt(1.0, 1.0),
	}
	q1 := c.Differentiate()

	const n = 10
	const delta = 1e-6
	for i := 0; i <= n; i++ {
		ts := float64(i) / float64(n)
		p := c.Eval(ts)
		p1 := c.Eval(ts + delta)
		dApprox := p1.Sub(p).Mul(1.0 / delta)
		d := Vec2(Bezier(q1[:], ts))
		if l := d.Sub(dApprox).Hypot(); l >= delta*2 {
			t.Errorf("got difference of %g, want at most %g", l, delta*2)
		}
	}
}

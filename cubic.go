package pathfit

// CubicBez is a single cubic Bézier segment.
//
// Fitted segments are chained: the last control point of segment i equals
// the first control point of segment i+1.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Eval evaluates the curve at parameter t.
func (cb CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(cb.P0).Mul(mt * mt * mt)
	b := Vec2(cb.P1).Mul(mt * mt * 3.0)
	c := Vec2(cb.P2).Mul(mt * 3.0)
	d := Vec2(cb.P3)
	v := a.Add(b.Add(c.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Differentiate returns the control points of the derivative curve, a
// quadratic Bézier.
func (cb CubicBez) Differentiate() [3]Point {
	return [3]Point{
		Point(cb.P1.Sub(cb.P0).Mul(3)),
		Point(cb.P2.Sub(cb.P1).Mul(3)),
		Point(cb.P3.Sub(cb.P2).Mul(3)),
	}
}

func (cb CubicBez) Start() Point {
	return cb.P0
}

func (cb CubicBez) End() Point {
	return cb.P3
}

// IsNaN reports whether any control point contains NaN.
func (cb CubicBez) IsNaN() bool {
	return cb.P0.IsNaN() || cb.P1.IsNaN() || cb.P2.IsNaN() || cb.P3.IsNaN()
}

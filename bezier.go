package pathfit

import "fmt"

// Pascal's triangle.
var pascal = [4][4]float64{
	{1},
	{1, 1},
	{1, 2, 1},
	{1, 3, 3, 1},
}

// Bezier evaluates a Bézier curve of degree len(ctrl)-1 at parameter t,
// using the Bernstein polynomial form. Degrees 1 through 3 are supported;
// other control polygon lengths panic.
//
// With s = 1-t, a two-point polygon evaluates to (s, t)·ctrl, a three-point
// polygon to (s², 2st, t²)·ctrl, and a four-point polygon to
// (s³, 3s²t, 3st², t³)·ctrl. t is typically in the range [0, 1].
func Bezier(ctrl []Point, t float64) Point {
	degree := len(ctrl) - 1
	if degree < 1 || degree > 3 {
		panic(fmt.Sprintf("pathfit: unsupported Bézier degree %d", degree))
	}
	s := 1.0 - t

	var spow, tpow [4]float64
	spow[0], spow[1] = 1.0, s
	tpow[0], tpow[1] = 1.0, t
	for i := 1; i < degree; i++ {
		spow[i+1] = spow[i] * s
		tpow[i+1] = tpow[i] * t
	}

	v := Vec2(ctrl[0]).Mul(spow[degree])
	for i := 1; i <= degree; i++ {
		v = v.Add(Vec2(ctrl[i]).Mul(pascal[degree][i] * spow[degree-i] * tpow[i]))
	}
	return Point(v)
}

// bernstein3 returns the cubic Bernstein basis weights at u.
func bernstein3(u float64) (b0, b1, b2, b3 float64) {
	s := 1.0 - u
	b0 = s * s * s
	b1 = 3 * u * s * s
	b2 = 3 * u * u * s
	b3 = u * u * u
	return b0, b1, b2, b3
}

package pathfit

import "math"

const (
	// maxChordNormalizationError bounds the acceptable drift of the final
	// chord parameter from 1.0 after normalization. Larger drift is traced
	// as a diagnostic; either way the value is forced to exactly 1.
	maxChordNormalizationError = 1e-13

	// newtonBlendStep is the increment by which a Newton-Raphson result
	// that worsened the fit is blended back toward the previous parameter.
	newtonBlendStep = 0.125
)

// chordLengthParameterize assigns parameter values to the digitized points
// using relative distances between points, scaled to [0, 1].
//
// If the total chord length is zero, u is left all-zero for the caller to
// detect. If it is not finite, the points are spaced uniformly instead.
func chordLengthParameterize(d []Point, u []float64) {
	u[0] = 0
	for i := 1; i < len(d); i++ {
		u[i] = u[i-1] + d[i].Distance(d[i-1])
	}

	last := len(d) - 1
	total := u[last]
	if total == 0 {
		return
	}
	if math.IsInf(total, 0) || math.IsNaN(total) {
		for i := 1; i <= last; i++ {
			u[i] = float64(i) / float64(last)
		}
	} else {
		for i := 1; i <= last; i++ {
			u[i] /= total
		}
	}

	// u[last] has been calculated as x/x for finite non-zero x, yet on some
	// systems it still differs from 1.
	if u[last] != 1 {
		diff := u[last] - 1
		if math.Abs(diff) > maxChordNormalizationError {
			tracer().Errorf("chord parameterization: u[last] = %.19g (= 1 + %.19g), expecting exactly 1", u[last], diff)
		}
		u[last] = 1
	}
}

// reparameterize improves the parameter assignment of the interior points
// with respect to the fitted curve. The endpoint parameters are pinned to 0
// and 1 by construction.
func reparameterize(d []Point, u []float64, bez CubicBez) {
	last := len(d) - 1
	for i := 1; i < last; i++ {
		u[i] = newtonRaphsonRootFind(bez, d[i], u[i])
	}
}

// newtonRaphsonRootFind performs one Newton-Raphson step improving the
// parameter u of the point p on the curve: u' = u - f(u)/f'(u), where f is
// the derivative with respect to u of the squared distance from p to the
// curve. The result never has a larger squared distance than u.
func newtonRaphsonRootFind(bez CubicBez, p Point, u float64) float64 {
	q1 := bez.Differentiate()
	q2 := [2]Point{
		Point(q1[1].Sub(q1[0]).Mul(2)),
		Point(q1[2].Sub(q1[1]).Mul(2)),
	}

	qu := bez.Eval(u)
	q1u := Vec2(Bezier(q1[:], u))
	q2u := Vec2(Bezier(q2[:], u))

	diff := qu.Sub(p)
	numerator := diff.Dot(q1u)
	denominator := q1u.Dot(q1u) + diff.Dot(q2u)

	var improved float64
	if denominator > 0 {
		improved = u - numerator/denominator
	} else {
		// Newton-Raphson would move towards a local maximum of the squared
		// distance, so move a fixed amount in the sign-indicated direction
		// instead. The amounts are deliberately asymmetrical, to reduce the
		// chance of cycling.
		switch {
		case numerator > 0:
			improved = u*0.98 - 0.01
		case numerator < 0:
			improved = 0.031 + u*0.98
		default:
			improved = u
		}
	}

	if math.IsNaN(improved) || math.IsInf(improved, 0) {
		improved = u
	} else if improved < 0 {
		improved = 0
	} else if improved > 1 {
		improved = 1
	}

	// Ensure that improved isn't actually worse.
	distSq := diff.Hypot2()
	for proportion := newtonBlendStep; ; proportion += newtonBlendStep {
		if bez.Eval(improved).DistanceSquared(p) > distSq {
			if proportion > 1 {
				improved = u
				break
			}
			improved = (1-proportion)*improved + proportion*u
		} else {
			break
		}
	}
	return improved
}

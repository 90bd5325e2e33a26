package pathfit

// minControlDistance is the smallest accepted distance from an endpoint to
// its adjacent control point. Alphas below it would produce coincident
// control points, which divide by zero in the Newton-Raphson refinement.
const minControlDistance = 1e-6

// generateBezier fills in bez based on the digitized points, their current
// parameterization, and the tangent requirements, using a least-squares fit.
//
// Each of tHat1 and tHat2 is either a zero vector or a unit vector. A zero
// vector means the corresponding interior control point is estimated from
// the data; otherwise it is placed in the given direction from its endpoint.
// toleranceSq is used only for the initial tangent estimate.
func generateBezier(bez *CubicBez, d []Point, u []float64, tHat1, tHat2 Vec2, toleranceSq float64) {
	est1 := tHat1.IsZero()
	est2 := tHat2.IsZero()
	if est1 {
		tHat1 = leftTangent(d, toleranceSq)
	}
	if est2 {
		tHat2 = rightTangent(d, toleranceSq)
	}
	estimateLengths(bez, d, u, tHat1, tHat2)
	// For freehand input, solving directly for the first control point and
	// re-deriving the initial tangent from it gives consistently better
	// curves than the symmetric estimate alone.
	if est1 {
		estimateBi(bez, 1, d, u)
		if bez.P1 != bez.P0 {
			tHat1 = bez.P1.Sub(bez.P0).Normalize()
		}
		estimateLengths(bez, d, u, tHat1, tHat2)
	}
}

// estimateLengths positions the interior control points an alpha distance
// out along the endpoint tangents, solving the 2×2 least-squares system
// C·alpha = X accumulated over all data points.
func estimateLengths(bez *CubicBez, d []Point, u []float64, tHat1, tHat2 Vec2) {
	var c [2][2]float64
	var x [2]float64

	// The first and last control points are positioned exactly at the first
	// and last data points.
	bez.P0 = d[0]
	bez.P3 = d[len(d)-1]

	for i := range d {
		b0, b1, b2, b3 := bernstein3(u[i])

		a1 := tHat1.Mul(b1)
		a2 := tHat2.Mul(b2)

		c[0][0] += a1.Dot(a1)
		c[0][1] += a1.Dot(a2)
		c[1][0] = c[0][1]
		c[1][1] += a2.Dot(a2)

		// Offset of the data point from where the curve would pass were
		// bez.P1 set to bez.P0 and bez.P2 to bez.P3.
		shortfall := Vec2(d[i]).
			Sub(Vec2(bez.P0).Mul(b0 + b1)).
			Sub(Vec2(bez.P3).Mul(b2 + b3))
		x[0] += a1.Dot(shortfall)
		x[1] += a2.Dot(shortfall)
	}

	var alphaL, alphaR float64
	detC0C1 := c[0][0]*c[1][1] - c[1][0]*c[0][1]
	if detC0C1 != 0 {
		// Cramer's rule.
		detC0X := c[0][0]*x[1] - c[0][1]*x[0]
		detXC1 := x[0]*c[1][1] - x[1]*c[0][1]
		alphaL = detXC1 / detC0C1
		alphaR = detC0X / detC0C1
	} else {
		// The matrix is under-determined. Require alphaL == alphaR by
		// summing the columns of C into one, trying each row in turn.
		if c0 := c[0][0] + c[0][1]; c0 != 0 {
			alphaL = x[0] / c0
			alphaR = alphaL
		} else if c1 := c[1][0] + c[1][1]; c1 != 0 {
			alphaL = x[1] / c1
			alphaR = alphaL
		}
		// Both rows degenerate: leave the alphas at zero for the fallback
		// below.
	}

	// Near-zero or negative alpha: use the Wu/Barsky heuristic of one third
	// of the chord length between the endpoints.
	if alphaL < minControlDistance || alphaR < minControlDistance {
		alpha := bez.P3.Distance(bez.P0) * (1.0 / 3.0)
		alphaL = alpha
		alphaR = alpha
	}

	bez.P1 = bez.P0.Translate(tHat1.Mul(alphaL))
	bez.P2 = bez.P3.Translate(tHat2.Mul(alphaR))
}

// estimateBi solves directly for interior control point ei (1 or 2) with
// the other control points held fixed, a closed-form least-squares fit in a
// single unknown. A zero denominator falls back to the one-third blend of
// the endpoints.
func estimateBi(bez *CubicBez, ei int, d []Point, u []float64) {
	oi := 3 - ei
	var num Vec2
	var den float64
	for i := range d {
		var b [4]float64
		b[0], b[1], b[2], b[3] = bernstein3(u[i])

		num = num.Add(Vec2(bez.P0).Mul(b[0]).
			Add(Vec2(bez.P0).Mul(b[oi])).
			Add(Vec2(bez.P3).Mul(b[3])).
			Sub(Vec2(d[i])).
			Mul(b[ei]))
		den -= b[ei] * b[ei]
	}

	var p Point
	if den != 0 {
		p = Point(num.Mul(1 / den))
	} else {
		p = Point(Vec2(bez.P0).Mul(float64(oi)).
			Add(Vec2(bez.P3).Mul(float64(ei))).
			Mul(1.0 / 3.0))
	}
	if ei == 1 {
		bez.P1 = p
	} else {
		bez.P2 = p
	}
}

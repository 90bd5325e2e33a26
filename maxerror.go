package pathfit

import "math"

// hookAllowanceFactor scales the chord length between two consecutive
// samples into the deviation allowance used by hook detection.
const hookAllowanceFactor = 0.2

// computeMaxErrorRatio finds the maximum distance of the digitized points
// to the fitted curve, as a ratio of the tolerance, along with the index at
// which to split the range should the fit be rejected. The endpoints have
// zero error by construction and are not measured.
//
// A negative return value flags a hook: somewhere between two consecutive
// points the curve strays from the polyline further than the curvature-
// proportional allowance, indicating a probable sharp corner. In that case
// the magnitude is the worst hook ratio and the split index is placed just
// before the hook. Otherwise the (non-negative) distance ratio is returned;
// the fit is acceptable when it is at most 1.
func computeMaxErrorRatio(d []Point, u []float64, bez CubicBez, tolerance float64) (float64, int) {
	last := len(d) - 1
	var splitPoint int
	var maxDistSq float64
	var maxHookRatio float64
	var snapEnd int
	prev := bez.P0
	for i := 1; i <= last; i++ {
		curr := bez.Eval(u[i])
		distSq := curr.DistanceSquared(d[i])
		if distSq > maxDistSq {
			maxDistSq = distSq
			splitPoint = i
		}
		hookRatio := computeHook(prev, curr, 0.5*(u[i-1]+u[i]), bez, tolerance)
		if maxHookRatio < hookRatio {
			maxHookRatio = hookRatio
			snapEnd = i
		}
		prev = curr
	}

	distRatio := math.Sqrt(maxDistSq) / tolerance
	if maxHookRatio <= distRatio {
		return distRatio, splitPoint
	}
	return -maxHookRatio, snapEnd - 1
}

// computeHook checks that the curve between the parameters of two
// consecutive samples stays near the polyline. Whereas computeMaxErrorRatio
// checks that each data point is near some point on the curve, this checks
// the converse: a curve can pass close to every point yet still hook
// outward between two of them.
//
// a and b are the curve points at the two samples' parameters and the curve
// is tested at the parameter u halfway between them. The allowance is a
// circle centred at the midpoint of a..b with radius proportional to
// |b - a|; the returned ratio grows with the distance beyond that circle,
// and is 0 when the deviation is within tolerance.
func computeHook(a, b Point, u float64, bez CubicBez, tolerance float64) float64 {
	p := bez.Eval(u)
	dist := a.Midpoint(b).Distance(p)
	if dist < tolerance {
		return 0
	}
	allowed := b.Distance(a)*hookAllowanceFactor + tolerance
	return dist / allowed
}

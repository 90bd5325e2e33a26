package pathfit

import (
	"errors"
	"fmt"
	"math"
)

const (
	// maxFitIterations is the number of extra generate/reparameterize
	// rounds attempted when the error ratio is moderate (at most
	// errRatioIterationCutoff) before giving up on a single segment.
	maxFitIterations = 4

	// errRatioIterationCutoff is the error ratio beyond which further
	// reparameterization is considered hopeless and the range is split
	// immediately.
	errRatioIterationCutoff = 3.0

	// maxSegmentBudget bounds the segment budget so that segment counts fit
	// the signed 32-bit encoding used by callers.
	maxSegmentBudget = 1 << 27
)

// ErrSegmentBudget is returned when the fit needs to split a range further
// but has no segment budget left to do so.
var ErrSegmentBudget = errors.New("pathfit: segment budget exhausted")

// FitCubic fits a single cubic Bézier segment to the digitized points,
// writing it to dst[0]. It is equivalent to [FitCubicMulti] with a segment
// budget of one.
func FitCubic(dst []CubicBez, pts []Point, tolerance float64) (int, error) {
	if len(dst) == 0 {
		return 0, errors.New("pathfit: empty destination buffer")
	}
	return FitCubicMulti(dst[:1], nil, pts, tolerance)
}

// FitCubicMulti fits a chain of up to len(dst) cubic Bézier segments to the
// digitized points, within the given squared-error tolerance, and returns
// the number of segments written to dst.
//
// The input is sanitized first: NaN points are dropped and adjacent
// duplicate points are collapsed. If fewer than two usable points remain,
// the fit degenerately returns zero segments without error.
//
// If splits is non-nil it must hold at least len(dst) entries; entry k
// receives the index (into the sanitized points) of the data point at which
// segments k and k+1 meet.
func FitCubicMulti(dst []CubicBez, splits []int, pts []Point, tolerance float64) (int, error) {
	if err := checkArgs(dst, splits, pts, tolerance); err != nil {
		return 0, err
	}
	weeded := weedPoints(pts)
	if len(weeded) < 2 {
		return 0, nil
	}
	return fitCubicFull(dst, splits, weeded, Vec2{}, Vec2{}, tolerance)
}

// FitCubicFull is the recursive core of the fitter. It assumes sanitized
// input: no NaN points and no adjacent duplicates.
//
// tHat1 and tHat2 constrain the tangent directions at the first and last
// point of the range; either may be the zero vector, meaning the tangent is
// estimated from the data. Non-zero hints must be unit vectors.
func FitCubicFull(dst []CubicBez, splits []int, pts []Point, tHat1, tHat2 Vec2, tolerance float64) (int, error) {
	if err := checkArgs(dst, splits, pts, tolerance); err != nil {
		return 0, err
	}
	if len(pts) < 2 {
		return 0, nil
	}
	return fitCubicFull(dst, splits, pts, tHat1, tHat2, tolerance)
}

// FitCurve is the allocating convenience form of [FitCubicMulti]: it fits
// pts with at most maxSegments segments and returns the fitted chain.
func FitCurve(pts []Point, tolerance float64, maxSegments int) ([]CubicBez, error) {
	if maxSegments < 1 {
		return nil, fmt.Errorf("pathfit: invalid segment budget %d", maxSegments)
	}
	dst := make([]CubicBez, maxSegments)
	n, err := FitCubicMulti(dst, nil, pts, tolerance)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func checkArgs(dst []CubicBez, splits []int, pts []Point, tolerance float64) error {
	switch {
	case len(dst) == 0:
		return errors.New("pathfit: empty destination buffer")
	case len(dst) >= maxSegmentBudget:
		return fmt.Errorf("pathfit: segment budget %d exceeds limit %d", len(dst), maxSegmentBudget)
	case len(pts) == 0:
		return errors.New("pathfit: no input points")
	case tolerance < 0 || math.IsNaN(tolerance):
		return fmt.Errorf("pathfit: invalid tolerance %g", tolerance)
	case splits != nil && len(splits) < len(dst):
		return fmt.Errorf("pathfit: split index buffer holds %d entries, need %d", len(splits), len(dst))
	}
	return nil
}

// weedPoints returns a fresh copy of pts with NaN points removed and runs
// of equal adjacent points collapsed to one.
func weedPoints(pts []Point) []Point {
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		if pt.IsNaN() {
			continue
		}
		if len(out) > 0 && pt == out[len(out)-1] {
			continue
		}
		out = append(out, pt)
	}
	return out
}

// fitCubicFull fits d with at most len(dst) segments, recursively splitting
// on failure. It requires validated arguments, sanitized data, and
// len(d) >= 2.
func fitCubicFull(dst []CubicBez, splits []int, d []Point, tHat1, tHat2 Vec2, tolerance float64) (int, error) {
	budget := len(dst)
	last := len(d) - 1

	if len(d) == 2 {
		dst[0] = twoPointSegment(d[0], d[1], tHat1, tHat2)
		return 1, nil
	}

	u := make([]float64, len(d))
	chordLengthParameterize(d, u)
	if u[last] == 0 {
		// Zero-length path: every point in d is the same. Clients aren't
		// allowed to pass such data; handling the case is defensive.
		return 0, nil
	}

	bez := &dst[0]
	generateBezier(bez, d, u, tHat1, tHat2, tolerance)
	reparameterize(d, u, *bez)

	errTolerance := math.Sqrt(tolerance + 1e-9)
	ratio, splitPoint := computeMaxErrorRatio(d, u, *bez, errTolerance)
	if math.Abs(ratio) <= 1 {
		return 1, nil
	}

	// If the error is not too large, reparameterization and iteration may
	// still rescue the single-segment fit.
	if ratio >= 0 && ratio <= errRatioIterationCutoff {
		for it := 0; it < maxFitIterations; it++ {
			generateBezier(bez, d, u, tHat1, tHat2, tolerance)
			reparameterize(d, u, *bez)
			ratio, splitPoint = computeMaxErrorRatio(d, u, *bez, errTolerance)
			if math.Abs(ratio) <= 1 {
				return 1, nil
			}
		}
	}
	isCorner := ratio < 0

	if isCorner {
		if splitPoint == 0 {
			if tHat1.IsZero() {
				// Spike even with an unconstrained initial tangent.
				splitPoint++
			} else {
				tracer().Debugf("corner at range start, retrying with unconstrained initial tangent")
				return fitCubicFull(dst, splits, d, Vec2{}, tHat2, tolerance)
			}
		} else if splitPoint == last {
			if tHat2.IsZero() {
				splitPoint--
			} else {
				tracer().Debugf("corner at range end, retrying with unconstrained final tangent")
				return fitCubicFull(dst, splits, d, tHat1, Vec2{}, tolerance)
			}
		}
	}

	if budget <= 1 {
		tracer().Debugf("fit failed with error ratio %g and no budget to split", ratio)
		return 0, ErrSegmentBudget
	}

	// Fitting failed: split at the max error point and fit both halves
	// recursively under the remaining budget.
	var recTHat1, recTHat2 Vec2
	if isCorner {
		if splitPoint <= 0 || splitPoint >= last {
			// Cannot happen on sanitized input; the endpoint handling above
			// moves corner splits inward.
			tracer().Errorf("corner split index %d out of range (0, %d)", splitPoint, last)
			splitPoint = min(max(splitPoint, 1), last-1)
		}
	} else {
		recTHat2 = centerTangent(d, splitPoint)
		recTHat1 = recTHat2.Negate()
	}

	nsegs1, err := fitCubicFull(dst[:budget-1], splits, d[:splitPoint+1], tHat1, recTHat2, tolerance)
	if err != nil {
		return 0, err
	}
	if splits != nil {
		splits[nsegs1-1] = splitPoint
	}

	var rsplits []int
	if splits != nil {
		rsplits = splits[nsegs1:]
	}
	nsegs2, err := fitCubicFull(dst[nsegs1:], rsplits, d[splitPoint:], recTHat1, tHat2, tolerance)
	if err != nil {
		return 0, err
	}
	// The right half recorded split indices relative to its subrange.
	if splits != nil {
		for i := 0; i < nsegs2-1; i++ {
			rsplits[i] += splitPoint
		}
	}

	tracer().Debugf("split at %d: %d+%d segments of budget %d", splitPoint, nsegs1, nsegs2, budget)
	return nsegs1 + nsegs2, nil
}

// twoPointSegment fits two points trivially: the interior control points
// sit one third of the chord length out along the tangents, or at the
// one-third blends of the endpoints when unconstrained. A non-finite chord
// length degenerates to a straight line segment.
func twoPointSegment(p0, p3 Point, tHat1, tHat2 Vec2) CubicBez {
	bez := CubicBez{P0: p0, P3: p3}
	dist := p3.Distance(p0) * (1.0 / 3.0)
	if math.IsNaN(dist) {
		bez.P1 = bez.P0
		bez.P2 = bez.P3
		return bez
	}
	if tHat1.IsZero() {
		bez.P1 = bez.P0.Lerp(bez.P3, 1.0/3.0)
	} else {
		bez.P1 = bez.P0.Translate(tHat1.Mul(dist))
	}
	if tHat2.IsZero() {
		bez.P2 = bez.P3.Lerp(bez.P0, 1.0/3.0)
	} else {
		bez.P2 = bez.P3.Translate(tHat2.Mul(dist))
	}
	return bez
}

package pathfit

// leftTangent estimates the forward unit tangent at d[0]: the direction
// from d[0] toward the nearest neighbor whose squared distance exceeds
// toleranceSq. If the scan reaches the far end without finding one, the
// last non-degenerate chord is used, falling back to the immediate
// neighbor without tolerance.
//
// Requires len(d) >= 2 and d[0] != d[1].
func leftTangent(d []Point, toleranceSq float64) Vec2 {
	for i := 1; ; {
		t := d[i].Sub(d[0])
		distSq := t.Hypot2()
		if toleranceSq < distSq {
			return t.Normalize()
		}
		i++
		if i == len(d) {
			if distSq == 0 {
				return d[1].Sub(d[0]).Normalize()
			}
			return t.Normalize()
		}
	}
}

// rightTangent estimates the backward unit tangent at d[len(d)-1], i.e.
// with respect to decreasing index, applying the same tolerance lookahead
// as [leftTangent].
//
// Requires len(d) >= 2 and d[len(d)-1] != d[len(d)-2].
func rightTangent(d []Point, toleranceSq float64) Vec2 {
	last := len(d) - 1
	for i := last - 1; ; i-- {
		t := d[i].Sub(d[last])
		distSq := t.Hypot2()
		if toleranceSq < distSq {
			return t.Normalize()
		}
		if i == 0 {
			if distSq == 0 {
				return d[last-1].Sub(d[last]).Normalize()
			}
			return t.Normalize()
		}
	}
}

// centerTangent estimates the backward unit tangent at a split index by
// averaging the two chords meeting there. When the two neighbors coincide,
// the chord into the split point is rotated by 90 degrees instead, in an
// arbitrary but deterministic direction, to avoid a degenerate zero tangent.
//
// Requires 0 < center < len(d)-1 and no adjacent duplicates around center.
func centerTangent(d []Point, center int) Vec2 {
	var v Vec2
	if d[center+1] == d[center-1] {
		v = d[center].Sub(d[center-1]).Turn90()
	} else {
		v = d[center-1].Sub(d[center+1])
	}
	return v.Normalize()
}

package pathfit

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func approxPoints(epsilon float64) cmp.Option {
	return cmp.Comparer(func(p1, p2 Point) bool {
		return math.Abs(p1.X-p2.X) <= epsilon && math.Abs(p1.Y-p2.Y) <= epsilon
	})
}

func approxVecs(epsilon float64) cmp.Option {
	return cmp.Comparer(func(v1, v2 Vec2) bool {
		return math.Abs(v1.X-v2.X) <= epsilon && math.Abs(v1.Y-v2.Y) <= epsilon
	})
}

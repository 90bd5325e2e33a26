package pathfit

import (
	"testing"
)

func TestComputeMaxErrorRatioExactFit(t *testing.T) {
	bez := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	u := []float64{0, 1.0 / 3.0, 2.0 / 3.0, 1}
	d := make([]Point, len(u))
	for i, ui := range u {
		d[i] = bez.Eval(ui)
	}
	ratio, _ := computeMaxErrorRatio(d, u, bez, 1e-3)
	if ratio > 1e-9 {
		t.Errorf("exact fit reported error ratio %g", ratio)
	}
}

func TestComputeMaxErrorRatioSplitsAtWorstPoint(t *testing.T) {
	bez := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	u := []float64{0, 0.25, 0.5, 0.75, 1}
	d := []Point{Pt(0, 0), Pt(0.75, 0.01), Pt(1.5, 0.5), Pt(2.25, 0.01), Pt(3, 0)}
	ratio, split := computeMaxErrorRatio(d, u, bez, 0.01)
	if ratio <= 1 {
		t.Errorf("gross deviation accepted with ratio %g", ratio)
	}
	if split != 2 {
		t.Errorf("split point = %d, want 2", split)
	}
}

func TestComputeMaxErrorRatioFlagsSnapBack(t *testing.T) {
	// Samples taken exactly on a looping curve: the pointwise distances are
	// all zero, so only hook detection can reject the fit. The curve points
	// at u=0.1 and u=0.9 sit close together while the curve between them
	// loops far out; the split lands just before that pair.
	bez := CubicBez{Pt(0, 0), Pt(0, 5), Pt(0.1, 5), Pt(0.1, 0)}
	u := []float64{0, 0.1, 0.9, 1}
	d := make([]Point, len(u))
	for i, ui := range u {
		d[i] = bez.Eval(ui)
	}
	ratio, split := computeMaxErrorRatio(d, u, bez, 0.01)
	if ratio >= 0 {
		t.Errorf("snap-back accepted with ratio %g", ratio)
	}
	if split != 1 {
		t.Errorf("split point = %d, want 1", split)
	}
}

func TestComputeHookWithinTolerance(t *testing.T) {
	bez := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	a := bez.Eval(0.4)
	b := bez.Eval(0.6)
	if hook := computeHook(a, b, 0.5, bez, 1e-3); hook != 0 {
		t.Errorf("straight segment reported hook ratio %g", hook)
	}
}

func TestComputeHookDetectsSnapBack(t *testing.T) {
	// Two samples sit close together in space while the curve between
	// their parameters loops far out.
	bez := CubicBez{Pt(0, 0), Pt(0, 5), Pt(0.1, 5), Pt(0.1, 0)}
	a := bez.Eval(0.1)
	b := bez.Eval(0.9)
	if hook := computeHook(a, b, 0.5, bez, 1e-3); hook <= 1 {
		t.Errorf("hook ratio = %g, want > 1", hook)
	}
}

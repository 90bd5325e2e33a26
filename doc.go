// Package pathfit fits chains of cubic Bézier curves to digitized 2D
// point sequences, such as freehand pen or mouse input, traced pixel
// outlines, or resampled polylines.
//
// Given an ordered sequence of points and a squared-error tolerance, the
// fitter produces a compact, smooth vector representation: as few cubic
// segments as it can manage, chained end to end, each within tolerance of
// the data it covers. It is a greedy, tolerance-bounded fit, not a
// minimum-segment-count optimizer.
//
// # Algorithm
//
// The fitter is the Schneider curve-fitting algorithm with the robustness
// extensions it accumulated in Inkscape's freehand tool: input weeding
// (NaN and duplicate removal), chord-length parameterization refined by
// Newton–Raphson iteration, tangent-constrained least-squares placement of
// the interior control points, and hook detection, which finds sharp
// corners that a pointwise distance metric misses. When a single segment
// cannot meet tolerance, the point range is split at the worst offender and
// both halves are fit recursively under a shared segment budget.
//
// The main entry points are [FitCubicMulti] and the allocating convenience
// wrapper [FitCurve]. [FitCubic] fits a single segment, and [FitCubicFull]
// exposes the recursive core for callers that manage tangent constraints
// and input sanitation themselves. [Bezier] evaluates Bézier curves of
// degree 1 through 3.
//
// # Diagnostics
//
// The package traces diagnostics and fitting decisions through the schuko
// tracing facade under the key "pathfit". Tracing is off unless the
// application selects and configures an adapter.
//
// # Literature
//
//   - [An Algorithm for Automatically Fitting Digitized Curves] by Philip J.
//     Schneider, in Graphics Gems, Academic Press, 1990
//   - [A Primer on Bézier Curves]
//
// [An Algorithm for Automatically Fitting Digitized Curves]: https://dl.acm.org/doi/10.5555/90767.90941
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package pathfit

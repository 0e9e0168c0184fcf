// Package builder generates synthetic road maps for benchmarks, property tests
// and the -grid command-line option.
//
// Every constructor returns a fresh core.Graph together with an admissible
// core.Heuristic towards a fixed goal vertex:
//
//   - Chain(n):        v0 → v1 → … → v(n-1), goal v(n-1), directed.
//   - Grid(rows, cols): orthogonal 4-neighbour grid with IDs "r,c", goal at the
//     bottom-right corner, every road usable in both directions.
//
// Edge weights come from a WeightFn (DefaultWeightFn yields 1). Estimates are
// the hop distance to the goal scaled by the smallest weight actually drawn,
// so they never exceed the true remaining cost.
//
// Determinism:
//
//	Vertex order, edge order and (for a fixed seed) weights are reproducible.
//
// Errors:
//
//   - ErrTooFewVertices for sizes below the documented minimum.
//   - ErrBadGridSpec for a malformed "RxC" string passed to ParseGrid.
//   - core errors (wrapped) when a WeightFn yields NaN or +Inf.
//
// Option constructors (WithRand, WithWeightFn) panic on nil input;
// constructors themselves never panic.
package builder

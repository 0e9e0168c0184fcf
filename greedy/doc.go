// Package greedy implements greedy best-first search over a core.Graph guided
// by a core.Heuristic.
//
// The frontier is a min-priority queue keyed by the heuristic estimate of each
// state's own vertex; accumulated cost plays no part in the ordering (that would
// be A*). The first state dequeued at the goal is returned together with its
// real accumulated cost. Ties on the estimate are broken by vertex label, then
// by path, then by cost.
//
// Greedy search is neither optimal nor complete in general: it is only as good
// as the heuristic. Paths are kept cycle-free, so on a finite graph it always
// terminates.
//
// Missing estimates
//
//	Every label greedy search touches (start and every pushed neighbor) must
//	have an estimate. A miss is a data-consistency error: Search returns an
//	error wrapping core.ErrHeuristicMissing that names the label. Pass
//	WithFallbackEstimate(v) to substitute v instead.
//
// Errors
//
//   - search.ErrGraphNil, search.ErrHeuristicNil for nil inputs.
//   - search.ErrOptionViolation for an invalid fallback estimate.
//   - core.ErrHeuristicMissing (wrapped) for a label without estimate.
//   - ctx.Err() on cancellation.
package greedy

// Package search holds the vocabulary shared by the searchbench strategies
// (bfs, ucs, greedy, iddfs): the Result type and its no-path sentinel,
// functional Options with hooks, and the frontier Entry ordering.
//
// What
//
//   - Result: Path, Cost and an Expanded counter. NoPath() is the sentinel
//     returned when goal cannot be reached: Path == nil, Cost == +Inf.
//   - Options: context for cancellation, OnEnqueue/OnExpand hooks, MaxDepth
//     for iterative deepening, an optional fallback estimate for greedy search.
//   - Entry and CompareEntries: frontier items ordered by the full tuple
//     (Priority, Node, Path, Cost), so that ties resolve the same way every run.
//
// No-path is not an error
//
//	A search that exhausts its frontier returns NoPath() and a nil error.
//	Errors are reserved for invalid input (ErrGraphNil, ErrOptionViolation),
//	context cancellation, and a missing heuristic estimate in greedy search.
//
// Usage
//
//	res, err := bfs.BFS(g, "Arad", "Bucharest",
//	    search.WithContext(ctx),
//	    search.WithOnExpand(func(node string, depth int) { /* ... */ }),
//	)
//	if err != nil {
//	    // handle ErrGraphNil, ErrOptionViolation, ctx.Err()
//	}
//	if !res.Found() {
//	    // res.Cost is +Inf
//	}
package search

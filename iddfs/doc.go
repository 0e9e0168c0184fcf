// Package iddfs implements iterative-deepening depth-first search on core.Graph.
//
// Key features:
//   - Search(g, start, goal, opts...): repeat depth-limited search with limits
//     0, 1, 2, … up to MaxDepth-1 (search.DefaultMaxDepth == 10).
//   - Depth-limited search recurses into listed neighbors left to right and
//     stops at the first success; siblings after a success are never explored.
//   - No state carries between iterations except the growing limit.
//   - Hooks: OnExpand fires on every recursive entry (all iterations).
//   - Cancellation via context.Context, checked on every recursive entry.
//
// Because limits grow one edge at a time, the first success uses a path with
// the fewest edges, like breadth-first search; among equal-length paths the
// depth-first traversal order decides.
//
// A MaxDepth of 0 tries no limit at all, so every search reports no path.
//
// Complexity:
//
//   - Time:   O(b^d) per iteration, b = branching factor, d = limit.
//   - Memory: O(d) for the recursion stack and the on-path set.
//
// Errors:
//
//   - search.ErrGraphNil          if g is nil.
//   - search.ErrOptionViolation   if MaxDepth is negative.
//   - context.Canceled            if ctx is done.
package iddfs

// Package bfs provides a path-based breadth-first search over a core.Graph,
// returning the first path found from start to goal and its accumulated cost.
//
// What
//
//   - Expand states in level order (FIFO): every path with k edges is
//     examined before any path with k+1 edges.
//   - A state is (vertex, path-so-far, cost-so-far). A neighbor already on the
//     path-so-far is never enqueued again, so every path is cycle-free.
//   - The goal test happens when a state is taken off the frontier.
//   - Returns search.NoPath() (nil path, +Inf cost) when the frontier empties.
//
// Why
//
//	BFS finds the path with the fewest edges. On a weighted map that is NOT
//	necessarily the cheapest one: Arad→Bucharest via Fagaras (3 edges, 450)
//	wins over the 4-edge route through Rimnicu Vilcea and Pitesti (418).
//
// Determinism
//
//	core.Graph lists neighbors in insertion order and BFS enqueues them in
//	that order, so the returned path is fully reproducible.
//
// Complexity
//
//	There is no visited set: distinct paths to the same vertex are all kept.
//	Time and memory are bounded by the number of simple paths explored before
//	the goal is dequeued, which is small on road-map sized graphs.
//
// Usage
//
//	res, err := bfs.BFS(g, "Arad", "Bucharest")
//	if err != nil {
//	    // ErrGraphNil, ErrOptionViolation or ctx.Err()
//	}
//	fmt.Println(res.Path, res.Cost)
//
// Options (see package search)
//
//   - search.WithContext(ctx):   cancellation, checked once per dequeue.
//   - search.WithOnEnqueue(fn):  hook when a state is enqueued.
//   - search.WithOnExpand(fn):   hook when a state is dequeued.
package bfs

// Package ucs implements uniform-cost search between two vertices of a
// weighted core.Graph.
//
// UCS expands states in increasing order of accumulated cost using a min-priority
// queue. The first state dequeued at the goal carries a minimum-cost path, given
// non-negative weights (core.Graph rejects negative ones at AddEdge).
//
// Ordering:
//
//	Frontier entries are keyed by the full tuple (cost, vertex, path). Equal
//	costs are broken by vertex label, then by the path itself compared element
//	by element, so ties resolve identically on every run.
//
// Path-based search:
//
//	There is no visited set. A vertex may sit on the frontier several times via
//	different paths; only neighbors already on the path-so-far are skipped.
//	This explores redundant states but keeps the contract simple and is cheap
//	on small maps.
//
// Complexity:
//
//   - Time:  O(P log P) where P is the number of simple paths pushed before the
//     goal is dequeued.
//   - Space: O(P · L) for the frontier, L = path length.
//
// Example usage:
//
//	res, err := ucs.UCS(g, "Arad", "Bucharest")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Path, res.Cost) // [Arad Sibiu Rimnicu Vilcea Pitesti Bucharest] 418
package ucs

// Package searchbench compares classic graph-search strategies on a small,
// static road map and ranks their answers by cost.
//
// What is in the box?
//
//	• core/   : weighted Graph with ordered adjacency, Heuristic table
//	• romania/: the Romania road map and straight-line distances to Bucharest
//	• search/ : shared Result, no-path sentinel, options & hooks, frontier ordering
//	• bfs/    : breadth-first search (fewest edges first)
//	• ucs/    : uniform-cost search (cheapest first, optimal)
//	• greedy/ : greedy best-first search (lowest estimate first)
//	• iddfs/  : iterative-deepening depth-first search
//	• compare/: run all four, rank by cost
//	• report/ : text rendering of rankings and city listings
//	• mapfile/: YAML maps with ordered adjacency
//	• builder/: synthetic chain and grid maps with admissible estimates
//	• config/ : defaults, .env, SEARCHBENCH_* environment
//
// Quick example (Arad → Bucharest):
//
//	UCS: Path = [Arad, Sibiu, Rimnicu Vilcea, Pitesti, Bucharest], Cost = 418
//	BFS: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450
//	Greedy Best-First Search: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450
//	IDDFS: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450
//
// Run it:
//
//	go run ./cmd/searchbench
package searchbench

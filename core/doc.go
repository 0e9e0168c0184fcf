// Package core provides the thread-safe in-memory Graph and the Heuristic table
// that the searchbench strategies operate on.
//
// The Graph G = (V,E) is weighted and keeps per-vertex adjacency in insertion order:
//
//   - Directed vs. undirected edges (WithDirected). Undirected graphs append the
//     mirrored edge to the target's list at the moment AddEdge is called.
//   - Self-loops are rejected (ErrLoopNotAllowed).
//   - Weights are finite, non-negative float64 values.
//   - A single sync.RWMutex guards vertices and adjacency; graphs are built once
//     and then only read, so every query takes the shared lock.
//
// Ordered adjacency:
//
//   - Neighbors are returned in insertion order. The search strategies break
//     ties by that order, so the same data yields the same path on every run.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(directed bool)
//	    true: AddEdge(from,to,w) lists only from→to.
//	    false (default): also lists to→from.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error               // O(1)
//	HasVertex(id string) bool                // O(1)
//	Vertices() []string                      // O(V·log V), sorted
//	VerticesInOrder() []string               // O(V), first-seen order
//
//	// Edge lifecycle
//	AddEdge(from, to string, weight float64) error // O(1)†
//	HasEdge(from, to string) bool            // O(deg)
//	Weight(from, to string) (float64, error) // O(deg)
//	PathCost(path []string) (float64, error) // O(len(path)·deg)
//
//	// Adjacency
//	Neighbors(id string) ([]Edge, error)     // strict: unknown id is an error
//	Successors(id string) []Edge             // lenient: unknown id has no edges
//
// Heuristic:
//
//	NewHeuristic(goal, estimates) (*Heuristic, error)
//	Estimate(label) (float64, error)         // ErrHeuristicMissing on unknown labels
//	Covers(g) []string                       // vertices of g with no estimate
//
//	† amortized constant time.
package core

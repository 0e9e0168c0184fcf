// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount/PathCost.
// Determinism:
//   - Edges() returns edges grouped by source in first-seen vertex order,
//     each group in insertion order.
// Concurrency:
//   - Mutations under mu write lock.
//   - Read queries under mu read lock.

package core

import (
	"fmt"
	"math"
)

// AddEdge appends an edge from→to with the given weight, creating missing
// endpoints. In an undirected graph the mirrored edge to→from is appended to
// the adjacency of to as well.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Lock mu, ensure both endpoints exist (from first, then to).
//  3. Append Edge to adjacency[from]; mirror into adjacency[to] if undirected.
//
// Errors:
//   - ErrEmptyVertexID, ErrBadWeight, ErrNegativeWeight, ErrLoopNotAllowed.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrBadWeight, from, to, weight)
	}
	if weight < 0 {
		return fmt.Errorf("%w: %s→%s weight=%v", ErrNegativeWeight, from, to, weight)
	}
	if from == to {
		return ErrLoopNotAllowed
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 2) Ensure vertices exist
	g.addVertexLocked(from)
	g.addVertexLocked(to)

	// 3) Link adjacency
	g.adjacency[from] = append(g.adjacency[from], Edge{From: from, To: to, Weight: weight})
	if !g.directed {
		g.adjacency[to] = append(g.adjacency[to], Edge{From: to, To: from, Weight: weight})
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge from→to is listed.
// Complexity: O(deg(from)).
func (g *Graph) HasEdge(from, to string) bool {
	_, err := g.Weight(from, to)

	return err == nil
}

// Weight returns the weight of the first listed edge from→to.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound, ErrEdgeNotFound.
//
// Complexity: O(deg(from)).
func (g *Graph) Weight(from, to string) (float64, error) {
	if from == "" || to == "" {
		return 0, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[from]; !ok {
		return 0, ErrVertexNotFound
	}
	for _, e := range g.adjacency[from] {
		if e.To == to {
			return e.Weight, nil
		}
	}

	return 0, ErrEdgeNotFound
}

// Edges returns a snapshot of every listed edge. Mirrors of undirected edges
// are included, so the result describes exactly what searches can traverse.
// Complexity: O(V + E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, g.edgeCount)
	for _, id := range g.order {
		out = append(out, g.adjacency[id]...)
	}

	return out
}

// EdgeCount returns the number of successful AddEdge calls.
// An undirected edge counts once even though it is listed twice.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// PathCost recomputes the total weight of path by summing the first listed
// edge between each consecutive pair. A single-vertex path costs 0.
//
// Errors:
//   - ErrVertexNotFound if path is empty or a step starts at an unknown vertex.
//     A single-label path costs 0 without any lookup.
//   - ErrEdgeNotFound if any consecutive pair is not connected.
//
// Complexity: O(len(path) · max deg).
func (g *Graph) PathCost(path []string) (float64, error) {
	if len(path) == 0 {
		return 0, fmt.Errorf("%w: empty path", ErrVertexNotFound)
	}
	var total float64
	for i := 1; i < len(path); i++ {
		w, err := g.Weight(path[i-1], path[i])
		if err != nil {
			return 0, fmt.Errorf("core: path step %d %q→%q: %w", i, path[i-1], path[i], err)
		}
		total += w
	}

	return total, nil
}

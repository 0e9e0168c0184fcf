// File: methods_adjacent.go
// Role: Adjacency queries: Neighbors/Successors.
// Determinism:
//   - Every query preserves insertion order; nothing is sorted here because the
//     listing order is what drives neighbor expansion in the search packages.
// Concurrency:
//   - Read queries under mu read lock; returned slices are independent copies.

package core

// Neighbors returns the outgoing edges of id in insertion order.
//
// Errors:
//   - ErrEmptyVertexID if id == "".
//   - ErrVertexNotFound if id is not a vertex.
//
// Complexity: O(deg(id)) for the copy.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	return g.copyAdjacencyLocked(id), nil
}

// Successors returns the outgoing edges of id in insertion order, or nil when
// id is empty or unknown. Searches use it so that an unknown start label
// simply has nothing to expand.
func (g *Graph) Successors(id string) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.copyAdjacencyLocked(id)
}

// copyAdjacencyLocked copies adjacency[id]; caller holds mu.
func (g *Graph) copyAdjacencyLocked(id string) []Edge {
	list := g.adjacency[id]
	if len(list) == 0 {
		return nil
	}
	out := make([]Edge, len(list))
	copy(out, list)

	return out
}

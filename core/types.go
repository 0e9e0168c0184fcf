// Package core defines the central Graph, Edge and Heuristic types
// used by every search strategy in searchbench.
//
// A Graph keeps, for each vertex, the ordered list of its outgoing edges.
// Order is insertion order and is part of the contract: the search packages
// expand neighbors exactly in that order, which makes every result reproducible.
//
// Errors:
//
//	ErrEmptyVertexID     - vertex ID is the empty string.
//	ErrVertexNotFound    - requested vertex does not exist.
//	ErrEdgeNotFound      - no edge between the requested endpoints.
//	ErrBadWeight         - weight is NaN or infinite.
//	ErrNegativeWeight    - weight is below zero.
//	ErrLoopNotAllowed    - edge from a vertex to itself.
//	ErrHeuristicMissing  - heuristic has no estimate for a label.
//	ErrBadEstimate       - estimate is negative, NaN or infinite.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates that no edge connects the requested endpoints.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrLoopNotAllowed indicates an edge from a vertex to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrHeuristicMissing indicates a label with no heuristic estimate.
	ErrHeuristicMissing = errors.New("core: no heuristic estimate for label")

	// ErrBadEstimate indicates a negative, NaN or infinite heuristic estimate.
	ErrBadEstimate = errors.New("core: estimate must be finite and non-negative")
)

// Edge is one outgoing connection of a vertex.
//
// In directed graphs an Edge appears only in the adjacency of From. In undirected
// graphs AddEdge also appends the mirrored Edge (To→From) to the adjacency of To.
type Edge struct {
	// From is the source vertex ID.
	From string

	// To is the destination vertex ID.
	To string

	// Weight is the travel cost; finite and non-negative.
	Weight float64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets whether AddEdge records only from→to (true)
// or also mirrors to→from (false, the default).
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is an in-memory weighted graph with ordered adjacency.
//
// mu guards vertices, order and adjacency. Graphs are built once and then only
// read by the search packages, so reads take the shared lock.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	directed bool // AddEdge records only from→to

	// Storage
	vertices  map[string]struct{} // vertex ID set
	order     []string            // vertex IDs in first-seen order
	adjacency map[string][]Edge   // vertex ID → outgoing edges in insertion order
	edgeCount int                 // number of AddEdge calls that succeeded
}

// NewGraph creates an empty Graph with the given options.
// By default, Graph is undirected. Self-loops are always rejected.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string][]Edge),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Directed reports whether AddEdge records only from→to.
func (g *Graph) Directed() bool { return g.directed }

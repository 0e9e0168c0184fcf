package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/core"
)

func TestGraph_AddVertex(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"), "AddVertex must be idempotent")
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.Equal(t, 1, g.VertexCount())

	assert.False(t, g.Directed())
	assert.True(t, core.NewGraph(core.WithDirected(true)).Directed())
	assert.False(t, g.HasVertex("missing"))
}

// targets lists the destination IDs of edges in order.
func targets(edges []core.Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids
}

func TestGraph_AddEdgeValidation(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B", 1), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "B", -1), core.ErrNegativeWeight)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.NaN()), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge("A", "B", math.Inf(1)), core.ErrBadWeight)
	assert.ErrorIs(t, g.AddEdge("A", "A", 1), core.ErrLoopNotAllowed)
	assert.ErrorIs(t, core.NewGraph(core.WithDirected(true)).AddEdge("A", "A", 0), core.ErrLoopNotAllowed)
	assert.Equal(t, 0, g.VertexCount(), "rejected edges must not create vertices")
}

func TestGraph_InsertionOrderIsKept(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "Zed", 3))
	require.NoError(t, g.AddEdge("S", "Alpha", 1))
	require.NoError(t, g.AddEdge("S", "Mid", 2))

	assert.Equal(t, []string{"Zed", "Alpha", "Mid"}, targets(g.Successors("S")))
	assert.Equal(t, []string{"S", "Zed", "Alpha", "Mid"}, g.VerticesInOrder())
	assert.Equal(t, []string{"Alpha", "Mid", "S", "Zed"}, g.Vertices())
}

func TestGraph_DirectedVsUndirected(t *testing.T) {
	dg := core.NewGraph(core.WithDirected(true))
	require.NoError(t, dg.AddEdge("A", "B", 4))
	assert.True(t, dg.HasEdge("A", "B"))
	assert.False(t, dg.HasEdge("B", "A"))
	edges, err := dg.Neighbors("B")
	require.NoError(t, err)
	assert.Empty(t, edges)

	ug := core.NewGraph()
	require.NoError(t, ug.AddEdge("A", "B", 4))
	require.NoError(t, ug.AddEdge("C", "B", 2))
	assert.True(t, ug.HasEdge("B", "A"))
	assert.Equal(t, []string{"A", "C"}, targets(ug.Successors("B")), "mirrors are appended in AddEdge order")
	assert.Equal(t, 2, ug.EdgeCount())
	assert.Len(t, ug.Edges(), 4)
}

func TestGraph_NeighborsAndSuccessors(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 1.5))

	edges, err := g.Neighbors("A")
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: "A", To: "B", Weight: 1.5}}, edges)

	_, err = g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.Neighbors("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	assert.Nil(t, g.Successors("nope"))
	assert.Nil(t, g.Successors("B"))

	// returned slices are copies
	edges[0].To = "X"
	again, _ := g.Neighbors("A")
	assert.Equal(t, "B", again[0].To)
}

func TestGraph_WeightAndPathCost(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("A", "B", 2))
	require.NoError(t, g.AddEdge("B", "C", 3.5))

	w, err := g.Weight("B", "C")
	require.NoError(t, err)
	assert.Equal(t, 3.5, w)
	_, err = g.Weight("C", "B")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	_, err = g.Weight("Q", "B")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	cost, err := g.PathCost([]string{"A", "B", "C"})
	require.NoError(t, err)
	assert.Equal(t, 5.5, cost)

	cost, err = g.PathCost([]string{"Z"})
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = g.PathCost(nil)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.PathCost([]string{"A", "C"})
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_ConcurrentReads(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 1))
	}

	var wg sync.WaitGroup
	costs := make([]float64, 16)
	for i := range costs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			costs[i], _ = g.PathCost([]string{"A", "B", "C", "D"})
		}(i)
	}
	wg.Wait()
	for _, c := range costs {
		assert.Equal(t, 3.0, c)
	}
}

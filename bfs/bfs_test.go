package bfs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/bfs"
	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/romania"
	"github.com/katalvlaran/searchbench/search"
)

func TestBFS_NilGraph(t *testing.T) {
	res, err := bfs.BFS(nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrGraphNil)
	assert.False(t, res.Found())
}

func TestBFS_Romania(t *testing.T) {
	g := romania.Graph()
	tests := []struct {
		start, goal string
		path        []string
		cost        float64
	}{
		{"Arad", "Bucharest", []string{"Arad", "Sibiu", "Fagaras", "Bucharest"}, 450},
		{"Timisoara", "Bucharest", []string{"Timisoara", "Arad", "Sibiu", "Fagaras", "Bucharest"}, 568},
		{"Oradea", "Craiova", []string{"Oradea", "Sibiu", "Rimnicu Vilcea", "Craiova"}, 377},
		{"Bucharest", "Arad", []string{"Bucharest", "Fagaras", "Sibiu", "Arad"}, 450},
		{"Lugoj", "Oradea", []string{"Lugoj", "Timisoara", "Arad", "Zerind", "Oradea"}, 375},
	}
	for _, tc := range tests {
		t.Run(tc.start+"→"+tc.goal, func(t *testing.T) {
			res, err := bfs.BFS(g, tc.start, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.cost, res.Cost)
			assert.Positive(t, res.Expanded)

			// reported cost matches the recomputed edge sum
			sum, err := g.PathCost(res.Path)
			require.NoError(t, err)
			assert.Equal(t, sum, res.Cost)
		})
	}
}

func TestBFS_StartIsGoal(t *testing.T) {
	res, err := bfs.BFS(romania.Graph(), "Arad", "Arad")
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad"}, res.Path)
	assert.Zero(t, res.Cost)

	// even when the label is not a vertex
	res, err = bfs.BFS(romania.Graph(), "Paris", "Paris")
	require.NoError(t, err)
	assert.Equal(t, []string{"Paris"}, res.Path)
	assert.Zero(t, res.Cost)
}

func TestBFS_NoPath(t *testing.T) {
	g := romania.Graph()
	for _, pair := range [][2]string{{"Giurgiu", "Arad"}, {"Arad", "Paris"}, {"Paris", "Arad"}} {
		res, err := bfs.BFS(g, pair[0], pair[1])
		require.NoError(t, err)
		assert.Nil(t, res.Path)
		assert.True(t, math.IsInf(res.Cost, 1))
	}
}

func TestBFS_FewestEdgesNotCheapest(t *testing.T) {
	// S→G costs 10 directly; S→A→G costs 2.
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "G", 10))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "G", 1))

	res, err := bfs.BFS(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "G"}, res.Path)
	assert.Equal(t, 10.0, res.Cost)
}

func TestBFS_NeighborOrderBreaksTies(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "B", 1))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "G", 1))
	require.NoError(t, g.AddEdge("B", "G", 5))

	res, err := bfs.BFS(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "B", "G"}, res.Path)
	assert.Equal(t, 6.0, res.Cost)
}

func TestBFS_CyclesTerminate(t *testing.T) {
	g := core.NewGraph() // undirected: every edge is a 2-cycle
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "A", 1))
	require.NoError(t, g.AddVertex("Z"))

	res, err := bfs.BFS(g, "A", "Z")
	require.NoError(t, err)
	assert.False(t, res.Found())
}

func TestBFS_Hooks(t *testing.T) {
	var enq, exp []string
	res, err := bfs.BFS(romania.Graph(), "Arad", "Sibiu",
		search.WithOnEnqueue(func(n string, _ int) { enq = append(enq, n) }),
		search.WithOnExpand(func(n string, _ int) { exp = append(exp, n) }),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"Arad", "Sibiu"}, res.Path)
	assert.Equal(t, []string{"Arad", "Zerind", "Timisoara", "Sibiu", "Oradea", "Lugoj"}, enq)
	assert.Equal(t, []string{"Arad", "Zerind", "Timisoara", "Sibiu"}, exp)
	assert.Equal(t, len(exp), res.Expanded)
}

func TestBFS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(romania.Graph(), "Arad", "Bucharest", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBFS_OptionViolation(t *testing.T) {
	_, err := bfs.BFS(romania.Graph(), "Arad", "Bucharest", search.WithMaxDepth(-3))
	assert.ErrorIs(t, err, search.ErrOptionViolation)
}

package ucs_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/romania"
	"github.com/katalvlaran/searchbench/search"
	"github.com/katalvlaran/searchbench/ucs"
)

func TestUCS_NilGraph(t *testing.T) {
	_, err := ucs.UCS(nil, "A", "B")
	assert.ErrorIs(t, err, search.ErrGraphNil)
}

func TestUCS_Romania(t *testing.T) {
	g := romania.Graph()
	tests := []struct {
		start, goal string
		path        []string
		cost        float64
	}{
		{"Arad", "Bucharest", []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, 418},
		{"Timisoara", "Bucharest", []string{"Timisoara", "Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest"}, 536},
		{"Bucharest", "Arad", []string{"Bucharest", "Pitesti", "Rimnicu Vilcea", "Sibiu", "Arad"}, 418},
		{"Arad", "Giurgiu", []string{"Arad", "Sibiu", "Rimnicu Vilcea", "Pitesti", "Bucharest", "Giurgiu"}, 508},
		{"Drobeta", "Fagaras", []string{"Drobeta", "Craiova", "Rimnicu Vilcea", "Sibiu", "Fagaras"}, 445},
	}
	for _, tc := range tests {
		t.Run(tc.start+"→"+tc.goal, func(t *testing.T) {
			res, err := ucs.UCS(g, tc.start, tc.goal)
			require.NoError(t, err)
			assert.Equal(t, tc.path, res.Path)
			assert.Equal(t, tc.cost, res.Cost)
		})
	}
}

func TestUCS_NoPathAndTrivial(t *testing.T) {
	g := romania.Graph()

	res, err := ucs.UCS(g, "Giurgiu", "Arad")
	require.NoError(t, err)
	assert.Nil(t, res.Path)
	assert.True(t, math.IsInf(res.Cost, 1))

	res, err = ucs.UCS(g, "Sibiu", "Sibiu")
	require.NoError(t, err)
	assert.Equal(t, []string{"Sibiu"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Equal(t, 1, res.Expanded)
}

func TestUCS_CheaperLongerPath(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "G", 10))
	require.NoError(t, g.AddEdge("S", "A", 1))
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "G", 1))

	res, err := ucs.UCS(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A", "B", "G"}, res.Path)
	assert.Equal(t, 3.0, res.Cost)
}

func TestUCS_EqualCostTieBreak(t *testing.T) {
	// Two routes of cost 2 reach G; the path through the smaller label wins.
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("S", "Y", 1))
	require.NoError(t, g.AddEdge("S", "X", 1))
	require.NoError(t, g.AddEdge("Y", "G", 1))
	require.NoError(t, g.AddEdge("X", "G", 1))

	res, err := ucs.UCS(g, "S", "G")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "X", "G"}, res.Path)
	assert.Equal(t, 2.0, res.Cost)
}

func TestUCS_ZeroWeights(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", 0))
	require.NoError(t, g.AddEdge("B", "C", 0))

	res, err := ucs.UCS(g, "A", "C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Path)
	assert.Zero(t, res.Cost)
}

// TestUCS_MatchesDijkstra checks every ordered pair of the Romania map
// against gonum's Dijkstra implementation.
func TestUCS_MatchesDijkstra(t *testing.T) {
	g := romania.Graph()
	labels := g.VerticesInOrder()
	ids := make(map[string]int64, len(labels))
	for i, l := range labels {
		ids[l] = int64(i)
	}

	oracle := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for _, l := range labels {
		oracle.AddNode(simple.Node(ids[l]))
	}
	for _, e := range g.Edges() {
		oracle.SetWeightedEdge(oracle.NewWeightedEdge(simple.Node(ids[e.From]), simple.Node(ids[e.To]), e.Weight))
	}

	for _, from := range labels {
		shortest := path.DijkstraFrom(simple.Node(ids[from]), oracle)
		for _, to := range labels {
			res, err := ucs.UCS(g, from, to)
			require.NoError(t, err)
			assert.Equal(t, shortest.WeightTo(ids[to]), res.Cost, "%s→%s", from, to)
			if res.Found() {
				assert.True(t, search.IsSimple(res.Path))
				sum, err := g.PathCost(res.Path)
				require.NoError(t, err)
				assert.Equal(t, sum, res.Cost)
			}
		}
	}
}

func TestUCS_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ucs.UCS(romania.Graph(), "Arad", "Bucharest", search.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

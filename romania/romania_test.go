package romania_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/romania"
)

func TestGraph_Shape(t *testing.T) {
	g := romania.Graph()
	assert.Equal(t, 14, g.VertexCount())
	assert.Equal(t, 33, g.EdgeCount())
	assert.True(t, g.Directed())

	edges, err := g.Neighbors("Arad")
	require.NoError(t, err)
	assert.Equal(t, []string{"Zerind", "Timisoara", "Sibiu"}, targets(edges))

	edges, err = g.Neighbors("Giurgiu")
	require.NoError(t, err)
	assert.Empty(t, edges, "Giurgiu has no outgoing roads")
	assert.True(t, g.HasEdge("Bucharest", "Giurgiu"))
}

func TestGraph_FreshCopies(t *testing.T) {
	a := romania.Graph()
	require.NoError(t, a.AddEdge("Giurgiu", "Bucharest", 90))
	require.NoError(t, a.AddEdge("Arad", "Bucharest", 1))

	b := romania.Graph()
	assert.False(t, b.HasEdge("Giurgiu", "Bucharest"))
	assert.False(t, b.HasEdge("Arad", "Bucharest"))
	assert.Equal(t, 33, b.EdgeCount())

	labels := romania.Heuristic().Labels()
	labels[0] = "Nowhere"
	v, err := romania.Heuristic().Estimate("Arad")
	require.NoError(t, err)
	assert.Equal(t, 366.0, v)
	assert.NotContains(t, romania.Heuristic().Labels(), "Nowhere")
}

func TestGraph_RoadsAreSymmetricExceptGiurgiu(t *testing.T) {
	g := romania.Graph()
	for _, e := range g.Edges() {
		if e.To == "Giurgiu" {
			continue
		}
		w, err := g.Weight(e.To, e.From)
		require.NoError(t, err, "%s→%s has no way back", e.From, e.To)
		assert.Equal(t, e.Weight, w)
	}
}

func TestHeuristic(t *testing.T) {
	g := romania.Graph()
	h := romania.Heuristic()
	assert.Equal(t, romania.Goal, h.Goal())
	assert.Equal(t, 14, h.Len())
	assert.Empty(t, h.Covers(g))

	v, err := h.Estimate("Arad")
	require.NoError(t, err)
	assert.Equal(t, 366.0, v)
	v, err = h.Estimate(romania.Goal)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// targets lists the destination IDs of edges in order.
func targets(edges []core.Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids
}

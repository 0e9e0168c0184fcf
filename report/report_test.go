package report_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/searchbench/compare"
	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/report"
	"github.com/katalvlaran/searchbench/romania"
	"github.com/katalvlaran/searchbench/search"
)

func TestRanking_Romania(t *testing.T) {
	r, err := compare.Run(context.Background(), romania.Graph(), romania.Heuristic(), "Arad", "Bucharest")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Ranking(r))

	want := "\nSearch results sorted by cost:\n" +
		"UCS: Path = [Arad, Sibiu, Rimnicu Vilcea, Pitesti, Bucharest], Cost = 418\n" +
		"BFS: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450\n" +
		"Greedy Best-First Search: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450\n" +
		"IDDFS: Path = [Arad, Sibiu, Fagaras, Bucharest], Cost = 450\n"
	assert.Equal(t, want, buf.String())
}

func TestRanking_NoPathAndError(t *testing.T) {
	r := compare.Ranking{
		{Name: "BFS", Result: search.NoPath()},
		{Name: "Greedy Best-First Search", Result: search.NoPath(), Err: errors.New("greedy: boom")},
		{Name: "UCS", Result: search.Result{Path: []string{"A"}, Cost: 0}},
	}
	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Ranking(r))

	want := "\nSearch results sorted by cost:\n" +
		"UCS: Path = [A], Cost = 0\n" +
		"BFS: Path = None, Cost = inf\n" +
		"Greedy Best-First Search: error: greedy: boom\n"
	assert.Equal(t, want, buf.String())
}

func TestColor(t *testing.T) {
	o := compare.Outcome{Name: "UCS", Result: search.Result{Path: []string{"A", "B"}, Cost: 2.5}}

	var plain, colored bytes.Buffer
	require.NoError(t, report.New(&plain).Outcome(o))
	require.NoError(t, report.New(&colored, report.WithColor(true)).Outcome(o))

	assert.Equal(t, "UCS: Path = [A, B], Cost = 2.5\n", plain.String())
	assert.Contains(t, colored.String(), "\x1b[")
	assert.Contains(t, colored.String(), "Path = [A, B], Cost = 2.5")
}

func TestCities(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	require.NoError(t, g.AddEdge("Zed", "Amy", 3))
	require.NoError(t, g.AddEdge("Zed", "Bob", 1.5))
	require.NoError(t, g.AddVertex("Cal"))
	h, err := core.NewHeuristic("Amy", map[string]float64{"Amy": 0, "Zed": 4})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.New(&buf).Cities(g, h))
	want := "Amy (estimate 0): none\n" +
		"Bob (estimate -): none\n" +
		"Cal (estimate -): none\n" +
		"Zed (estimate 4): Amy 3, Bob 1.5\n"
	assert.Equal(t, want, buf.String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "None", report.FormatPath(nil))
	assert.Equal(t, "[]", report.FormatPath([]string{}))
	assert.Equal(t, "[Arad]", report.FormatPath([]string{"Arad"}))
	assert.Equal(t, "[Pitesti, Rimnicu Vilcea]", report.FormatPath([]string{"Pitesti", "Rimnicu Vilcea"}),
		"labels are printed unquoted")
	assert.Equal(t, "inf", report.FormatCost(math.Inf(1)))
	assert.Equal(t, "418", report.FormatCost(418))
	assert.Equal(t, "0.1", report.FormatCost(0.1))
}

package compare

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/searchbench/bfs"
	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/greedy"
	"github.com/katalvlaran/searchbench/iddfs"
	"github.com/katalvlaran/searchbench/search"
	"github.com/katalvlaran/searchbench/ucs"
)

// SearchFunc is the uniform signature every strategy is adapted to.
// Uninformed strategies ignore h.
type SearchFunc func(g *core.Graph, h *core.Heuristic, start, goal string, opts ...search.Option) (search.Result, error)

// Strategy names a SearchFunc.
type Strategy struct {
	// Key is the short selector used on the command line ("bfs", "ucs", ...).
	Key string

	// Name is the label printed in reports.
	Name string

	// Search runs the strategy.
	Search SearchFunc
}

// Strategies returns the four strategies in run order.
func Strategies() []Strategy {
	return []Strategy{
		{Key: "bfs", Name: bfs.Name, Search: func(g *core.Graph, _ *core.Heuristic, start, goal string, opts ...search.Option) (search.Result, error) {
			return bfs.BFS(g, start, goal, opts...)
		}},
		{Key: "ucs", Name: ucs.Name, Search: func(g *core.Graph, _ *core.Heuristic, start, goal string, opts ...search.Option) (search.Result, error) {
			return ucs.UCS(g, start, goal, opts...)
		}},
		{Key: "greedy", Name: greedy.Name, Search: greedy.Search},
		{Key: "iddfs", Name: iddfs.Name, Search: func(g *core.Graph, _ *core.Heuristic, start, goal string, opts ...search.Option) (search.Result, error) {
			return iddfs.Search(g, start, goal, opts...)
		}},
	}
}

// Lookup finds a strategy by Key, case-insensitively.
func Lookup(key string) (Strategy, error) {
	want := strings.ToLower(strings.TrimSpace(key))
	for _, s := range Strategies() {
		if s.Key == want {
			return s, nil
		}
	}

	return Strategy{}, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownStrategy, key, strings.Join(Keys(), ", "))
}

// Keys returns the strategy keys, sorted.
func Keys() []string {
	keys := make([]string, 0, 4)
	for _, s := range Strategies() {
		keys = append(keys, s.Key)
	}
	sort.Strings(keys)

	return keys
}

package compare

import (
	"context"
	"errors"
	"math"
	"sort"
	"time"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/search"
)

// ErrUnknownStrategy is returned by Lookup for an unrecognized key.
var ErrUnknownStrategy = errors.New("compare: unknown strategy")

// Outcome is the result of one strategy in a comparison.
type Outcome struct {
	// Name is the strategy label.
	Name string

	// Result is the search result; search.NoPath() when Err != nil.
	Result search.Result

	// Err is the strategy's own failure, if any.
	Err error

	// Elapsed is the wall time the strategy took.
	Elapsed time.Duration
}

// RankCost is the cost used for ranking: Result.Cost, or +Inf when Err != nil.
func (o Outcome) RankCost() float64 {
	if o.Err != nil {
		return math.Inf(1)
	}

	return o.Result.Cost
}

// Ranking is an ordered list of outcomes.
type Ranking []Outcome

// Sort returns a copy of r ordered by ascending RankCost. Failed outcomes
// follow unreachable ones; otherwise equal costs keep their order in r.
func (r Ranking) Sort() Ranking {
	out := make(Ranking, len(r))
	copy(out, r)
	sort.SliceStable(out, func(i, j int) bool {
		ci, cj := out[i].RankCost(), out[j].RankCost()
		if ci != cj {
			return ci < cj
		}
		return out[i].Err == nil && out[j].Err != nil
	})

	return out
}

// Best returns the cheapest successful outcome, preferring the earliest on ties.
func (r Ranking) Best() (Outcome, bool) {
	sorted := r.Sort()
	if len(sorted) == 0 || sorted[0].Err != nil || !sorted[0].Result.Found() {
		return Outcome{}, false
	}

	return sorted[0], true
}

// Run invokes every strategy from Strategies() on (start, goal) and returns
// the outcomes in run order. opts are passed to every strategy, after a
// search.WithContext(ctx).
//
// Returns search.ErrGraphNil or search.ErrHeuristicNil for nil inputs; per
// strategy failures are recorded in Outcome.Err instead.
func Run(ctx context.Context, g *core.Graph, h *core.Heuristic, start, goal string, opts ...search.Option) (Ranking, error) {
	return RunStrategies(ctx, Strategies(), g, h, start, goal, opts...)
}

// RunStrategies is Run over a caller-chosen list of strategies.
func RunStrategies(ctx context.Context, strategies []Strategy, g *core.Graph, h *core.Heuristic, start, goal string, opts ...search.Option) (Ranking, error) {
	if g == nil {
		return nil, search.ErrGraphNil
	}
	if h == nil {
		return nil, search.ErrHeuristicNil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	all := make([]search.Option, 0, len(opts)+1)
	all = append(all, search.WithContext(ctx))
	all = append(all, opts...)

	out := make(Ranking, 0, len(strategies))
	for _, s := range strategies {
		began := time.Now()
		res, err := s.Search(g, h, start, goal, all...)
		if err != nil {
			res = search.NoPath()
		}
		out = append(out, Outcome{Name: s.Name, Result: res, Err: err, Elapsed: time.Since(began)})
	}

	return out, nil
}

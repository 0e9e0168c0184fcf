package iddfs

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/search"
)

// Name is the label IDDFS results carry in comparisons and reports.
const Name = "IDDFS"

// WithMaxDepth bounds the iterations: limits 0..d-1 are tried.
// It is shorthand for search.WithMaxDepth.
func WithMaxDepth(d int) search.Option {
	return search.WithMaxDepth(d)
}

// dlsWalker encapsulates state during one depth-limited pass.
type dlsWalker struct {
	graph    *core.Graph    // underlying graph
	opts     search.Options // hooks and context
	goal     string         // target vertex
	path     []string       // current recursion stack, start first
	onPath   *hashset.Set   // companion set of path for O(1) membership
	expanded int            // recursive entries, accumulated across passes
}

// Search performs iterative-deepening DFS from start to goal.
// Returns the first path found at the smallest successful limit,
// search.NoPath() if no limit below MaxDepth succeeds, or an error.
func Search(g *core.Graph, start, goal string, opts ...search.Option) (search.Result, error) {
	// 1. Validate input graph and options
	if g == nil {
		return search.NoPath(), search.ErrGraphNil
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return search.NoPath(), err
	}

	w := &dlsWalker{graph: g, opts: o, goal: goal}

	// 2. Deepen one level at a time
	for limit := 0; limit < o.MaxDepth; limit++ {
		res, ok, err := w.pass(start, limit)
		if err != nil {
			return search.NoPath(), err
		}
		if ok {
			return res, nil
		}
	}

	res := search.NoPath()
	res.Expanded = w.expanded

	return res, nil
}

// pass runs one depth-limited search from start with the given limit.
func (w *dlsWalker) pass(start string, limit int) (search.Result, bool, error) {
	w.path = append(w.path[:0], start)
	w.onPath = hashset.New(start)

	return w.dls(start, 0, limit)
}

// dls visits node with cost-so-far and remaining depth budget. It reports
// success with the result, or false when no descendant within budget is goal.
func (w *dlsWalker) dls(node string, cost float64, budget int) (search.Result, bool, error) {
	// 1. Cancellation check
	if err := w.opts.Cancelled(); err != nil {
		return search.Result{}, false, err
	}
	w.expanded++
	w.opts.OnExpand(node, len(w.path)-1)

	// 2. Goal test before the budget test: a goal at the limit still counts
	if node == w.goal {
		path := make([]string, len(w.path))
		copy(path, w.path)

		return search.Result{Path: path, Cost: cost, Expanded: w.expanded}, true, nil
	}
	if budget <= 0 {
		return search.Result{}, false, nil
	}

	// 3. Recurse into listed neighbors, first success wins
	for _, e := range w.graph.Successors(node) {
		if w.onPath.Contains(e.To) {
			continue
		}
		w.opts.OnEnqueue(e.To, len(w.path))
		w.path = append(w.path, e.To)
		w.onPath.Add(e.To)

		res, ok, err := w.dls(e.To, cost+e.Weight, budget-1)

		w.onPath.Remove(e.To)
		w.path = w.path[:len(w.path)-1]

		if err != nil || ok {
			return res, ok, err
		}
	}

	return search.Result{}, false, nil
}

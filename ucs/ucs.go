package ucs

import (
	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/search"
)

// Name is the label UCS results carry in comparisons and reports.
const Name = "UCS"

// UCS computes a minimum-cost path from start to goal in g.
//
// Returns:
//
//   - the path and its cost when goal is reachable;
//   - search.NoPath() when the frontier empties first;
//   - ErrGraphNil, ErrOptionViolation or ctx.Err() on invalid input or cancellation.
//
// start == goal yields ([start], 0) even when start is not a vertex of g.
func UCS(g *core.Graph, start, goal string, opts ...search.Option) (search.Result, error) {
	// 1) Validate graph and options
	if g == nil {
		return search.NoPath(), search.ErrGraphNil
	}
	cfg, err := search.Apply(opts...)
	if err != nil {
		return search.NoPath(), err
	}

	// 2) Initialize runner and seed (0, start, [start])
	r := &runner{
		g:    g,
		opts: cfg,
		goal: goal,
		pq:   priorityqueue.NewWith(search.CompareEntries),
	}
	r.push(&search.Entry{Priority: 0, Node: start, Path: []string{start}, Cost: 0})

	// 3) Run main loop
	return r.process()
}

// runner holds the mutable state for a single UCS execution.
type runner struct {
	g        *core.Graph          // read-only within UCS
	opts     search.Options       // hooks and context
	goal     string               // target vertex
	pq       *priorityqueue.Queue // min-heap of *search.Entry keyed by (cost, node, path)
	expanded int                  // number of dequeued states
}

// push adds e to the heap and fires OnEnqueue.
func (r *runner) push(e *search.Entry) {
	r.opts.OnEnqueue(e.Node, e.Depth())
	r.pq.Enqueue(e)
}

// process repeatedly extracts the cheapest state. It stops when the goal is
// extracted, the heap becomes empty, or the context is cancelled.
func (r *runner) process() (search.Result, error) {
	for !r.pq.Empty() {
		if err := r.opts.Cancelled(); err != nil {
			return search.NoPath(), err
		}

		v, _ := r.pq.Dequeue()
		cur := v.(*search.Entry)
		r.expanded++
		r.opts.OnExpand(cur.Node, cur.Depth())

		if cur.Node == r.goal {
			return search.Result{Path: cur.Path, Cost: cur.Cost, Expanded: r.expanded}, nil
		}

		// Relax every listed edge whose target is not already on the path.
		for _, e := range r.g.Successors(cur.Node) {
			if search.OnPath(cur.Path, e.To) {
				continue
			}
			next := cur.Cost + e.Weight
			r.push(&search.Entry{
				Priority: next,
				Node:     e.To,
				Path:     search.Extend(cur.Path, e.To),
				Cost:     next,
			})
		}
	}

	res := search.NoPath()
	res.Expanded = r.expanded

	return res, nil
}

package greedy

import (
	"fmt"

	"github.com/emirpasic/gods/queues/priorityqueue"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/search"
)

// Name is the label greedy results carry in comparisons and reports.
const Name = "Greedy Best-First Search"

// WithFallbackEstimate substitutes v for labels the heuristic does not cover.
// It is shorthand for search.WithFallbackEstimate.
func WithFallbackEstimate(v float64) search.Option {
	return search.WithFallbackEstimate(v)
}

// Search runs greedy best-first search on g from start to goal using h.
//
// Returns the first path dequeued at goal with its accumulated cost,
// search.NoPath() when the frontier empties, or an error (see package doc).
func Search(g *core.Graph, h *core.Heuristic, start, goal string, opts ...search.Option) (search.Result, error) {
	if g == nil {
		return search.NoPath(), search.ErrGraphNil
	}
	if h == nil {
		return search.NoPath(), search.ErrHeuristicNil
	}
	cfg, err := search.Apply(opts...)
	if err != nil {
		return search.NoPath(), err
	}

	s := &searcher{
		g:    g,
		h:    h,
		opts: cfg,
		goal: goal,
		pq:   priorityqueue.NewWith(search.CompareEntries),
	}
	if err = s.push(start, []string{start}, 0); err != nil {
		return search.NoPath(), err
	}

	return s.run()
}

// searcher holds the mutable state for one greedy search.
type searcher struct {
	g        *core.Graph
	h        *core.Heuristic
	opts     search.Options
	goal     string
	pq       *priorityqueue.Queue // of *search.Entry keyed by (estimate, node, path, cost)
	expanded int
}

// estimate looks up node, applying the fallback when configured.
func (s *searcher) estimate(node string) (float64, error) {
	v, err := s.h.Estimate(node)
	if err == nil {
		return v, nil
	}
	if s.opts.FallbackEstimate != nil {
		return *s.opts.FallbackEstimate, nil
	}

	return 0, fmt.Errorf("greedy: %w", err)
}

// push keys a new state by its vertex estimate and enqueues it.
func (s *searcher) push(node string, path []string, cost float64) error {
	est, err := s.estimate(node)
	if err != nil {
		return err
	}
	e := &search.Entry{Priority: est, Node: node, Path: path, Cost: cost}
	s.opts.OnEnqueue(node, e.Depth())
	s.pq.Enqueue(e)

	return nil
}

// run expands the most promising state until the goal is dequeued,
// the frontier empties, an estimate is missing, or the context is cancelled.
func (s *searcher) run() (search.Result, error) {
	for !s.pq.Empty() {
		if err := s.opts.Cancelled(); err != nil {
			return search.NoPath(), err
		}

		v, _ := s.pq.Dequeue()
		cur := v.(*search.Entry)
		s.expanded++
		s.opts.OnExpand(cur.Node, cur.Depth())

		if cur.Node == s.goal {
			return search.Result{Path: cur.Path, Cost: cur.Cost, Expanded: s.expanded}, nil
		}

		for _, e := range s.g.Successors(cur.Node) {
			if search.OnPath(cur.Path, e.To) {
				continue
			}
			if err := s.push(e.To, search.Extend(cur.Path, e.To), cur.Cost+e.Weight); err != nil {
				return search.NoPath(), err
			}
		}
	}

	res := search.NoPath()
	res.Expanded = s.expanded

	return res, nil
}

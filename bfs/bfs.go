package bfs

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/searchbench/core"
	"github.com/katalvlaran/searchbench/search"
)

// Name is the label BFS results carry in comparisons and reports.
const Name = "BFS"

// walker encapsulates mutable BFS state.
type walker struct {
	graph    *core.Graph
	opts     search.Options
	goal     string
	queue    *linkedlistqueue.Queue // of *search.Entry
	expanded int
}

// BFS runs breadth-first search on g from start to goal, applying any number
// of functional Options.
//
// Returns the first path dequeued at goal and its cost, search.NoPath() when
// goal is unreachable, or ErrGraphNil / ErrOptionViolation / ctx.Err().
// start == goal yields ([start], 0) even when start is not a vertex of g.
func BFS(g *core.Graph, start, goal string, opts ...search.Option) (search.Result, error) {
	if g == nil {
		return search.NoPath(), search.ErrGraphNil
	}
	o, err := search.Apply(opts...)
	if err != nil {
		return search.NoPath(), err
	}

	w := &walker{
		graph: g,
		opts:  o,
		goal:  goal,
		queue: linkedlistqueue.New(),
	}

	// Seed queue with the start state
	w.enqueue(&search.Entry{Node: start, Path: []string{start}})

	return w.loop()
}

// enqueue calls OnEnqueue and appends e to the back of the queue.
func (w *walker) enqueue(e *search.Entry) {
	w.opts.OnEnqueue(e.Node, e.Depth())
	w.queue.Enqueue(e)
}

// dequeue pops the oldest entry and calls OnExpand.
func (w *walker) dequeue() *search.Entry {
	v, _ := w.queue.Dequeue()
	e := v.(*search.Entry)
	w.expanded++
	w.opts.OnExpand(e.Node, e.Depth())

	return e
}

// loop processes the queue until the goal is dequeued, the queue empties,
// or the context is cancelled.
func (w *walker) loop() (search.Result, error) {
	for !w.queue.Empty() {
		if err := w.opts.Cancelled(); err != nil {
			return search.NoPath(), err
		}

		item := w.dequeue()
		if item.Node == w.goal {
			return search.Result{Path: item.Path, Cost: item.Cost, Expanded: w.expanded}, nil
		}
		w.enqueueNeighbors(item)
	}

	res := search.NoPath()
	res.Expanded = w.expanded

	return res, nil
}

// enqueueNeighbors appends one state per listed neighbor not already on the path.
func (w *walker) enqueueNeighbors(item *search.Entry) {
	for _, e := range w.graph.Successors(item.Node) {
		if search.OnPath(item.Path, e.To) {
			continue
		}
		w.enqueue(&search.Entry{
			Node: e.To,
			Path: search.Extend(item.Path, e.To),
			Cost: item.Cost + e.Weight,
		})
	}
}

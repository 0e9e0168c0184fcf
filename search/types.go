package search

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors shared by every strategy.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrHeuristicNil is returned if greedy search gets a nil heuristic.
	ErrHeuristicNil = errors.New("search: heuristic is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

// DefaultMaxDepth is the iterative-deepening bound used when none is given.
const DefaultMaxDepth = 10

// Result is the outcome of one search invocation.
type Result struct {
	// Path lists the vertices from start to goal; nil when no path was found.
	Path []string

	// Cost is the accumulated edge weight along Path; +Inf when no path was found.
	Cost float64

	// Expanded counts frontier removals (or recursive calls for iterative
	// deepening, summed over all depth limits).
	Expanded int
}

// NoPath returns the sentinel result for an unreachable goal.
func NoPath() Result {
	return Result{Cost: math.Inf(1)}
}

// Found reports whether r carries a path.
func (r Result) Found() bool {
	return r.Path != nil
}

// Hops returns the number of edges on Path, or -1 when no path was found.
func (r Result) Hops() int {
	if !r.Found() {
		return -1
	}

	return len(r.Path) - 1
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// OnEnqueue is called when a state is added to the frontier,
	// with its vertex and depth (edges from start).
	OnEnqueue func(node string, depth int)

	// OnExpand is called when a state is taken from the frontier
	// (or entered, for depth-limited search) before the goal test.
	OnExpand func(node string, depth int)

	// MaxDepth bounds iterative deepening: limits 0..MaxDepth-1 are tried.
	MaxDepth int

	// FallbackEstimate, when set, replaces a missing heuristic estimate in
	// greedy search instead of failing.
	FallbackEstimate *float64

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no-op hooks
//   - MaxDepth == DefaultMaxDepth
//   - no fallback estimate (missing estimates are errors).
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnExpand:  func(string, int) {},
		MaxDepth:  DefaultMaxDepth,
	}
}

// Apply builds Options from DefaultOptions and opts, returning the first
// recorded option violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a state enters the frontier.
func WithOnEnqueue(fn func(node string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnExpand registers a callback to run when a state is expanded.
func WithOnExpand(fn func(node string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithMaxDepth sets the iterative-deepening bound.
//
//	d >= 0: try depth limits 0..d-1 (d == 0 tries none)
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFallbackEstimate makes greedy search use v for labels the heuristic
// does not cover. v must be finite and non-negative.
func WithFallbackEstimate(v float64) Option {
	return func(o *Options) {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			o.err = fmt.Errorf("%w: fallback estimate must be finite and non-negative (%v)", ErrOptionViolation, v)
			return
		}
		o.FallbackEstimate = &v
	}
}

// Cancelled returns ctx.Err() if the context is done, nil otherwise.
func (o Options) Cancelled() error {
	select {
	case <-o.Ctx.Done():
		return o.Ctx.Err()
	default:
		return nil
	}
}

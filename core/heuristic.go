// File: heuristic.go
// Role: Heuristic table: per-label estimates of the remaining cost to a fixed goal.

package core

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/maps"
)

// Heuristic maps vertex labels to a non-negative estimate of the remaining
// cost to one fixed goal (Bucharest for the Romania map).
//
// A Heuristic is built once and only read afterwards; it carries no lock.
type Heuristic struct {
	goal      string
	estimates map[string]float64
}

// NewHeuristic builds a Heuristic towards goal from estimates.
// The map is copied, so later changes by the caller are not observed.
//
// Errors:
//   - ErrEmptyVertexID if goal or any label is empty.
//   - ErrBadEstimate if any estimate is negative, NaN or infinite.
func NewHeuristic(goal string, estimates map[string]float64) (*Heuristic, error) {
	if goal == "" {
		return nil, ErrEmptyVertexID
	}
	h := &Heuristic{goal: goal, estimates: make(map[string]float64, len(estimates))}
	for label, v := range estimates {
		if label == "" {
			return nil, ErrEmptyVertexID
		}
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %q=%v", ErrBadEstimate, label, v)
		}
		h.estimates[label] = v
	}

	return h, nil
}

// Goal returns the label the estimates point at.
func (h *Heuristic) Goal() string { return h.goal }

// Estimate returns the estimate for label.
//
// Errors:
//   - ErrHeuristicMissing (wrapped, naming the label) if label has no estimate.
func (h *Heuristic) Estimate(label string) (float64, error) {
	v, ok := h.estimates[label]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrHeuristicMissing, label)
	}

	return v, nil
}

// Has reports whether label has an estimate.
func (h *Heuristic) Has(label string) bool {
	_, ok := h.estimates[label]

	return ok
}

// Len returns the number of labels with an estimate.
func (h *Heuristic) Len() int { return len(h.estimates) }

// Labels returns every label with an estimate, sorted lexicographically.
func (h *Heuristic) Labels() []string {
	labels := maps.Keys(h.estimates)
	sort.Strings(labels)

	return labels
}

// Covers reports the vertices of g that have no estimate, sorted.
// An empty result means greedy search can never hit a missing label on g.
func (h *Heuristic) Covers(g *Graph) []string {
	var missing []string
	for _, id := range g.Vertices() {
		if !h.Has(id) {
			missing = append(missing, id)
		}
	}

	return missing
}

package search

import "strings"

// Entry is one search state waiting on a frontier.
type Entry struct {
	// Priority orders priority frontiers: accumulated cost for uniform-cost
	// search, the vertex estimate for greedy search. Unused by FIFO frontiers.
	Priority float64

	// Node is the vertex this state ends at.
	Node string

	// Path runs from start to Node; never shared between entries.
	Path []string

	// Cost is the accumulated edge weight along Path.
	Cost float64
}

// Depth returns the number of edges on e.Path.
func (e *Entry) Depth() int { return len(e.Path) - 1 }

// CompareEntries orders entries by the full tuple (Priority, Node, Path, Cost):
// Node by label, Path lexicographically element by element with a shorter
// prefix first. It returns -1, 0 or +1.
//
// The signature matches gods utils.Comparator so it can drive a priority queue.
func CompareEntries(a, b interface{}) int {
	x := a.(*Entry)
	y := b.(*Entry)
	switch {
	case x.Priority < y.Priority:
		return -1
	case x.Priority > y.Priority:
		return 1
	}
	if c := strings.Compare(x.Node, y.Node); c != 0 {
		return c
	}
	if c := ComparePaths(x.Path, y.Path); c != 0 {
		return c
	}
	switch {
	case x.Cost < y.Cost:
		return -1
	case x.Cost > y.Cost:
		return 1
	}

	return 0
}

// ComparePaths compares two label sequences lexicographically.
// When one is a prefix of the other, the shorter sorts first.
func ComparePaths(a, b []string) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// OnPath reports whether node already appears in path.
// Linear scan: paths stay short on road maps.
func OnPath(path []string, node string) bool {
	for _, v := range path {
		if v == node {
			return true
		}
	}

	return false
}

// Extend returns a fresh slice holding path followed by node.
// The input is never aliased, so sibling states cannot overwrite each other.
func Extend(path []string, node string) []string {
	out := make([]string, len(path)+1)
	copy(out, path)
	out[len(path)] = node

	return out
}

// IsSimple reports whether path has no repeated vertex.
func IsSimple(path []string) bool {
	seen := make(map[string]struct{}, len(path))
	for _, v := range path {
		if _, ok := seen[v]; ok {
			return false
		}
		seen[v] = struct{}{}
	}

	return true
}

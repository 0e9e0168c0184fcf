// SPDX-License-Identifier: MIT
// Package: searchbench/builder
//
// chain.go - implementation of the Chain(n) constructor.

package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/searchbench/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 1
	chainIDFmt    = "v%d"
)

// Chain builds the directed path v0 → v1 → … → v(n-1) with goal v(n-1).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Edges (i-1)→i are emitted for i = 1..n-1 in increasing order.
//   - Estimate(vi) = (n-1-i) · smallest drawn weight.
//
// Complexity: O(n).
func Chain(n int, opts ...Option) (*core.Graph, *core.Heuristic, error) {
	if n < minChainNodes {
		return nil, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	g := core.NewGraph(core.WithDirected(true))
	if err := g.AddVertex(fmt.Sprintf(chainIDFmt, 0)); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodChain, err)
	}
	minW := math.Inf(1)
	for i := 1; i < n; i++ {
		u, v := fmt.Sprintf(chainIDFmt, i-1), fmt.Sprintf(chainIDFmt, i)
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return nil, nil, fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodChain, u, v, w, err)
		}
		minW = math.Min(minW, w)
	}
	if math.IsInf(minW, 1) {
		minW = 0
	}

	est := make(map[string]float64, n)
	for i := 0; i < n; i++ {
		est[fmt.Sprintf(chainIDFmt, i)] = float64(n-1-i) * minW
	}
	h, err := core.NewHeuristic(fmt.Sprintf(chainIDFmt, n-1), est)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodChain, err)
	}

	return g, h, nil
}

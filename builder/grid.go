// SPDX-License-Identifier: MIT
// Package: searchbench/builder
//
// grid.go - implementation of the Grid(rows, cols) constructor and grid specs.

package builder

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/searchbench/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d" // "r,c"
)

// GridID returns the vertex ID of cell (r, c).
func GridID(r, c int) string { return fmt.Sprintf(gridIDFmt, r, c) }

// Grid builds a rows×cols orthogonal grid whose goal is the bottom-right cell.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertices are added in row-major order with IDs "r,c".
//   - For each cell, the right then the bottom road is added; roads are
//     undirected, so each also appears in the neighbour's list.
//   - Estimate("r,c") = Manhattan distance to the goal · smallest drawn weight.
//
// Complexity: O(rows·cols).
func Grid(rows, cols int, opts ...Option) (*core.Graph, *core.Heuristic, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
			methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
	}
	cfg := newConfig(opts...)

	g := core.NewGraph()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddVertex(GridID(r, c)); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", methodGrid, err)
			}
		}
	}

	minW := math.Inf(1)
	link := func(u, v string) error {
		w := cfg.weightFn(cfg.rng)
		if err := g.AddEdge(u, v, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", methodGrid, u, v, w, err)
		}
		minW = math.Min(minW, w)

		return nil
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				if err := link(GridID(r, c), GridID(r, c+1)); err != nil {
					return nil, nil, err
				}
			}
			if r+1 < rows {
				if err := link(GridID(r, c), GridID(r+1, c)); err != nil {
					return nil, nil, err
				}
			}
		}
	}
	if math.IsInf(minW, 1) {
		minW = 0
	}

	est := make(map[string]float64, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			est[GridID(r, c)] = float64((rows-1-r)+(cols-1-c)) * minW
		}
	}
	h, err := core.NewHeuristic(GridID(rows-1, cols-1), est)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodGrid, err)
	}

	return g, h, nil
}

// ParseGrid parses a size such as "4x5" into rows and cols.
func ParseGrid(spec string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(strings.TrimSpace(spec)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGridSpec, spec)
	}
	if rows, err = strconv.Atoi(r); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGridSpec, spec)
	}
	if cols, err = strconv.Atoi(c); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadGridSpec, spec)
	}
	if rows < minGridDim || cols < minGridDim {
		return 0, 0, fmt.Errorf("%s: %q: %w", methodGrid, spec, ErrTooFewVertices)
	}

	return rows, cols, nil
}

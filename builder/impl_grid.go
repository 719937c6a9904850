// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node for cell (r, c) is idFn(r*cols + c) (row-major), placed on a lattice.
//   • For each cell in row-major order: edge to the Right neighbour, then to
//     the Bottom neighbour, where they exist. WithBidirectional adds the
//     reverse arcs so the grid can be walked both ways.
//
// Complexity: O(rows*cols) nodes and edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a rows×cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		cell := func(r, c int) string { return cfg.idFn(r*cols + c) }

		var x, y float64
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				x, y = cellPosition(r, c, cfg.spacing)
				if err := ensureNode(g, methodGrid, cell(r, c), x, y); err != nil {
					return err
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := connect(g, cfg, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := connect(g, cfg, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}

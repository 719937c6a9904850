// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1), on one row.
//   - Emits edges (i-1) → i for i=1..n-1 in increasing order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds the directed path P_n.
func Path(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		var x, y float64
		for i := 0; i < n; i++ {
			x, y = rowPosition(i, cfg.spacing)
			if err := ensureNode(g, methodPath, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}

		for i := 1; i < n; i++ {
			if err := connect(g, cfg, methodPath, cfg.idFn(i-1), cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

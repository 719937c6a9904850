// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1) on a ring.
//   - Every ordered pair (i, j), i ≠ j, gets one edge i → j, emitted for i asc
//     then j asc. WithBidirectional is ignored: both directions already exist.
//
// Complexity: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete digraph K_n.
func Complete(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		var x, y float64
		for i := 0; i < n; i++ {
			x, y = ringPosition(i, n, cfg.spacing)
			if err := ensureNode(g, methodComplete, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}

		oneWay := cfg
		oneWay.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				if err := connect(g, oneWay, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

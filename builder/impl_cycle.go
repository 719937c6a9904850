// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Nodes idFn(0..n-1) on a ring; edges i → (i+1) mod n in increasing i.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the directed cycle C_n.
func Cycle(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		var x, y float64
		for i := 0; i < n; i++ {
			x, y = ringPosition(i, n, cfg.spacing)
			if err := ensureNode(g, methodCycle, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}

		for i := 0; i < n; i++ {
			if err := connect(g, cfg, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

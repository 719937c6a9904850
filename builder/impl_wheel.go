// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): a rim cycle of n-1 nodes plus a hub.
//   - Rim nodes are idFn(0..n-2) built by Cycle(n-1); the hub is idFn(n-1) at
//     the ring centre.
//   - Spokes hub → rim in increasing rim index, after all rim edges.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub := cfg.idFn(n - 1)
		cx, cy := ringCenter(n-1, cfg.spacing)
		if err := ensureNode(g, methodWheel, hub, cx, cy); err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := connect(g, cfg, methodWheel, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

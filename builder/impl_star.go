// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is idFn(0), placed at the ring centre; leaves idFn(1..n-1) sit on
//     the ring.
//   - Edges hub → leaf in increasing leaf index.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub idFn(0).
func Star(n int) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := cfg.idFn(0)
		cx, cy := ringCenter(n-1, cfg.spacing)
		if err := ensureNode(g, methodStar, hub, cx, cy); err != nil {
			return err
		}

		var (
			x, y float64
			leaf string
		)
		for i := 1; i < n; i++ {
			leaf = cfg.idFn(i)
			x, y = ringPosition(i-1, n-1, cfg.spacing)
			if err := ensureNode(g, methodStar, leaf, x, y); err != nil {
				return err
			}
			if err := connect(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}

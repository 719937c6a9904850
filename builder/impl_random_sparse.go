// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model:
//   - Erdős–Rényi-like digraph: every ordered pair (i, j), i ≠ j, becomes an
//     edge i → j independently with probability p. No self-loops and no
//     parallel edges.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0, 1} is deterministic and needs no RNG.
//   - Nodes idFn(0..n-1) on a ring. WithBidirectional is ignored.
//
// Determinism:
//   - Trials run for i asc, then j asc. Each accepted edge draws its weight
//     right after its trial, so a fixed seed fixes both topology and weights.
//
// Complexity: O(n) nodes + O(n²) Bernoulli trials.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random digraph over n
// nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *graph.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Nodes.
		var x, y float64
		for i := 0; i < n; i++ {
			x, y = ringPosition(i, n, cfg.spacing)
			if err := ensureNode(g, methodRandomSparse, cfg.idFn(i), x, y); err != nil {
				return err
			}
		}

		// 3) One Bernoulli trial per ordered pair.
		oneWay := cfg
		oneWay.bidirectional = false
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := connect(g, oneWay, methodRandomSparse, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial reports whether an edge is kept. p ∈ {0, 1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case probMin:
		return false
	case probMax:
		return true
	}

	return cfg.rng.Float64() < p
}

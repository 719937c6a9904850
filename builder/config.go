// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn          = ExcelColumnIDFn     ("A","B",…,"Z","AA",…)
//   • rng           = nil                 (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn     (constant DefaultEdgeWeight)
//   • bidirectional = false               (one arc per topology edge)
//   • spacing       = DefaultSpacing      (layout distance between neighbours)

package builder

import (
	"math/rand"
)

// DefaultSpacing is the layout distance, in canvas units, between adjacent
// nodes placed by the constructors.
const DefaultSpacing = 100.0

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Node ID strategy: index -> ID (deterministic).
	idFn IDFn
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// Emit the reverse arc for every topology edge.
	bidirectional bool
	// Layout distance between adjacent nodes.
	spacing float64
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     ExcelColumnIDFn,
		weightFn: DefaultWeightFn,
		spacing:  DefaultSpacing,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

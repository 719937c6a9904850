// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`, e.g.
//     fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices).
//   • Validation panics are confined to option constructors (WithX...).
//
// Priority when several validations fail:
//   • ErrTooFewVertices       - size checks first (n, rows, cols).
//   • ErrInvalidProbability   - then probability ranges.
//   • ErrNeedRandSource       - then RNG presence for stochastic builders.
//   • ErrConstructFailed      - only for nil constructors.

package builder

import "errors"

// ErrTooFewVertices indicates that a numeric parameter (n, rows, cols) is
// smaller than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that BuildGraph could not apply a constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownPreset indicates that PresetByName found no preset of that name.
var ErrUnknownPreset = errors.New("builder: unknown preset")

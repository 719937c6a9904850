// Package builder produces graph.Graph values: the named presets users start
// from, deterministic topology constructors for tests and demos, and the id
// helpers used when a graph is edited interactively.
//
// The package offers the following key components:
//
//   - Presets:
//     – SimpleSample, DirectedWeighted: the two published sample graphs.
//     – Presets, PresetGraph(index): ordered list; out-of-range falls back to 0.
//     – PresetByName: lookup by display name (ErrUnknownPreset otherwise).
//   - Constructors composed by BuildGraph(opts, cons...):
//     – Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse.
//   - Configuration primitives:
//     – BuilderOption:    WithSeed, WithRand, WithIDScheme, WithWeightFn,
//     WithBidirectional, WithSpacing and shorthands.
//     – builderConfig:    resolved, immutable per BuildGraph call.
//   - Node-ID schemes (IDFn): ExcelColumnIDFn (default), DecimalIDFn,
//     SymbolNumberIDFn.
//   - Edge-weight distributions (WeightFn): DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntUniformWeightFn, ExponentialWeightFn.
//   - Editing helpers: NextNodeID, EdgeID.
//
// Guarantees:
//
//   - Determinism: equal options, seeds and constructor order ⇒ equal graphs,
//     including node order, edge order, ids, weights and coordinates.
//   - Constructors never panic and return sentinel errors (see errors.go);
//     option constructors panic on meaningless values.
//   - Constructed graphs are directed. Use WithBidirectional for symmetric
//     topologies.
package builder

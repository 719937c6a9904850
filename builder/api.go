// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Topology factories live in impl_*.go; presets in presets.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Constructors return sentinel errors and never panic.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add nodes in ascending index order via cfg.idFn, skipping ids already present.
//   - Emit edges in a stable, documented order.
type Constructor func(g *graph.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately together with the zero Graph.
//
// Constructors share node ids: a second constructor that produces an id the
// first one already added reuses that node, so several topologies can be
// overlaid on one vertex set.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (graph.Graph, error) {
	var g graph.Graph
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return graph.Graph{}, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&g, cfg); err != nil {
			return graph.Graph{}, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// ensureNode adds id at (x, y) unless a node with that id already exists.
func ensureNode(g *graph.Graph, method, id string, x, y float64) error {
	if g.HasNode(id) {
		return nil
	}
	if err := g.AddNode(graph.Node{ID: id, Label: id, X: x, Y: y}); err != nil {
		return fmt.Errorf("%s: AddNode(%s): %w", method, id, err)
	}

	return nil
}

// connect adds u→v with a freshly drawn weight, and v→u with the same weight
// when cfg.bidirectional is set. Edge ids come from EdgeID.
func connect(g *graph.Graph, cfg builderConfig, method, u, v string) error {
	w := cfg.weightFn(cfg.rng)
	if err := g.AddEdge(graph.Edge{ID: EdgeID(*g, u, v), Source: u, Target: v, Weight: w}); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}
	if !cfg.bidirectional {
		return nil
	}
	if err := g.AddEdge(graph.Edge{ID: EdgeID(*g, v, u), Source: v, Target: u, Weight: w}); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, v, u, w, err)
	}

	return nil
}

// SPDX-License-Identifier: MIT
// Package: pathtrace/builder
//
// presets.go - the named sample graphs offered to users.
//
// Every accessor returns a fresh deep copy, so callers may edit the result
// freely. Preset order is stable: index 0 is always Simple Sample and is the
// fallback for any out-of-range index.

package builder

import (
	"fmt"

	"github.com/katalvlaran/pathtrace/graph"
)

// Preset names.
const (
	SimpleSampleName     = "Simple Sample"
	DirectedWeightedName = "Directed Weighted (Image Preset)"
)

// Preset is a named sample graph.
type Preset struct {
	Name  string      `json:"name"`
	Graph graph.Graph `json:"graph"`
}

// SimpleSample returns the five-node sample: from A the shortest distances
// are A:0 B:4 C:2 D:9 E:11.
func SimpleSample() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "A", Label: "A", X: 150, Y: 100},
			{ID: "B", Label: "B", X: 350, Y: 100},
			{ID: "C", Label: "C", X: 550, Y: 100},
			{ID: "D", Label: "D", X: 250, Y: 250},
			{ID: "E", Label: "E", X: 450, Y: 250},
		},
		Edges: []graph.Edge{
			{ID: "AB", Source: "A", Target: "B", Weight: 4},
			{ID: "AC", Source: "A", Target: "C", Weight: 2},
			{ID: "BC", Source: "B", Target: "C", Weight: 1},
			{ID: "BD", Source: "B", Target: "D", Weight: 5},
			{ID: "CD", Source: "C", Target: "D", Weight: 8},
			{ID: "CE", Source: "C", Target: "E", Weight: 10},
			{ID: "DE", Source: "D", Target: "E", Weight: 2},
		},
	}
}

// DirectedWeighted returns the directed sample with crossing edges. Some edge
// ids do not spell their endpoints (CD is C→E, DE is D→C); they are kept as
// published.
func DirectedWeighted() graph.Graph {
	return graph.Graph{
		Nodes: []graph.Node{
			{ID: "A", Label: "A", X: 100, Y: 120},
			{ID: "B", Label: "B", X: 250, Y: 60},
			{ID: "C", Label: "C", X: 400, Y: 120},
			{ID: "D", Label: "D", X: 250, Y: 200},
			{ID: "E", Label: "E", X: 400, Y: 240},
		},
		Edges: []graph.Edge{
			{ID: "AB", Source: "A", Target: "B", Weight: 2},
			{ID: "AC", Source: "A", Target: "C", Weight: 10},
			{ID: "AD", Source: "A", Target: "D", Weight: 3},
			{ID: "BD", Source: "B", Target: "D", Weight: 8},
			{ID: "BC", Source: "B", Target: "C", Weight: 2},
			{ID: "CD", Source: "C", Target: "E", Weight: 4},
			{ID: "DE", Source: "D", Target: "C", Weight: 4},
			{ID: "DE2", Source: "D", Target: "E", Weight: 3},
			{ID: "EC", Source: "E", Target: "C", Weight: 1},
		},
	}
}

// Presets returns every preset in display order.
func Presets() []Preset {
	return []Preset{
		{Name: SimpleSampleName, Graph: SimpleSample()},
		{Name: DirectedWeightedName, Graph: DirectedWeighted()},
	}
}

// PresetGraph returns the graph of the preset at index, or Simple Sample when
// index is out of range.
func PresetGraph(index int) graph.Graph {
	all := Presets()
	if index < 0 || index >= len(all) {
		return all[0].Graph
	}

	return all[index].Graph
}

// PresetByName returns the graph of the preset called name.
func PresetByName(name string) (graph.Graph, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p.Graph, nil
		}
	}

	return graph.Graph{}, fmt.Errorf("PresetByName(%q): %w", name, ErrUnknownPreset)
}

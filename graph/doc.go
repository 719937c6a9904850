// Package graph is the plain data model shared by every pathtrace engine.
//
// A Graph is an ordered list of Nodes and an ordered list of directed,
// weighted Edges. It has no behaviour beyond small queries and in-place edits:
//
//	g := graph.Graph{
//	    Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
//	    Edges: []graph.Edge{{ID: "AB", Source: "A", Target: "B", Weight: 4}},
//	}
//
// Ordering matters. Engines iterate nodes in slice order (this is also the
// tie-break order for equal distances) and relax edges in slice order, so the
// same Graph value always yields the same trace.
//
// Graphs round-trip through YAML or JSON documents (Decode, Load, Encode):
//
//	nodes:
//	  - {id: A, x: 150, y: 100}
//	edges:
//	  - {id: AB, source: A, target: B, weight: 4}
//
// Graph does not validate its contents. Edges pointing at unknown nodes are
// legal and are simply never matched; Dangling lists them for diagnostics.
package graph

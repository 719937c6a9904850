// Package graph declares Node, Edge and Graph, the plain data handed to the
// shortest-path engines, together with the sentinel errors used by the
// editing helpers.
//
// Errors:
//
//	ErrEmptyID       - node or edge ID is the empty string.
//	ErrDuplicateNode - a node with the same ID already exists.
//	ErrDuplicateEdge - an edge with the same ID already exists.
//	ErrNodeNotFound  - requested node does not exist.
//	ErrEdgeNotFound  - requested edge does not exist.
package graph

import "errors"

// Sentinel errors for graph editing and decoding.
var (
	// ErrEmptyID indicates that a node or edge was given an empty ID.
	ErrEmptyID = errors.New("graph: id is empty")

	// ErrDuplicateNode indicates an AddNode with an ID that is already taken.
	ErrDuplicateNode = errors.New("graph: duplicate node id")

	// ErrDuplicateEdge indicates an AddEdge with an ID that is already taken.
	ErrDuplicateEdge = errors.New("graph: duplicate edge id")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrDecode indicates that a graph document could not be parsed.
	ErrDecode = errors.New("graph: cannot decode document")
)

// Node is a vertex of the graph.
//
// Only ID is read by the algorithms. Label, X and Y belong to whoever draws
// the graph and are carried through untouched.
type Node struct {
	// ID uniquely identifies the node within its Graph.
	ID string `json:"id" yaml:"id"`

	// Label is the display text; empty means "use ID".
	Label string `json:"label,omitempty" yaml:"label,omitempty"`

	// X and Y are canvas coordinates.
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Edge is a directed, weighted connection Source → Target.
//
// An edge from A to B says nothing about B → A. Several edges may join the
// same ordered pair as long as their IDs differ. Weights may be negative.
type Edge struct {
	// ID uniquely identifies the edge within its Graph.
	ID string `json:"id" yaml:"id"`

	// Source is the tail node ID.
	Source string `json:"source" yaml:"source"`

	// Target is the head node ID.
	Target string `json:"target" yaml:"target"`

	// Weight is the traversal cost.
	Weight float64 `json:"weight" yaml:"weight"`
}

// Graph is an ordered node list plus an ordered edge list.
//
// Node order is the iteration and tie-break order of every algorithm; edge
// order is the relaxation order. Edges should reference existing nodes, but
// dangling references are tolerated everywhere: they simply never match.
//
// A Graph is a value owned by the caller. Algorithms never retain or modify it.
type Graph struct {
	Nodes []Node `json:"nodes" yaml:"nodes"`
	Edges []Edge `json:"edges" yaml:"edges"`
}

// DisplayLabel returns n.Label, or n.ID when no label is set.
func (n Node) DisplayLabel() string {
	if n.Label == "" {
		return n.ID
	}

	return n.Label
}

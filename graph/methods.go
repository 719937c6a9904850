// File: methods.go
// Role: read-only queries and copy-on-write edits over Graph.
//
// Determinism:
//   - Every query walks Nodes/Edges in slice order; no map iteration leaks out.
//
// Ownership:
//   - Edits mutate the receiver in place. Callers that handed a Graph to an
//     engine may keep editing it: engines never hold on to the slices.

package graph

import "fmt"

// Clone returns a deep copy of g. The clone shares no backing arrays with g.
// Complexity: O(V + E).
func (g Graph) Clone() Graph {
	out := Graph{
		Nodes: make([]Node, len(g.Nodes)),
		Edges: make([]Edge, len(g.Edges)),
	}
	copy(out.Nodes, g.Nodes)
	copy(out.Edges, g.Edges)

	return out
}

// NodeIDs returns node IDs in Graph order.
func (g Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i := range g.Nodes {
		ids[i] = g.Nodes[i].ID
	}

	return ids
}

// Index maps every node ID to its position in g.Nodes.
// If an ID appears twice, the first position wins.
// Complexity: O(V).
func (g Graph) Index() map[string]int {
	idx := make(map[string]int, len(g.Nodes))
	for i := range g.Nodes {
		if _, seen := idx[g.Nodes[i].ID]; !seen {
			idx[g.Nodes[i].ID] = i
		}
	}

	return idx
}

// HasNode reports whether a node with the given ID exists.
func (g Graph) HasNode(id string) bool {
	return g.nodeAt(id) >= 0
}

// Node returns the node with the given ID.
func (g Graph) Node(id string) (Node, bool) {
	if i := g.nodeAt(id); i >= 0 {
		return g.Nodes[i], true
	}

	return Node{}, false
}

// HasEdge reports whether an edge with the given ID exists.
func (g Graph) HasEdge(id string) bool {
	return g.edgeAt(id) >= 0
}

// OutEdges returns the edges leaving id, in Graph edge order.
// Complexity: O(E).
func (g Graph) OutEdges(id string) []Edge {
	var out []Edge
	for i := range g.Edges {
		if g.Edges[i].Source == id {
			out = append(out, g.Edges[i])
		}
	}

	return out
}

// Dangling returns the IDs of edges whose Source or Target is not a node of g,
// in Graph edge order. Algorithms tolerate such edges; this exists so callers
// can print a warning.
func (g Graph) Dangling() []string {
	idx := g.Index()
	var out []string
	var ok1, ok2 bool
	for _, e := range g.Edges {
		_, ok1 = idx[e.Source]
		_, ok2 = idx[e.Target]
		if !ok1 || !ok2 {
			out = append(out, e.ID)
		}
	}

	return out
}

// AddNode appends n to the node list.
//
// Errors:
//   - ErrEmptyID if n.ID == "".
//   - ErrDuplicateNode if the ID is already used.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return fmt.Errorf("AddNode: %w", ErrEmptyID)
	}
	if g.HasNode(n.ID) {
		return fmt.Errorf("AddNode(%s): %w", n.ID, ErrDuplicateNode)
	}
	g.Nodes = append(g.Nodes, n)

	return nil
}

// RemoveNode deletes the node and every edge that starts or ends at it.
// The relative order of the remaining nodes and edges is preserved.
func (g *Graph) RemoveNode(id string) error {
	i := g.nodeAt(id)
	if i < 0 {
		return fmt.Errorf("RemoveNode(%s): %w", id, ErrNodeNotFound)
	}
	g.Nodes = append(g.Nodes[:i:i], g.Nodes[i+1:]...)

	// Filter into a fresh slice so earlier Clone()s never observe the shuffle.
	kept := make([]Edge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			kept = append(kept, e)
		}
	}
	g.Edges = kept

	return nil
}

// MoveNode updates the canvas position of a node.
func (g *Graph) MoveNode(id string, x, y float64) error {
	i := g.nodeAt(id)
	if i < 0 {
		return fmt.Errorf("MoveNode(%s): %w", id, ErrNodeNotFound)
	}
	g.Nodes[i].X, g.Nodes[i].Y = x, y

	return nil
}

// AddEdge appends e to the edge list.
//
// Both endpoints must exist. Parallel edges are accepted when their IDs differ.
func (g *Graph) AddEdge(e Edge) error {
	if e.ID == "" {
		return fmt.Errorf("AddEdge: %w", ErrEmptyID)
	}
	if g.HasEdge(e.ID) {
		return fmt.Errorf("AddEdge(%s): %w", e.ID, ErrDuplicateEdge)
	}
	if !g.HasNode(e.Source) {
		return fmt.Errorf("AddEdge(%s): source %q: %w", e.ID, e.Source, ErrNodeNotFound)
	}
	if !g.HasNode(e.Target) {
		return fmt.Errorf("AddEdge(%s): target %q: %w", e.ID, e.Target, ErrNodeNotFound)
	}
	g.Edges = append(g.Edges, e)

	return nil
}

// RemoveEdge deletes the edge with the given ID.
func (g *Graph) RemoveEdge(id string) error {
	i := g.edgeAt(id)
	if i < 0 {
		return fmt.Errorf("RemoveEdge(%s): %w", id, ErrEdgeNotFound)
	}
	g.Edges = append(g.Edges[:i:i], g.Edges[i+1:]...)

	return nil
}

func (g Graph) nodeAt(id string) int {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return i
		}
	}

	return -1
}

func (g Graph) edgeAt(id string) int {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return i
		}
	}

	return -1
}

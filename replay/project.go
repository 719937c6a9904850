package replay

import (
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// NodeState is a node as displayed at one step.
type NodeState struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Visited  bool           `json:"visited"`
	Distance trace.Distance `json:"distance"`
}

// EdgeState is an edge as displayed at one step.
type EdgeState struct {
	ID          string  `json:"id"`
	Source      string  `json:"source"`
	Target      string  `json:"target"`
	Weight      float64 `json:"weight"`
	Highlighted bool    `json:"highlighted"`
}

// Overlay is the display state after folding steps [0..Step].
type Overlay struct {
	// Step is the index of the last folded step, -1 when nothing was folded.
	Step int `json:"step"`
	// Total is the length of the step log.
	Total int `json:"total"`
	// Kind and Message describe step Step; both are empty when Step is -1.
	Kind    trace.StepKind `json:"kind,omitempty"`
	Message string         `json:"message"`

	Nodes []NodeState `json:"nodes"`
	Edges []EdgeState `json:"edges"`
	// Highlighted lists highlighted edge ids in order of first relaxation.
	Highlighted []string `json:"highlighted"`
}

// Node returns the state of node id.
func (o Overlay) Node(id string) (NodeState, bool) {
	for _, n := range o.Nodes {
		if n.ID == id {
			return n, true
		}
	}

	return NodeState{}, false
}

// Edge returns the state of edge id.
func (o Overlay) Edge(id string) (EdgeState, bool) {
	for _, e := range o.Edges {
		if e.ID == id {
			return e, true
		}
	}

	return EdgeState{}, false
}

// Project folds steps [0..k] of r over g. k is clamped to the log; k < 0
// folds nothing. Project does not modify g or r.
func Project(g graph.Graph, r trace.Result, k int) Overlay {
	steps := trace.PrefixOf(r.Steps, k)

	// 1) Reset: nothing visited, nothing highlighted, final distances shown.
	o := Overlay{
		Step:        len(steps) - 1,
		Total:       len(r.Steps),
		Nodes:       make([]NodeState, len(g.Nodes)),
		Edges:       make([]EdgeState, len(g.Edges)),
		Highlighted: []string{},
	}
	nodeAt := make(map[string]int, len(g.Nodes))
	for i, n := range g.Nodes {
		o.Nodes[i] = NodeState{ID: n.ID, Label: n.DisplayLabel(), X: n.X, Y: n.Y, Distance: r.Distance(n.ID)}
		if _, dup := nodeAt[n.ID]; !dup {
			nodeAt[n.ID] = i
		}
	}
	edgeAt := make(map[string]int, len(g.Edges))
	for i, e := range g.Edges {
		o.Edges[i] = EdgeState{ID: e.ID, Source: e.Source, Target: e.Target, Weight: e.Weight}
		if _, dup := edgeAt[e.ID]; !dup {
			edgeAt[e.ID] = i
		}
	}

	// 2) Fold.
	for _, s := range steps {
		switch s.Kind {
		case trace.KindNodeVisit:
			if i, ok := nodeAt[s.NodeID]; ok {
				o.Nodes[i].Visited = true
			}
		case trace.KindEdgeRelax:
			if i, ok := edgeAt[s.EdgeID]; ok && !o.Edges[i].Highlighted {
				o.Edges[i].Highlighted = true
				o.Highlighted = append(o.Highlighted, s.EdgeID)
			}
		case trace.KindDistanceUpdate:
			i, ok := nodeAt[s.NodeID]
			if d, has := s.DistanceValue(); ok && has {
				o.Nodes[i].Distance = d
			}
		}
	}

	// 3) Describe the current step.
	if o.Step >= 0 {
		o.Kind = steps[o.Step].Kind
		o.Message = steps[o.Step].Message
	}

	return o
}

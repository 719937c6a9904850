// Package dijkstra_test contains unit tests for the Dijkstra engine: final
// distances and paths, the exact step log on small graphs, tie-breaking,
// bad input and the post-conditions every run must satisfy.
package dijkstra_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// ------------------------------------------------------------------------
// Fixtures
// ------------------------------------------------------------------------

func node(ids ...string) []graph.Node {
	out := make([]graph.Node, len(ids))
	for i, id := range ids {
		out[i] = graph.Node{ID: id}
	}

	return out
}

func edge(id, s, t string, w float64) graph.Edge {
	return graph.Edge{ID: id, Source: s, Target: t, Weight: w}
}

// ------------------------------------------------------------------------
// 1. Simple Sample preset
// ------------------------------------------------------------------------

func TestDijkstra_SimpleSample(t *testing.T) {
	g := builder.SimpleSample()
	res := dijkstra.Run(g, "A")

	want := map[string]trace.Distance{
		"A": trace.Finite(0),
		"B": trace.Finite(4),
		"C": trace.Finite(2),
		"D": trace.Finite(9),
		"E": trace.Finite(11),
	}
	assert.Equal(t, want, res.Distances)
	assert.Equal(t, []string{"A", "B", "D"}, res.Paths["D"])
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.Paths["E"])
	assert.Equal(t, []string{"A", "C"}, res.Paths["C"])
	assert.NotContains(t, res.Paths, "A")

	assert.Equal(t, trace.NoPredecessor, res.Previous["A"])
	assert.Equal(t, "B", res.Previous["D"])
	assert.Equal(t, "D", res.Previous["E"])
	assert.Equal(t, dijkstra.Name, res.Algorithm)
	assert.Equal(t, "A", res.Source)
	assert.False(t, res.NegativeCycle)
}

func TestDijkstra_SimpleSample_StepLog(t *testing.T) {
	res := dijkstra.Run(builder.SimpleSample(), "A")

	type brief struct {
		kind trace.StepKind
		node string
		edge string
	}
	want := []brief{
		{trace.KindDistanceUpdate, "A", ""},
		{trace.KindNodeVisit, "A", ""},
		{trace.KindEdgeRelax, "B", "AB"},
		{trace.KindEdgeRelax, "C", "AC"},
		{trace.KindNodeVisit, "C", ""},
		{trace.KindEdgeRelax, "D", "CD"},
		{trace.KindEdgeRelax, "E", "CE"},
		{trace.KindNodeVisit, "B", ""},
		{trace.KindEdgeRelax, "D", "BD"},
		{trace.KindNodeVisit, "D", ""},
		{trace.KindEdgeRelax, "E", "DE"},
		{trace.KindNodeVisit, "E", ""},
	}
	require.Len(t, res.Steps, len(want))
	for i, w := range want {
		s := res.Steps[i]
		assert.Equal(t, w.kind, s.Kind, "step %d", i)
		assert.Equal(t, w.node, s.NodeID, "step %d", i)
		assert.Equal(t, w.edge, s.EdgeID, "step %d", i)
		assert.NotEmpty(t, s.Message, "step %d", i)
	}

	assert.Equal(t, "Starting from node A", res.Steps[0].Message)
	assert.Equal(t, "Visiting node A with distance 0", res.Steps[1].Message)
	assert.Equal(t, "Relaxing edge to B, new distance: 4", res.Steps[2].Message)
	assert.Equal(t, "B", res.Steps[8].Previous)
	d, ok := res.Steps[8].DistanceValue()
	require.True(t, ok)
	assert.Equal(t, trace.Finite(9), d)
}

// ------------------------------------------------------------------------
// 2. Directed edges, parallel edges, tie-break
// ------------------------------------------------------------------------

func TestDijkstra_DirectedOnly(t *testing.T) {
	// B→A exists, A→B does not: from A, B is unreachable.
	g := graph.Graph{
		Nodes: node("A", "B"),
		Edges: []graph.Edge{edge("BA", "B", "A", 1)},
	}
	res := dijkstra.Run(g, "A")

	assert.True(t, res.Distances["B"].IsInf())
	assert.NotContains(t, res.Paths, "B")
}

func TestDijkstra_ParallelEdges(t *testing.T) {
	g := graph.Graph{
		Nodes: node("A", "B"),
		Edges: []graph.Edge{
			edge("AB", "A", "B", 5),
			edge("AB2", "A", "B", 2),
			edge("AB3", "A", "B", 3),
		},
	}
	res := dijkstra.Run(g, "A")

	assert.Equal(t, trace.Finite(2), res.Distances["B"])
	var relaxed []string
	for _, s := range res.Steps {
		if s.Kind == trace.KindEdgeRelax {
			relaxed = append(relaxed, s.EdgeID)
		}
	}
	// AB3 (3) is not an improvement over AB2 (2).
	assert.Equal(t, []string{"AB", "AB2"}, relaxed)
}

func TestDijkstra_TieBreakFollowsNodeOrder(t *testing.T) {
	// S→X(1), S→Y(1). Node order lists Y before X, so Y is settled first.
	g := graph.Graph{
		Nodes: node("S", "Y", "X"),
		Edges: []graph.Edge{edge("SX", "S", "X", 1), edge("SY", "S", "Y", 1)},
	}
	res := dijkstra.Run(g, "S")

	var visits []string
	for _, s := range res.Steps {
		if s.Kind == trace.KindNodeVisit {
			visits = append(visits, s.NodeID)
		}
	}
	assert.Equal(t, []string{"S", "Y", "X"}, visits)
}

// ------------------------------------------------------------------------
// 3. Bad input
// ------------------------------------------------------------------------

func TestDijkstra_MissingSource(t *testing.T) {
	res := dijkstra.Run(builder.SimpleSample(), "Q")

	for id, d := range res.Distances {
		assert.True(t, d.IsInf(), "node %s", id)
	}
	assert.Empty(t, res.Paths)
	require.Len(t, res.Steps, 1)
	assert.Equal(t, trace.KindDistanceUpdate, res.Steps[0].Kind)
}

func TestDijkstra_EmptyGraph(t *testing.T) {
	res := dijkstra.Run(graph.Graph{}, "A")

	assert.Empty(t, res.Distances)
	assert.Empty(t, res.Paths)
	assert.Len(t, res.Steps, 1)
}

func TestDijkstra_DanglingEdges(t *testing.T) {
	g := graph.Graph{
		Nodes: node("A", "B"),
		Edges: []graph.Edge{
			edge("AX", "A", "X", 1),
			edge("XB", "X", "B", 1),
			edge("AB", "A", "B", 3),
		},
	}
	res := dijkstra.Run(g, "A")

	assert.Equal(t, trace.Finite(3), res.Distances["B"])
	assert.NotContains(t, res.Distances, "X")
}

func TestDijkstra_UnreachableNode(t *testing.T) {
	g := builder.SimpleSample()
	require.NoError(t, g.AddNode(graph.Node{ID: "F"}))
	require.NoError(t, g.AddEdge(edge("FA", "F", "A", 1)))

	res := dijkstra.Run(g, "A")
	assert.True(t, res.Distances["F"].IsInf())
	assert.Equal(t, trace.NoPredecessor, res.Previous["F"])
	assert.NotContains(t, res.Paths, "F")
}

func TestDijkstra_NonFiniteWeightNeverReaches(t *testing.T) {
	g := graph.Graph{
		Nodes: node("A", "B", "C"),
		Edges: []graph.Edge{edge("AB", "A", "B", math.Inf(1)), edge("AC", "A", "C", math.NaN())},
	}
	res := dijkstra.Run(g, "A")

	assert.True(t, res.Distances["B"].IsInf())
	assert.True(t, res.Distances["C"].IsInf())
	assert.Empty(t, res.Paths)
	_, err := json.Marshal(res)
	assert.NoError(t, err)
}

func TestDijkstra_NegativeBackEdgeDoesNotHang(t *testing.T) {
	// A→B(1), B→A(-5): relaxing B→A rewires the settled source, so the
	// predecessor chain of B loops. The run must still terminate.
	g := graph.Graph{
		Nodes: node("A", "B"),
		Edges: []graph.Edge{edge("AB", "A", "B", 1), edge("BA", "B", "A", -5)},
	}
	res := dijkstra.Run(g, "A")

	assert.Equal(t, trace.Finite(-4), res.Distances["A"])
	assert.NotContains(t, res.Paths, "B")
}

func TestDijkstra_NoAliasing(t *testing.T) {
	g := builder.SimpleSample()
	res := dijkstra.Run(g, "A")

	g.Edges[0].Weight = 100
	g.Nodes[0].ID = "Z"
	assert.Equal(t, trace.Finite(4), res.Distances["B"])
	assert.Equal(t, "A", res.Order[0])
}

// ------------------------------------------------------------------------
// 4. Post-conditions
// ------------------------------------------------------------------------

func TestDijkstra_Deterministic(t *testing.T) {
	g := builder.DirectedWeighted()
	first := dijkstra.Run(g, "A")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, dijkstra.Run(g, "A"))
	}
}

func TestDijkstra_PostConditions(t *testing.T) {
	graphs := map[string]graph.Graph{
		"simple":   builder.SimpleSample(),
		"directed": builder.DirectedWeighted(),
	}
	random, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7), builder.WithIntUniformWeight(1, 9)}, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	graphs["random"] = random

	for name, g := range graphs {
		t.Run(name, func(t *testing.T) {
			src := g.Nodes[0].ID
			res := dijkstra.Run(g, src)

			// Triangle inequality over every edge.
			for _, e := range g.Edges {
				du := res.Distances[e.Source]
				if du.IsInf() {
					continue
				}
				assert.False(t, du.Add(e.Weight).Less(res.Distances[e.Target]),
					"edge %s violates triangle inequality", e.ID)
			}

			// Path weights equal distances.
			for id, p := range res.Paths {
				require.NotEmpty(t, p)
				assert.Equal(t, src, p[0])
				assert.Equal(t, id, p[len(p)-1])
				assert.Equal(t, res.Distances[id], pathWeight(g, p), "path to %s", id)
			}
		})
	}
}

// pathWeight sums the cheapest edge between consecutive path nodes.
func pathWeight(g graph.Graph, p []string) trace.Distance {
	total := trace.Finite(0)
	for i := 1; i < len(p); i++ {
		best := trace.Infinite
		for _, e := range g.Edges {
			if e.Source == p[i-1] && e.Target == p[i] && trace.Finite(e.Weight).Less(best) {
				best = trace.Finite(e.Weight)
			}
		}
		total = total.Plus(best)
	}

	return total
}

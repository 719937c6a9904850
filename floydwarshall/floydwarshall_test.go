package floydwarshall_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/bellmanford"
	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/floydwarshall"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

func TestFloydWarshall_SimpleSample(t *testing.T) {
	res := floydwarshall.Run(builder.SimpleSample())

	assert.Equal(t, floydwarshall.Name, res.Algorithm)
	assert.Equal(t, "A", res.Source)
	assert.Equal(t, map[string]trace.Distance{
		"A": trace.Finite(0),
		"B": trace.Finite(4),
		"C": trace.Finite(2),
		"D": trace.Finite(9),
		"E": trace.Finite(11),
	}, res.Distances)
	assert.Equal(t, []string{"A", "B", "D"}, res.Paths["D"])
	assert.Equal(t, []string{"A", "B", "D", "E"}, res.Paths["E"])
	assert.Equal(t, "D", res.Previous["E"])
	assert.Equal(t, trace.NoPredecessor, res.Previous["A"])
	assert.False(t, res.NegativeCycle)
}

func TestFloydWarshall_StepLog(t *testing.T) {
	res := floydwarshall.Run(builder.SimpleSample())
	require.GreaterOrEqual(t, len(res.Steps), 4)

	assert.Equal(t, "Initialized distance matrix with direct edges", res.Steps[0].Message)
	// Nothing improves through A: no edge enters it.
	assert.Equal(t, "Using node A as intermediate node", res.Steps[1].Message)
	assert.Equal(t, "Using node B as intermediate node", res.Steps[2].Message)
	assert.Equal(t, "Updated path A → D via B, new distance: 9", res.Steps[3].Message)

	var visits []string
	for _, s := range res.Steps {
		switch s.Kind {
		case trace.KindNodeVisit:
			visits = append(visits, s.NodeID)
		case trace.KindDistanceUpdate:
			assert.Empty(t, s.NodeID)
			assert.Nil(t, s.Distance)
		default:
			t.Fatalf("unexpected step kind %q", s.Kind)
		}
	}
	assert.Equal(t, []string{"A", "B", "C", "D", "E"}, visits)
}

func TestFloydWarshall_AllPairsTable(t *testing.T) {
	_, table := floydwarshall.AllPairs(builder.SimpleSample())

	assert.Equal(t, trace.Finite(7), table.Distance("B", "E"))
	assert.True(t, table.Distance("E", "A").IsInf())
	assert.True(t, table.Distance("A", "nope").IsInf())

	p, ok := table.Path("B", "E")
	require.True(t, ok)
	assert.Equal(t, []string{"B", "D", "E"}, p)

	_, ok = table.Path("E", "A")
	assert.False(t, ok)

	p, ok = table.Path("C", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"C"}, p)

	m := table.Matrix()
	assert.Equal(t, 5, m.Rows())
	m.Put(0, 1, trace.Finite(100))
	assert.Equal(t, trace.Finite(4), table.Distance("A", "B"), "Matrix must return a copy")
}

func TestFloydWarshall_TableJSON(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges: []graph.Edge{{ID: "AB", Source: "A", Target: "B", Weight: 2.5}},
	}
	_, table := floydwarshall.AllPairs(g)

	b, err := json.Marshal(table)
	require.NoError(t, err)
	assert.JSONEq(t, `{"order":["A","B"],"distances":[[0,2.5],[null,0]]}`, string(b))
}

func TestFloydWarshall_LastParallelEdgeWins(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges: []graph.Edge{
			{ID: "AB", Source: "A", Target: "B", Weight: 2},
			{ID: "AB2", Source: "A", Target: "B", Weight: 5},
		},
	}
	res := floydwarshall.Run(g)

	assert.Equal(t, trace.Finite(5), res.Distances["B"])
}

func TestFloydWarshall_SelfLoopOverwritesDiagonal(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges: []graph.Edge{
			{ID: "AA", Source: "A", Target: "A", Weight: 3},
			{ID: "AB", Source: "A", Target: "B", Weight: 1},
		},
	}
	_, table := floydwarshall.AllPairs(g)

	assert.Equal(t, trace.Finite(3), table.Distance("A", "A"))
	assert.Equal(t, trace.Finite(0), table.Distance("B", "B"))
}

func TestFloydWarshall_BadInput(t *testing.T) {
	t.Run("empty graph", func(t *testing.T) {
		res := floydwarshall.Run(graph.Graph{})
		assert.Equal(t, "", res.Source)
		assert.Empty(t, res.Distances)
		assert.Empty(t, res.Paths)
		require.Len(t, res.Steps, 1)
	})
	t.Run("dangling edges", func(t *testing.T) {
		g := graph.Graph{
			Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
			Edges: []graph.Edge{
				{ID: "AX", Source: "A", Target: "X", Weight: 1},
				{ID: "XB", Source: "X", Target: "B", Weight: 1},
			},
		}
		res := floydwarshall.Run(g)
		assert.True(t, res.Distances["B"].IsInf())
		assert.NotContains(t, res.Distances, "X")
	})
	t.Run("negative cycle terminates", func(t *testing.T) {
		g := graph.Graph{
			Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
			Edges: []graph.Edge{
				{ID: "AB", Source: "A", Target: "B", Weight: -1},
				{ID: "BA", Source: "B", Target: "A", Weight: -1},
			},
		}
		res := floydwarshall.Run(g)
		assert.True(t, res.Distances["A"].Less(trace.Finite(0)))
		assert.False(t, res.NegativeCycle)
	})
}

func TestFloydWarshall_NonFiniteWeightHasNoRoute(t *testing.T) {
	g := graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []graph.Edge{
			{ID: "AB", Source: "A", Target: "B", Weight: math.Inf(1)},
			{ID: "BC", Source: "B", Target: "C", Weight: 1},
		},
	}
	res, table := floydwarshall.AllPairs(g)

	assert.True(t, res.Distances["B"].IsInf())
	assert.True(t, res.Distances["C"].IsInf())
	assert.Empty(t, res.Paths)

	_, ok := table.Path("A", "B")
	assert.False(t, ok)
	p, ok := table.Path("B", "C")
	require.True(t, ok)
	assert.Equal(t, []string{"B", "C"}, p)
}

func TestFloydWarshall_PathsMatchDistances(t *testing.T) {
	for _, seed := range []int64{5, 9, 14} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntUniformWeight(1, 9)}, builder.RandomSparse(10, 0.35))
		require.NoError(t, err)

		t.Run(fmt.Sprintf("seed-%d", seed), func(t *testing.T) {
			res := floydwarshall.Run(g)
			for id, p := range res.Paths {
				require.NotEmpty(t, p)
				assert.Equal(t, res.Source, p[0], "path to %s", id)
				assert.Equal(t, id, p[len(p)-1], "path to %s", id)
				assert.Equal(t, res.Distances[id], pathWeight(g, p), "path to %s", id)
			}
			for id, d := range res.Distances {
				if id == res.Source || d.IsInf() {
					continue
				}
				assert.Contains(t, res.Paths, id, "reachable %s has no path", id)
			}
		})
	}
}

func TestFloydWarshall_MatchesBellmanFordFromFirstNode(t *testing.T) {
	cases := map[string]graph.Graph{
		"simple":   builder.SimpleSample(),
		"directed": builder.DirectedWeighted(),
	}
	for _, seed := range []int64{1, 2, 3} {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntUniformWeight(1, 9)}, builder.RandomSparse(10, 0.3))
		require.NoError(t, err)
		cases[fmt.Sprintf("random-%d", seed)] = g
	}

	for name, g := range cases {
		t.Run(name, func(t *testing.T) {
			fw := floydwarshall.Run(g)
			bf := bellmanford.Run(g, g.Nodes[0].ID)
			assert.Equal(t, bf.Distances, fw.Distances)

			_, table := floydwarshall.AllPairs(g)
			for _, src := range g.NodeIDs() {
				row := bellmanford.Run(g, src)
				for _, dst := range g.NodeIDs() {
					assert.Equal(t, row.Distances[dst], table.Distance(src, dst), "%s → %s", src, dst)
				}
			}
		})
	}
}

func TestFloydWarshall_Deterministic(t *testing.T) {
	g := builder.DirectedWeighted()
	assert.Equal(t, floydwarshall.Run(g), floydwarshall.Run(g))
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

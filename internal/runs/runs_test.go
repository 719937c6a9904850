package runs_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/logging"
	"github.com/katalvlaran/pathtrace/internal/runs"
	"github.com/katalvlaran/pathtrace/shortest"
	"github.com/katalvlaran/pathtrace/trace"
)

func TestSelectGraph(t *testing.T) {
	g, err := runs.SelectGraph("", 1)
	require.NoError(t, err)
	assert.Equal(t, builder.DirectedWeighted(), g)

	g, err = runs.SelectGraph("", 42)
	require.NoError(t, err)
	assert.Equal(t, builder.SimpleSample(), g)

	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - id: Q\n"), 0o600))
	g, err = runs.SelectGraph(path, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Q"}, g.NodeIDs())

	_, err = runs.SelectGraph(filepath.Join(t.TempDir(), "none.yaml"), 0)
	assert.Error(t, err)
}

func TestDefaultSource(t *testing.T) {
	g := builder.SimpleSample()
	assert.Equal(t, "A", runs.DefaultSource(g, ""))
	assert.Equal(t, "C", runs.DefaultSource(g, "C"))
	assert.Equal(t, "", runs.DefaultSource(graph.Graph{}, ""))
}

func TestExecute_DefaultsSource(t *testing.T) {
	res := runs.Execute(logging.NewNop(), runs.Request{Algorithm: shortest.Dijkstra, Graph: builder.SimpleSample()})
	assert.Equal(t, "A", res.Source)
	assert.Equal(t, trace.Finite(11), res.Distances["E"])
}

func TestExecute_Warnings(t *testing.T) {
	var buf bytes.Buffer
	log := logging.New("warn", "text", &buf)

	g := graph.Graph{
		Nodes: []graph.Node{{ID: "A"}, {ID: "B"}},
		Edges: []graph.Edge{
			{ID: "AB", Source: "A", Target: "B", Weight: -1},
			{ID: "BA", Source: "B", Target: "A", Weight: -1},
			{ID: "AX", Source: "A", Target: "X", Weight: 1},
		},
	}
	res := runs.Execute(log, runs.Request{Algorithm: shortest.BellmanFord, Source: "A", Graph: g})
	require.True(t, res.NegativeCycle)

	out := buf.String()
	assert.Contains(t, out, "ignoring edges with unknown endpoints")
	assert.Contains(t, out, "AX")
	assert.Contains(t, out, "negative cycle detected")

	buf.Reset()
	runs.Execute(log, runs.Request{Algorithm: shortest.Dijkstra, Source: "Z", Graph: builder.SimpleSample()})
	assert.Contains(t, buf.String(), "source node not in graph")
}

func TestStore_Evicts(t *testing.T) {
	s := runs.NewStore(2)
	assert.Equal(t, 0, s.Put(runs.Run{ID: "1"}))
	assert.Equal(t, 0, s.Put(runs.Run{ID: "2"}))
	assert.Equal(t, 0, s.Put(runs.Run{ID: "2"}))
	assert.Equal(t, 1, s.Put(runs.Run{ID: "3"}))

	_, err := s.Get("1")
	assert.ErrorIs(t, err, runs.ErrNotFound)
	r, err := s.Get("3")
	require.NoError(t, err)
	assert.Equal(t, "3", r.ID)
	assert.Equal(t, []string{"2", "3"}, s.IDs())
	assert.Equal(t, 2, s.Len())
}

func TestStore_MinimumSize(t *testing.T) {
	s := runs.NewStore(0)
	s.Put(runs.Run{ID: "a"})
	s.Put(runs.Run{ID: "b"})
	assert.Equal(t, []string{"b"}, s.IDs())
}

func TestStore_Concurrent(t *testing.T) {
	s := runs.NewStore(16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("%d-%d", i, j)
				s.Put(runs.Run{ID: id})
				_, _ = s.Get(id)
				_ = s.IDs()
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 16, s.Len())
}

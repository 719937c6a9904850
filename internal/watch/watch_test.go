package watch_test

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/logging"
	"github.com/katalvlaran/pathtrace/internal/watch"
)

const twoNodes = `
nodes:
  - id: A
  - id: B
edges:
  - id: AB
    source: A
    target: B
    weight: 3
`

func TestWatch_ReloadsOnWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte("nodes:\n  - id: A\n"), 0o600))

	var (
		mu   sync.Mutex
		seen []graph.Graph
	)
	stop, err := watch.Watch(path, logging.NewNop(), func(g graph.Graph) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, g)
	})
	require.NoError(t, err)
	defer stop()

	// A broken document is skipped.
	require.NoError(t, os.WriteFile(path, []byte("nodes: [\n"), 0o600))
	require.NoError(t, os.WriteFile(path, []byte(twoNodes), 0o600))

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, g := range seen {
			if len(g.Nodes) == 2 && len(g.Edges) == 1 {
				return true
			}
		}
		return false
	}, 5*time.Second, 20*time.Millisecond)

	stop()
	assert.NotPanics(t, stop)
}

func TestWatch_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.yaml")
	require.NoError(t, os.WriteFile(path, []byte(twoNodes), 0o600))

	calls := make(chan graph.Graph, 4)
	stop, err := watch.Watch(path, logging.NewNop(), func(g graph.Graph) { calls <- g })
	require.NoError(t, err)
	defer stop()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte(twoNodes), 0o600))
	select {
	case <-calls:
		t.Fatal("sibling file triggered a reload")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatch_Errors(t *testing.T) {
	_, err := watch.Watch("graph.yaml", logging.NewNop(), nil)
	assert.ErrorIs(t, err, watch.ErrNoCallback)

	_, err = watch.Watch(filepath.Join(t.TempDir(), "missing", "graph.yaml"), logging.NewNop(), func(graph.Graph) {})
	assert.Error(t, err)
}

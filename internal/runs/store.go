package runs

import (
	"errors"
	"sync"
	"time"

	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/metrics"
	"github.com/katalvlaran/pathtrace/trace"
)

// ErrNotFound is returned by Store.Get for an unknown or evicted run.
var ErrNotFound = errors.New("runs: run not found")

// Run is a stored, immutable run: the graph it ran on and its result.
type Run struct {
	ID        string       `json:"id"`
	CreatedAt time.Time    `json:"createdAt"`
	Graph     graph.Graph  `json:"graph"`
	Result    trace.Result `json:"result"`
}

// Store keeps at most limit runs in memory, evicting the oldest first.
// It is safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	limit int
	runs  map[string]Run
	order []string
}

// NewStore returns a Store bounded to limit runs; limit < 1 is treated as 1.
func NewStore(limit int) *Store {
	if limit < 1 {
		limit = 1
	}

	return &Store{limit: limit, runs: make(map[string]Run, limit)}
}

// Put stores r, replacing any run with the same id, and returns how many
// runs were evicted to make room.
func (s *Store) Put(r Run) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.runs[r.ID]; !ok {
		s.order = append(s.order, r.ID)
	}
	s.runs[r.ID] = r

	evicted := 0
	for len(s.order) > s.limit {
		delete(s.runs, s.order[0])
		s.order = s.order[1:]
		evicted++
	}
	metrics.StoredRuns.Set(float64(len(s.order)))
	metrics.Evictions.Add(float64(evicted))

	return evicted
}

// Get returns the run with the given id.
func (s *Store) Get(id string) (Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.runs[id]
	if !ok {
		return Run{}, ErrNotFound
	}

	return r, nil
}

// IDs returns stored run ids, oldest first.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.order...)
}

// Len returns the number of stored runs.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.order)
}

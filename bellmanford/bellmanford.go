// Package bellmanford implements a step-recording Bellman-Ford engine.
//
// Complexity:
//
//   - Time:  O(V·E). |V|-1 full passes over the edge list plus one detection pass.
//   - Space: O(V) plus the step log.
//
// Notes on implementation choices:
//
//   - Edges are relaxed in Graph edge order, passes never stop early: the trace
//     shows exactly |V|-1 iteration markers.
//   - The detection pass reports every edge that still improves. It does not
//     enumerate the cycle; the reported edge is one of possibly many on it.
package bellmanford

import (
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// Name is the algorithm identifier stored in Result.Algorithm.
const Name = "bellman-ford"

// Run computes shortest distances from sourceID, tolerating negative weights.
//
// When a negative cycle is reachable, Result.NegativeCycle is true and
// Result.Paths is empty; Distances still holds whatever the passes computed,
// which is not meaningful for nodes reachable through the cycle.
//
// Run never fails. An unknown sourceID leaves every node unreachable.
func Run(g graph.Graph, sourceID string) trace.Result {
	r := newRunner(g, sourceID)

	// 1) Initialise and announce the start.
	r.init()

	// 2) |V|-1 passes over every edge.
	for i := 1; i < len(r.ids); i++ {
		r.log.Append(trace.Note("Iteration %d: Relaxing all edges", i))
		r.pass()
	}

	// 3) One more pass only to detect negative cycles.
	r.detect()

	return r.finish()
}

// runner holds the mutable state for a single Bellman-Ford execution.
type runner struct {
	g        graph.Graph
	source   string
	ids      []string
	index    map[string]int
	dist     []trace.Distance
	prev     []string
	negCycle bool
	log      trace.Log
}

func newRunner(g graph.Graph, source string) *runner {
	ids := g.NodeIDs()

	return &runner{
		g:      g,
		source: source,
		ids:    ids,
		index:  g.Index(),
		dist:   make([]trace.Distance, len(ids)),
		prev:   make([]string, len(ids)),
	}
}

func (r *runner) init() {
	if i, ok := r.index[r.source]; ok {
		r.dist[i] = trace.Finite(0)
	}
	r.log.Append(trace.DistanceUpdate(r.source, trace.Finite(0),
		"Starting from node %s", r.source))
}

// endpoints resolves both ends of e; false when either is unknown.
func (r *runner) endpoints(e graph.Edge) (u, v int, ok bool) {
	if u, ok = r.index[e.Source]; !ok {
		return 0, 0, false
	}
	v, ok = r.index[e.Target]

	return u, v, ok
}

// pass relaxes every edge once, in Graph edge order.
func (r *runner) pass() {
	var (
		u, v int
		ok   bool
		cand trace.Distance
	)
	for _, e := range r.g.Edges {
		if u, v, ok = r.endpoints(e); !ok || r.dist[u].IsInf() {
			continue
		}
		cand = r.dist[u].Add(e.Weight)
		if !cand.Less(r.dist[v]) {
			continue
		}
		r.dist[v] = cand
		r.prev[v] = e.Source
		r.log.Append(trace.EdgeRelax(e.ID, e.Target, cand, e.Source,
			"Relaxing edge %s → %s, new distance: %s", e.Source, e.Target, cand))
	}
}

// detect flags every edge that can still be relaxed. Distances are not
// touched.
func (r *runner) detect() {
	var (
		u, v int
		ok   bool
	)
	for _, e := range r.g.Edges {
		if u, v, ok = r.endpoints(e); !ok || r.dist[u].IsInf() {
			continue
		}
		if r.dist[u].Add(e.Weight).Less(r.dist[v]) {
			r.negCycle = true
			r.log.Append(trace.Note("Negative cycle detected involving edge %s → %s", e.Source, e.Target))
		}
	}
}

func (r *runner) finish() trace.Result {
	res := trace.NewResult(Name, r.source, r.ids)
	for id, i := range r.index {
		res.Distances[id] = r.dist[i]
		res.Previous[id] = r.prev[i]
	}
	res.Steps = r.log.Steps()
	res.NegativeCycle = r.negCycle
	if !r.negCycle {
		res.BuildPaths()
	}

	return res
}

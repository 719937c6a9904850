// Package dijkstra implements a step-recording Dijkstra shortest-path engine.
//
// Complexity:
//
//   - Time:  O(V² + V·E)
//   - V selections, each a linear scan over the node list.
//   - Each settled node scans the edge list for its outgoing edges.
//   - Space: O(V) for distances, predecessors and the settled set, plus the log.
//
// Notes on implementation choices:
//
//   - Selection is a linear scan in Graph node order with a strict "<", so among
//     nodes at equal distance the earliest in Graph order is settled first.
//   - Every improvement is applied, even to an already settled neighbour. With
//     non-negative weights that never happens; with negative weights the trace
//     shows it instead of hiding it.
package dijkstra

import (
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// Name is the algorithm identifier stored in Result.Algorithm.
const Name = "dijkstra"

// Run computes shortest distances from sourceID and records every step.
//
// Returns a fresh trace.Result:
//
//   - Distances: node ID → distance, trace.Infinite if unreachable.
//   - Previous:  node ID → predecessor, trace.NoPredecessor for the source and
//     for unreachable nodes.
//   - Paths:     node ID → source…node for every reachable node except the source.
//
// Run never fails. A sourceID that is not in g leaves every node unreachable
// and the loop ends at once. Edges pointing at unknown nodes are skipped.
func Run(g graph.Graph, sourceID string) trace.Result {
	// 1) Resolve node positions once; all per-node state is indexed by position.
	r := newRunner(g, sourceID)

	// 2) Initialise distances and announce the start.
	r.init()

	// 3) Settle nodes until nothing reachable is left.
	r.process()

	// 4) Reconstruct paths and hand the result over.
	return r.finish()
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       graph.Graph      // input snapshot; read-only
	source  string           // requested source ID
	ids     []string         // node IDs in Graph order
	index   map[string]int   // node ID → position in ids
	dist    []trace.Distance // position → best known distance
	prev    []string         // position → predecessor ID
	settled []bool           // position → distance is final
	log     trace.Log        // emitted steps
}

func newRunner(g graph.Graph, source string) *runner {
	ids := g.NodeIDs()

	return &runner{
		g:       g,
		source:  source,
		ids:     ids,
		index:   g.Index(),
		dist:    make([]trace.Distance, len(ids)),
		prev:    make([]string, len(ids)),
		settled: make([]bool, len(ids)),
	}
}

// init sets every distance to ∞ except the source and records the start step.
func (r *runner) init() {
	// make() already produced Infinite / NoPredecessor for every slot.
	if i, ok := r.index[r.source]; ok {
		r.dist[i] = trace.Finite(0)
	}

	r.log.Append(trace.DistanceUpdate(r.source, trace.Finite(0),
		"Starting from node %s", r.source))
}

// process is the main loop: pick the closest unsettled node, settle it, relax
// its outgoing edges. It stops when every node is settled or the closest
// unsettled node is unreachable.
func (r *runner) process() {
	for {
		u := r.closest()
		if u < 0 {
			return
		}

		r.settled[u] = true
		r.log.Append(trace.NodeVisit(r.ids[u],
			"Visiting node %s with distance %s", r.ids[u], r.dist[u]))

		r.relax(u)
	}
}

// closest returns the position of the unsettled node with the smallest finite
// distance, or -1. Ties resolve to the earliest node in Graph order.
func (r *runner) closest() int {
	best := -1
	for i := range r.ids {
		if r.settled[i] || r.dist[i].IsInf() {
			continue
		}
		if best < 0 || r.dist[i].Less(r.dist[best]) {
			best = i
		}
	}

	return best
}

// relax examines each edge leaving u, in Graph edge order, and records every
// strict improvement as an edge-relax step.
func (r *runner) relax(u int) {
	from := r.ids[u]
	var (
		v    int
		ok   bool
		cand trace.Distance
	)
	for _, e := range r.g.Edges {
		if e.Source != from {
			continue
		}
		// Unknown targets are never matched.
		if v, ok = r.index[e.Target]; !ok {
			continue
		}

		cand = r.dist[u].Add(e.Weight)
		if !cand.Less(r.dist[v]) {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = from
		r.log.Append(trace.EdgeRelax(e.ID, e.Target, cand, from,
			"Relaxing edge to %s, new distance: %s", e.Target, cand))
	}
}

// finish copies the per-position state into a fresh Result and rebuilds paths.
func (r *runner) finish() trace.Result {
	res := trace.NewResult(Name, r.source, r.ids)
	for id, i := range r.index {
		res.Distances[id] = r.dist[i]
		res.Previous[id] = r.prev[i]
	}
	res.Steps = r.log.Steps()
	res.BuildPaths()

	return res
}

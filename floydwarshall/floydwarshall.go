package floydwarshall

import (
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/matrix"
	"github.com/katalvlaran/pathtrace/trace"
)

// Name is the algorithm identifier stored in Result.Algorithm.
const Name = "floyd-warshall"

// noHop marks a next-hop cell with no known route.
const noHop = -1

// Run computes all-pairs shortest distances and returns the projection onto
// the first node of g. An empty graph yields an empty Result with Source "".
func Run(g graph.Graph) trace.Result {
	res, _ := AllPairs(g)

	return res
}

// AllPairs is Run plus the full Table behind the projection.
func AllPairs(g graph.Graph) (trace.Result, *Table) {
	r := newRunner(g)

	// 1) Direct edges.
	r.init()

	// 2) Every node as intermediate, in Graph node order.
	for k := range r.ids {
		r.through(k)
	}

	// 3) Project onto the representative source.
	t := &Table{Order: r.ids, index: r.index, dist: r.dist, next: r.next}

	return r.project(t), t
}

type runner struct {
	g     graph.Graph
	ids   []string
	index map[string]int
	dist  *matrix.Dense[trace.Distance]
	next  *matrix.Dense[int]
	log   trace.Log
}

func newRunner(g graph.Graph) *runner {
	ids := g.NodeIDs()
	n := len(ids)

	// n is never negative, so neither constructor can fail.
	dist, _ := matrix.NewSquare(n, trace.Infinite)
	next, _ := matrix.NewSquare(n, noHop)

	return &runner{g: g, ids: ids, index: g.Index(), dist: dist, next: next}
}

func (r *runner) init() {
	for i := range r.ids {
		r.dist.Put(i, i, trace.Finite(0))
	}
	var (
		s, t     int
		ok1, ok2 bool
	)
	for _, e := range r.g.Edges {
		s, ok1 = r.index[e.Source]
		t, ok2 = r.index[e.Target]
		if !ok1 || !ok2 {
			continue
		}
		d := trace.Finite(e.Weight)
		r.dist.Put(s, t, d)
		if d.IsInf() {
			r.next.Put(s, t, noHop)
		} else {
			r.next.Put(s, t, t)
		}
	}
	r.log.Append(trace.Note("Initialized distance matrix with direct edges"))
}

// through relaxes every pair (i, j) via intermediate k.
func (r *runner) through(k int) {
	r.log.Append(trace.NodeVisit(r.ids[k], "Using node %s as intermediate node", r.ids[k]))

	n := len(r.ids)
	var ik, cand trace.Distance
	for i := 0; i < n; i++ {
		if ik = r.dist.Get(i, k); ik.IsInf() {
			continue
		}
		for j := 0; j < n; j++ {
			cand = ik.Plus(r.dist.Get(k, j))
			if !cand.Less(r.dist.Get(i, j)) {
				continue
			}
			r.dist.Put(i, j, cand)
			r.next.Put(i, j, r.next.Get(i, k))
			r.log.Append(trace.Note("Updated path %s → %s via %s, new distance: %s",
				r.ids[i], r.ids[j], r.ids[k], cand))
		}
	}
}

func (r *runner) project(t *Table) trace.Result {
	var source string
	if len(r.ids) > 0 {
		source = r.ids[0]
	}
	res := trace.NewResult(Name, source, r.ids)
	res.Steps = r.log.Steps()
	if source == "" {
		return res
	}

	for _, id := range r.ids {
		res.Distances[id] = t.Distance(source, id)
		if id == source || res.Distances[id].IsInf() {
			continue
		}
		if p, ok := t.Path(source, id); ok {
			res.Paths[id] = p
			res.Previous[id] = p[len(p)-2]
		}
	}

	return res
}

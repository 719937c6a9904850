// Package trace defines the replayable output shared by every engine:
// the Distance sentinel type, the Step log and the Result shape.
//
// Invariants:
//   - Steps are strictly ordered by emission; the slice is the full audit trail.
//   - Distances holds an entry for every node of the input graph.
//   - Previous holds an entry for every node; NoPredecessor means none.
//   - Paths holds an entry only for reachable nodes other than Source. Each path
//     starts at Source and ends at the keyed node.
//   - A Result owns all of its maps and slices; nothing aliases the input Graph.
package trace

// Result is what one engine run returns.
type Result struct {
	// Algorithm is the identifier of the engine that produced the result.
	Algorithm string `json:"algorithm"`

	// Source is the node distances are measured from. For Floyd-Warshall it is
	// the representative source (first node), empty for an empty graph.
	Source string `json:"source"`

	// Order lists node IDs in Graph order, for stable display of the maps below.
	Order []string `json:"order"`

	Steps []Step `json:"steps"`

	// Distances maps node ID → shortest distance found, Infinite if unreachable.
	Distances map[string]Distance `json:"distances"`

	// Previous maps node ID → predecessor ID, NoPredecessor if none.
	Previous map[string]string `json:"previousNodes"`

	// Paths maps node ID → node IDs from Source to that node.
	Paths map[string][]string `json:"paths"`

	// NegativeCycle is set by Bellman-Ford when its extra pass still improved an
	// edge. Paths is empty in that case.
	NegativeCycle bool `json:"negativeCycle"`
}

// NewResult allocates a Result for the given node order, with every distance
// Infinite and every predecessor NoPredecessor.
func NewResult(algorithm, source string, order []string) Result {
	r := Result{
		Algorithm: algorithm,
		Source:    source,
		Order:     append([]string(nil), order...),
		Steps:     []Step{},
		Distances: make(map[string]Distance, len(order)),
		Previous:  make(map[string]string, len(order)),
		Paths:     make(map[string][]string),
	}
	for _, id := range order {
		r.Distances[id] = Infinite
		r.Previous[id] = NoPredecessor
	}

	return r
}

// Distance returns the final distance of id, Infinite for unknown IDs.
func (r Result) Distance(id string) Distance {
	return r.Distances[id]
}

// Path returns the reconstructed path to id, if any.
func (r Result) Path(id string) ([]string, bool) {
	p, ok := r.Paths[id]
	if !ok {
		return nil, false
	}

	return append([]string(nil), p...), true
}

// Reachable reports whether id ended with a finite distance.
func (r Result) Reachable(id string) bool {
	d, ok := r.Distances[id]

	return ok && !d.IsInf()
}

// Len returns the number of steps.
func (r Result) Len() int { return len(r.Steps) }

// WalkPredecessors follows prev from target back to the node that has no
// predecessor and returns the chain in forward order.
//
// The walk is bounded by limit hops. A chain that does not terminate within
// limit (only possible when negative edges rewired already-settled nodes)
// yields false.
func WalkPredecessors(target string, prev map[string]string, limit int) ([]string, bool) {
	path := []string{target}
	cur := target
	for hops := 0; hops <= limit; hops++ {
		p := prev[cur]
		if p == NoPredecessor {
			// Reverse in place: source first.
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, true
		}
		path = append(path, p)
		cur = p
	}

	return nil, false
}

// BuildPaths fills r.Paths for every node except r.Source that has a finite
// distance, by walking r.Previous. Used by the single-source engines.
func (r *Result) BuildPaths() {
	var (
		p  []string
		ok bool
	)
	for _, id := range r.Order {
		if id == r.Source || r.Distances[id].IsInf() {
			continue
		}
		if p, ok = WalkPredecessors(id, r.Previous, len(r.Order)); ok {
			r.Paths[id] = p
		}
	}
}

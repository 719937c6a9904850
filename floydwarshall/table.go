package floydwarshall

import (
	"encoding/json"

	"github.com/katalvlaran/pathtrace/matrix"
	"github.com/katalvlaran/pathtrace/trace"
)

// Table is the full all-pairs outcome of one run, indexed by node ID.
// It is read-only once returned.
type Table struct {
	// Order lists node IDs in Graph order; it is the row and column order of
	// Matrix.
	Order []string

	index map[string]int
	dist  *matrix.Dense[trace.Distance]
	next  *matrix.Dense[int]
}

// Distance returns the shortest distance from → to, Infinite when either id
// is unknown or no route exists.
func (t *Table) Distance(from, to string) trace.Distance {
	i, ok1 := t.index[from]
	j, ok2 := t.index[to]
	if !ok1 || !ok2 {
		return trace.Infinite
	}

	return t.dist.Get(i, j)
}

// Path reconstructs the node sequence from → to by following next hops.
//
// The walk is bounded by len(Order) hops; a walk that does not reach to
// within that bound (possible when a negative cycle rewired the hops) yields
// false. from == to yields [from] when from is known.
func (t *Table) Path(from, to string) ([]string, bool) {
	i, ok1 := t.index[from]
	j, ok2 := t.index[to]
	if !ok1 || !ok2 {
		return nil, false
	}
	path := []string{from}
	cur := i
	for hops := 0; cur != j; hops++ {
		if hops >= len(t.Order) {
			return nil, false
		}
		if cur = t.next.Get(cur, j); cur == noHop {
			return nil, false
		}
		path = append(path, t.Order[cur])
	}

	return path, true
}

// Matrix returns a copy of the distance matrix in Order × Order layout.
func (t *Table) Matrix() *matrix.Dense[trace.Distance] {
	return t.dist.Clone()
}

// tableJSON is the wire form of a Table.
type tableJSON struct {
	Order     []string           `json:"order"`
	Distances [][]trace.Distance `json:"distances"`
}

// MarshalJSON encodes the table as its node order plus the distance matrix
// in row-major Order × Order layout; unreachable cells are null.
func (t *Table) MarshalJSON() ([]byte, error) {
	out := tableJSON{Order: t.Order, Distances: make([][]trace.Distance, len(t.Order))}
	for i := range t.Order {
		out.Distances[i] = make([]trace.Distance, len(t.Order))
		for j := range t.Order {
			out.Distances[i][j] = t.dist.Get(i, j)
		}
	}

	return json.Marshal(out)
}

package trace

import "fmt"

// StepKind tags what a Step records.
type StepKind string

const (
	// KindNodeVisit marks a node as visited: settled by Dijkstra, or chosen as
	// the intermediate node by Floyd-Warshall.
	KindNodeVisit StepKind = "node-visit"

	// KindEdgeRelax records an edge that improved its target's distance.
	KindEdgeRelax StepKind = "edge-relax"

	// KindDistanceUpdate covers initialisation, iteration markers and
	// distance changes that are not tied to one edge.
	KindDistanceUpdate StepKind = "distance-update"
)

// NoPredecessor is the Previous value of a node that has no predecessor.
const NoPredecessor = ""

// Step is one observable event of a run. Steps are values and are never
// modified once appended to a Log.
type Step struct {
	Kind StepKind `json:"type"`

	// NodeID is the node the event is about, if any.
	NodeID string `json:"nodeId,omitempty"`

	// EdgeID is the relaxed edge (edge-relax only).
	EdgeID string `json:"edgeId,omitempty"`

	// Distance is the distance carried by the event, nil when absent.
	Distance *Distance `json:"distance,omitempty"`

	// Previous is the predecessor recorded by an edge-relax.
	Previous string `json:"previous,omitempty"`

	// Message is the human readable description. Always set.
	Message string `json:"message"`
}

// DistanceValue returns the carried distance, if any.
func (s Step) DistanceValue() (Distance, bool) {
	if s.Distance == nil {
		return Infinite, false
	}

	return *s.Distance, true
}

// NodeVisit builds a node-visit step.
func NodeVisit(nodeID, format string, args ...any) Step {
	return Step{
		Kind:    KindNodeVisit,
		NodeID:  nodeID,
		Message: fmt.Sprintf(format, args...),
	}
}

// EdgeRelax builds an edge-relax step carrying the new distance of nodeID
// and its new predecessor.
func EdgeRelax(edgeID, nodeID string, d Distance, previous, format string, args ...any) Step {
	return Step{
		Kind:     KindEdgeRelax,
		NodeID:   nodeID,
		EdgeID:   edgeID,
		Distance: &d,
		Previous: previous,
		Message:  fmt.Sprintf(format, args...),
	}
}

// DistanceUpdate builds a distance-update step about nodeID.
func DistanceUpdate(nodeID string, d Distance, format string, args ...any) Step {
	return Step{
		Kind:     KindDistanceUpdate,
		NodeID:   nodeID,
		Distance: &d,
		Message:  fmt.Sprintf(format, args...),
	}
}

// Note builds a distance-update step that names no node and carries no
// distance: iteration markers, matrix initialisation, diagnostics.
func Note(format string, args ...any) Step {
	return Step{
		Kind:    KindDistanceUpdate,
		Message: fmt.Sprintf(format, args...),
	}
}

// Log is the append-only step sequence of one run.
//
// The zero value is an empty log ready to use. A Log is not safe for
// concurrent appends; engines own theirs exclusively until they return.
type Log struct {
	steps []Step
}

// Append adds s at the end of the log.
func (l *Log) Append(s Step) {
	l.steps = append(l.steps, s)
}

// Len returns the number of steps recorded so far.
func (l *Log) Len() int { return len(l.steps) }

// At returns the i-th step.
func (l *Log) At(i int) (Step, bool) {
	if i < 0 || i >= len(l.steps) {
		return Step{}, false
	}

	return l.steps[i], true
}

// Steps returns a copy of the recorded steps.
func (l *Log) Steps() []Step {
	out := make([]Step, len(l.steps))
	copy(out, l.steps)

	return out
}

// Prefix returns a copy of steps [0..k]. k is clamped to the log; a negative
// k yields an empty slice.
func (l *Log) Prefix(k int) []Step {
	return PrefixOf(l.steps, k)
}

// PrefixOf returns a copy of steps[0..k], clamped the same way as Log.Prefix.
func PrefixOf(steps []Step, k int) []Step {
	if k >= len(steps) {
		k = len(steps) - 1
	}
	if k < 0 {
		return []Step{}
	}
	out := make([]Step, k+1)
	copy(out, steps[:k+1])

	return out
}

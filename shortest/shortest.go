// Package shortest is the algorithm selection surface: it names the three
// engines, parses user input into one of them and dispatches a run.
//
// Parse never fails. Unknown or empty input selects Dijkstra; callers that
// must reject bad input check Known first.
package shortest

import (
	"strings"

	"github.com/katalvlaran/pathtrace/bellmanford"
	"github.com/katalvlaran/pathtrace/dijkstra"
	"github.com/katalvlaran/pathtrace/floydwarshall"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/trace"
)

// Algorithm identifies one engine. Its string value is the identifier stored
// in trace.Result.Algorithm.
type Algorithm string

// Supported algorithms.
const (
	Dijkstra      Algorithm = dijkstra.Name
	BellmanFord   Algorithm = bellmanford.Name
	FloydWarshall Algorithm = floydwarshall.Name
)

// Default is what Parse returns for unknown input.
const Default = Dijkstra

// Func is the signature every engine shares. Floyd-Warshall ignores sourceID.
type Func func(g graph.Graph, sourceID string) trace.Result

// Algorithms returns every supported algorithm in display order.
func Algorithms() []Algorithm {
	return []Algorithm{Dijkstra, BellmanFord, FloydWarshall}
}

// Known reports whether s names a supported algorithm.
func Known(s string) bool {
	_, ok := parse(s)
	return ok
}

// Parse maps s to an Algorithm. Matching ignores case, surrounding space and
// the choice between '-', '_' and ' ' as separator. Anything else yields
// Default.
func Parse(s string) Algorithm {
	if a, ok := parse(s); ok {
		return a
	}

	return Default
}

func parse(s string) (Algorithm, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, a := range Algorithms() {
		if norm == string(a) {
			return a, true
		}
	}

	return "", false
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }

// Label is the human-readable name shown in menus.
func (a Algorithm) Label() string {
	switch a {
	case BellmanFord:
		return "Bellman-Ford Algorithm"
	case FloydWarshall:
		return "Floyd-Warshall Algorithm"
	default:
		return "Dijkstra's Algorithm"
	}
}

// NeedsSource reports whether the engine measures from a chosen node.
func (a Algorithm) NeedsSource() bool { return a != FloydWarshall }

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	return []byte(a), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with Parse semantics, so
// config files and request bodies fall back to Default the same way.
func (a *Algorithm) UnmarshalText(b []byte) error {
	*a = Parse(string(b))
	return nil
}

// Lookup returns the engine for a. Unknown values resolve to Default.
func Lookup(a Algorithm) Func {
	switch a {
	case BellmanFord:
		return bellmanford.Run
	case FloydWarshall:
		return func(g graph.Graph, _ string) trace.Result { return floydwarshall.Run(g) }
	default:
		return dijkstra.Run
	}
}

// Run executes a on g from sourceID.
func Run(a Algorithm, g graph.Graph, sourceID string) trace.Result {
	return Lookup(a)(g, sourceID)
}

// All runs every algorithm on g and returns the results in Algorithms order.
func All(g graph.Graph, sourceID string) []trace.Result {
	algos := Algorithms()
	out := make([]trace.Result, len(algos))
	for i, a := range algos {
		out[i] = Run(a, g, sourceID)
	}

	return out
}

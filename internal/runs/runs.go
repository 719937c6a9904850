// Package runs executes one algorithm run on behalf of the CLI and the HTTP
// server. It picks the graph and the source, logs what the engines absorb
// silently and records metrics.
package runs

import (
	"log/slog"
	"time"

	"github.com/katalvlaran/pathtrace/builder"
	"github.com/katalvlaran/pathtrace/graph"
	"github.com/katalvlaran/pathtrace/internal/metrics"
	"github.com/katalvlaran/pathtrace/shortest"
	"github.com/katalvlaran/pathtrace/trace"
)

// Request describes one run.
type Request struct {
	Algorithm shortest.Algorithm
	// Source empty means the first node of Graph.
	Source string
	Graph  graph.Graph
}

// SelectGraph loads file when it is set, otherwise returns the preset at
// index (Simple Sample for an out-of-range index).
func SelectGraph(file string, preset int) (graph.Graph, error) {
	if file != "" {
		return graph.Load(file)
	}

	return builder.PresetGraph(preset), nil
}

// DefaultSource returns source, or the first node of g when source is empty.
// An empty graph yields "".
func DefaultSource(g graph.Graph, source string) string {
	if source != "" || len(g.Nodes) == 0 {
		return source
	}

	return g.Nodes[0].ID
}

// Execute runs req and returns its result. Dangling edges, an unknown source
// and a detected negative cycle are logged as warnings; none of them is an
// error.
func Execute(log *slog.Logger, req Request) trace.Result {
	src := DefaultSource(req.Graph, req.Source)
	attrs := []any{"algorithm", req.Algorithm.String(), "source", src}

	if dangling := req.Graph.Dangling(); len(dangling) > 0 {
		log.Warn("ignoring edges with unknown endpoints", append(attrs, "edges", dangling)...)
	}
	if req.Algorithm.NeedsSource() && src != "" && !req.Graph.HasNode(src) {
		log.Warn("source node not in graph, every node is unreachable", attrs...)
	}

	start := time.Now()
	res := shortest.Run(req.Algorithm, req.Graph, src)
	elapsed := time.Since(start)
	metrics.ObserveRun(res, elapsed)

	if res.NegativeCycle {
		log.Warn("negative cycle detected, paths omitted", attrs...)
	}
	log.Debug("run finished", append(attrs, "steps", len(res.Steps), "elapsed", elapsed)...)

	return res
}

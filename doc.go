// Package pathtrace is a step-by-step shortest-path visualiser: every engine
// returns its final distances and paths together with the ordered log of
// decisions that produced them, so a front end can replay a run one step at a
// time.
//
// Packages, leaf first:
//
//	graph/          ordered nodes and directed weighted edges, YAML/JSON codec
//	trace/          Distance (with ∞), Step log and the shared Result shape
//	matrix/         flat row-major Dense arena used by Floyd-Warshall
//	dijkstra/       single source, non-negative weights
//	bellmanford/    single source, negative weights, negative-cycle detection
//	floydwarshall/  all pairs, projected onto the first node
//	shortest/       algorithm names, parsing and dispatch
//	replay/         fold a prefix of the step log into a display overlay
//	builder/        presets and deterministic generated graphs
//
// Command pathtrace (cmd/pathtrace) runs, animates and serves these traces;
// its supporting packages live under internal/.
//
// Quick start:
//
//	res := dijkstra.Run(builder.SimpleSample(), "A")
//	o := replay.Project(builder.SimpleSample(), res, 4)
//	fmt.Println(o.Message) // Visiting node C with distance 2
package pathtrace

// Package dijkstra provides a trace-producing implementation of Dijkstra's
// single-source shortest-path algorithm on a graph.Graph.
//
// Overview:
//
//   - Run returns the final distances, predecessors and paths together with
//     the ordered step log that produced them, so a front end can replay the
//     run one decision at a time.
//   - The engine is a pure function: no goroutines, no locks, no errors.
//
// Step log of a run:
//
//	distance-update  "Starting from node A"                   (once)
//	node-visit       "Visiting node A with distance 0"        (per settled node)
//	edge-relax       "Relaxing edge to B, new distance: 4"    (per improvement)
//
// Tie-break policy:
//
//   - When several unsettled nodes share the minimum distance, the one that
//     comes first in graph.Graph.Nodes is settled first. The policy is part of
//     the contract: equal inputs always produce equal logs.
//
// Bad input:
//
//   - Unknown source: every node stays trace.Infinite, the log holds only the
//     start step, Paths is empty.
//   - Edges whose target is not a node are ignored.
//   - Negative weights are not rejected. Results are only meaningful for
//     non-negative graphs; use bellmanford otherwise. A predecessor chain that
//     loops (possible only with negative edges) yields no path for that node.
//
// Performance and complexity:
//
//   - Time:  O(V² + V·E). Graphs here hold tens of nodes; the linear scan keeps
//     the tie-break explicit. A heap would change complexity, not results.
//   - Space: O(V) plus the step log.
//
// See also:
//
//   - bellmanford.Run for negative weights.
//   - floydwarshall.Run for all pairs.
//   - replay.Project to fold a prefix of the log into a display overlay.
package dijkstra

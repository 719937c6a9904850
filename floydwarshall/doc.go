// Package floydwarshall provides a trace-producing Floyd-Warshall all-pairs
// shortest-path engine on a graph.Graph.
//
// Overview:
//
//   - Run computes every pair, records the full step log and projects the
//     result onto the first node of the graph (the representative source) so
//     it has the same shape as the single-source engines.
//   - AllPairs returns the same Result together with a Table holding the whole
//     distance matrix and next-hop matrix.
//
// Step log of a run:
//
//	distance-update  "Initialized distance matrix with direct edges"       (once)
//	node-visit       "Using node K as intermediate node"                    (per node)
//	distance-update  "Updated path I → J via K, new distance: d"            (per improvement)
//
// Update steps carry neither a node id nor a distance: a pair update is not a
// change of any single node's displayed distance.
//
// Matrix construction:
//
//   - The diagonal starts at 0. Edges are applied in Graph order and overwrite
//     the cell, so the last of several parallel edges wins and a self-loop
//     replaces the diagonal 0.
//   - Edges with an unknown endpoint are skipped.
//
// Performance and complexity:
//
//   - Time:  O(V³).
//   - Space: O(V²) in two flat matrix.Dense arenas.
package floydwarshall

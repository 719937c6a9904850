// Package replay turns a prefix of a trace.Result step log into the display
// state a front end draws: which nodes are visited, which distance each node
// shows and which edges are highlighted.
//
// Overview:
//
//   - Project(g, r, k) is a pure fold of steps [0..k] over a fresh copy of g.
//     It never reads the previous overlay, so scrubbing backwards is the same
//     as recomputing from scratch.
//   - Cursor keeps a position in the log and re-projects on every move.
//   - Player advances a Cursor on a timer until the end of the log or until
//     its context is done.
//
// Folding rules:
//
//	node-visit       marks NodeID visited
//	edge-relax       highlights EdgeID
//	distance-update  sets NodeID's displayed distance, only when the step
//	                 carries both a node id and a distance
//
// Before folding, every node shows its final distance from r.Distances.
// Steps naming unknown nodes or edges are skipped.
package replay

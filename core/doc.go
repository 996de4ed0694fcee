// Package core defines the shared data model of the Isomap pipeline:
// the immutable PointSet, the undirected weighted neighborhood Graph,
// the DisconnectionPolicy switch, and the error taxonomy every stage
// resolves its failures to.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Vertices are dense indices 0..N-1 (one per input point).
//   - Edges are undirected, carry a float64 weight ≥ 0 and are stored mirrored
//     in both endpoint adjacency lists.
//   - No self-loops and no parallel edges. Re-adding an existing edge with the
//     identical weight is a no-op; a different weight is rejected.
//   - Adjacency lists are kept sorted by neighbor index, so every traversal
//     (Neighbors, Edges) is deterministic without extra sorting.
//
// Error taxonomy (sentinels, match with errors.Is):
//
//	ErrInvalidParameter  - k or d out of range, malformed points, bad weights.
//	ErrEmptyInput        - N = 0.
//	ErrDisconnectedGraph - ≥2 connected components under PolicyFail
//	                       (concrete type *DisconnectedGraphError).
//	ErrInsufficientRank  - fewer than d non-negative eigenvalues
//	                       (concrete type *InsufficientRankError).
//
// Thread safety:
//
//   - A Graph is built once by a single goroutine and then only read.
//     Concurrent readers are safe; concurrent AddEdge calls are not.
//
// Complexity quicksheet:
//
//	NewGraph        O(N)
//	AddEdge         O(deg(u) + deg(v))   (sorted insertion)
//	HasEdge/Weight  O(log deg(u))
//	Neighbors       O(1)                 (live read-only slice)
//	Edges           O(N + E)
package core

// Package dijkstra implements single-source shortest paths on the undirected
// neighborhood graph (core.Graph) with non-negative float64 weights.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from a source vertex to all
//     reachable vertices in O((V + E) log V) time.
//   - It relies on a binary min-heap (container/heap) with lazy decrease-key:
//     an improved distance pushes a new entry and stale entries are skipped
//     when popped.
//   - Ties in the heap are broken by vertex index, so the settle order (and
//     therefore the predecessor tree) is fully deterministic.
//
// Two entry points:
//
//   - Dijkstra(g, opts...) returns a fresh distance slice and, with
//     WithReturnPath(), a predecessor slice for path reconstruction (Path).
//   - Workspace.Distances(g, src, row) writes one row of a distance matrix
//     into caller-owned storage, reusing its heap and visited buffers between
//     calls. The geodesic solver gives every worker its own Workspace and its
//     own disjoint rows, so no locking is required.
//
// Unreachable vertices hold math.Inf(1).
//
// Error handling (sentinel errors, all matching a core taxonomy member):
//
//   - ErrNilGraph       (core.ErrEmptyInput)       nil graph.
//   - ErrVertexNotFound (core.ErrInvalidParameter) source outside [0, N).
//   - ErrNegativeWeight (core.ErrInvalidParameter) negative or NaN edge weight.
//   - ErrBadRowLength   (core.ErrInvalidParameter) destination row length ≠ N.
//
// Thread safety:
//
//   - The graph is only read; concurrent calls on the same graph are safe.
//   - A Workspace must not be shared between goroutines.
package dijkstra

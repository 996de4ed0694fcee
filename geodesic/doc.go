// Package geodesic approximates manifold distances by shortest-path distances
// over the kNN neighborhood graph.
//
// Solve runs one Dijkstra per source (default) or a dense Floyd–Warshall
// (WithMethod(MethodFloydWarshall)); both produce the same matrix. Per-source
// runs are spread over contiguous row ranges, one goroutine and one
// dijkstra.Workspace per range; the graph is shared read-only.
//
// The output is symmetric bit-for-bit, has a zero diagonal and is
// non-negative. When the graph is disconnected the policy decides:
//
//   - core.PolicyFail (default): *core.DisconnectedGraphError with the
//     component count and sizes, no matrix.
//   - core.PolicyInfiniteFill: unreachable pairs hold math.Inf(1); the
//     component labelling is returned alongside the matrix.
package geodesic

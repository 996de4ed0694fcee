// Package bfs provides breadth-first search over a core.Graph and the
// connected-component labelling built on top of it.
//
// What
//
//   - BFS explores vertices in non-decreasing hop count from a start vertex
//     and returns a Result with:
//   - Order: visit sequence
//   - Depth: Depth[v] = hops from start, -1 when unreached
//   - Parent: Parent[v] = predecessor in the BFS tree, -1 for the root
//   - ConnectedComponents labels every vertex with a component id and
//     records the size of each component.
//   - An OnVisit hook may abort the search with an error.
//   - MaxDepth limits exploration (d>0) or explicitly disables the limit (d==0).
//
// Why
//
//   - The geodesic solver needs the component structure of the neighborhood
//     graph: a disconnected graph has infinite geodesic distances, which is
//     either a hard error or a diagnostic depending on the policy.
//
// Determinism
//
//	core.Graph keeps adjacency sorted by neighbor index and BFS enqueues
//	neighbors in that order, so the visit sequence is fully reproducible.
//	Component ids follow the lowest vertex index of each component.
//
// Complexity (V = vertices, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(3))
//	comps, err := bfs.ConnectedComponents(g)
//	if comps.Count() > 1 { ... }
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil (core.ErrEmptyInput).
//   - ErrStartVertexNotFound  if start is out of range (core.ErrInvalidParameter).
//   - ErrOptionViolation      if invalid Option, e.g. negative MaxDepth.
//   - context errors when the context supplied via WithContext is done.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs

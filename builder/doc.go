// Package builder constructs the neighborhood graph that the Isomap pipeline
// walks: every point is linked to its k nearest neighbors by Euclidean
// distance and the relation is symmetrized by union.
//
// The package offers the following key components:
//
//   - KNearest(points, k, opts...): the undirected, weighted core.Graph.
//   - Neighbors(points, k, opts...): ranked per-point kNN lists before
//     symmetrization (diagnostics and tests).
//   - PairDistances(points, opts...): the condensed upper-triangle distance
//     buffer shared by both; each unordered pair is computed once.
//   - Options:
//     – WithWorkers(n): goroutines for the pair and ranking passes.
//
// Guarantees:
//
//   - Determinism: ties in distance are broken by ascending point index and
//     the output never depends on the worker count.
//   - Symmetry: w(i,j) == w(j,i) bit-for-bit; no self-loops, no parallel edges.
//   - Every vertex has degree ≥ k.
//   - Duplicate points produce zero-weight edges, which are legal.
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid inputs return errors wrapping the core taxonomy.
//
// Complexity: O(N²·D) for distances plus O(N²·k) for ranking; O(N²) memory
// for the condensed buffer.
package builder

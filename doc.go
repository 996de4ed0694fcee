// Package isomap is the module overview for a nonlinear dimensionality
// reduction toolkit built around Isomap: neighborhood graph, geodesic
// distances, classical multidimensional scaling.
//
// What is in the box?
//
//	core/      PointSet, the indexed weighted Graph, the error taxonomy
//	builder/   k-nearest-neighbor graph (parallel pairwise distances)
//	dijkstra/  single-source shortest paths with a reusable workspace
//	bfs/       traversal and connected components
//	geodesic/  all-pairs geodesics (Dijkstra per row or Floyd–Warshall)
//	matrix/    dense matrices, double centering, Jacobi eigensolver
//	mds/       classical MDS with rank diagnostics
//	isomap/    the pipeline entry point: Embed
//	pca/       the linear baseline
//	dataset/   CSV/JSON loading, subsampling, swiss-roll generator
//	render/    terminal scatter plots and CSV export
//	archive/   SQLite archive of past runs
//	cmd/isomap the command-line tool
//
// Quick example (see isomap.Embed):
//
//	points, _, _ := dataset.SwissRoll(800, 0, 0)
//	res, err := isomap.Embed(points, 10, 2, core.PolicyFail)
//	// res.Coords is 800×2; res.Spectrum explains how faithful it is.
//
// Data flows strictly forward, every stage validates its input, and every
// failure matches one of core.ErrInvalidParameter, core.ErrEmptyInput,
// core.ErrDisconnectedGraph or core.ErrInsufficientRank via errors.Is.
//
//	go install github.com/katalvlaran/isomap/cmd/isomap@latest
package isomap

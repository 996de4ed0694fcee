// Package isomap is the single entry point of the Isomap pipeline:
//
//	points ──builder.KNearest──▶ graph ──geodesic.Solve──▶ D ──mds.Classical──▶ coords
//
// Embed wires the three stages strictly forward, records per-stage timings
// and graph statistics, and logs one structured event per stage through an
// optional *zap.Logger (silent by default).
//
// Typical use:
//
//	res, err := isomap.Embed(points, 7, 2, core.PolicyFail,
//		isomap.WithLogger(logger), isomap.WithSignConvention())
//	if errors.Is(err, core.ErrDisconnectedGraph) {
//		// raise k
//	}
package isomap

package dataset

import "github.com/katalvlaran/isomap/core"

// Transpose returns a new point set whose row j is column j of points.
// points must be rectangular; an empty input yields nil.
func Transpose(points core.PointSet) core.PointSet {
	n, dim := points.Len(), points.Dim()
	if n == 0 || dim == 0 {
		return nil
	}
	out := make(core.PointSet, dim)
	backing := make([]float64, n*dim)
	var i, j int
	for j = 0; j < dim; j++ {
		out[j] = backing[j*n : (j+1)*n : (j+1)*n]
		for i = 0; i < n; i++ {
			out[j][i] = points[i][j]
		}
	}

	return out
}

// AutoOrient transposes points when it has more rows than columns, which
// treats the longer axis as features. It suits image stacks stored one
// image per column (pixels ≫ images); for ordinary sample-per-row tables
// with N > D do not use it.
func AutoOrient(points core.PointSet) core.PointSet {
	if points.Len() > points.Dim() {
		return Transpose(points)
	}

	return points
}

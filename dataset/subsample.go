package dataset

import (
	"fmt"

	"github.com/katalvlaran/isomap/core"
)

// DefaultSubsetSize is the subset size the CLI uses when none is configured.
const DefaultSubsetSize = 1000

const opSubsample = "dataset: Subsample"

// Subsample draws n distinct points from points, without replacement.
//
// The returned indices are ascending positions into points, and the returned
// set holds the corresponding rows in that order, so row i of the subset is
// points[indices[i]]. When n ≥ len(points) every point is kept. Rows are
// shared with the input, not copied.
//
// seed == 0 selects DefaultSeed.
func Subsample(points core.PointSet, n int, seed int64) (core.PointSet, []int, error) {
	if points.Len() == 0 {
		return nil, nil, fmt.Errorf("%s: %w", opSubsample, core.ErrEmptyInput)
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("%s: n=%d: %w", opSubsample, n, ErrBadSampleSize)
	}

	var idx []int
	if n >= points.Len() {
		idx = make([]int, points.Len())
		for i := range idx {
			idx[i] = i
		}
	} else {
		idx = sampleIndices(points.Len(), n, rngFromSeed(seed))
	}

	out := make(core.PointSet, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}

	return out, idx, nil
}

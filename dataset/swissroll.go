package dataset

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/isomap/core"
)

// Swiss-roll geometry: the angle t spans [1.5π, 4.5π] and the sheet is
// rollHeight deep along y.
const (
	rollStart  = 1.5 * math.Pi
	rollSpan   = 3 * math.Pi
	rollHeight = 21.0
)

// SwissRoll samples n points from the swiss-roll surface
//
//	x = t·cos t, y = h, z = t·sin t
//
// with t uniform on [1.5π, 4.5π] and h uniform on [0, 21]. Gaussian noise
// with standard deviation noise is added to every coordinate. The points
// are returned sorted by t, so the row index follows the unrolled
// direction, and params[i] holds the t of row i.
//
// seed == 0 selects DefaultSeed.
func SwissRoll(n int, noise float64, seed int64) (points core.PointSet, params []float64, err error) {
	if n < 1 {
		return nil, nil, fmt.Errorf("dataset: SwissRoll: n=%d: %w", n, ErrBadSampleSize)
	}
	if noise < 0 || math.IsNaN(noise) {
		return nil, nil, fmt.Errorf("dataset: SwissRoll: noise=%v: %w", noise, core.ErrInvalidParameter)
	}

	rng := rngFromSeed(seed)
	ts := make([]float64, n)
	heights := make([]float64, n)
	var i int
	for i = 0; i < n; i++ {
		ts[i] = rollStart + rollSpan*rng.Float64()
		heights[i] = rollHeight * rng.Float64()
	}
	order := make([]int, n)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return ts[order[a]] < ts[order[b]] })

	points = make(core.PointSet, n)
	params = make([]float64, n)
	var t float64
	for i, j := range order {
		t = ts[j]
		params[i] = t
		points[i] = []float64{
			t*math.Cos(t) + noise*rng.NormFloat64(),
			heights[j] + noise*rng.NormFloat64(),
			t*math.Sin(t) + noise*rng.NormFloat64(),
		}
	}

	return points, params, nil
}

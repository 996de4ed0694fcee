package dataset

import (
	"math/rand"
	"sort"
)

// DefaultSeed is used when a caller passes seed == 0.
const DefaultSeed int64 = 42

// rngFromSeed returns a deterministic *rand.Rand; seed 0 means DefaultSeed.
// The returned generator is not goroutine-safe.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// sampleIndices returns n distinct indices from [0, total) in ascending
// order, chosen by a partial Fisher–Yates shuffle.
//
// Complexity: O(total) time and space.
func sampleIndices(total, n int, rng *rand.Rand) []int {
	perm := make([]int, total)
	var i, j int
	for i = range perm {
		perm[i] = i
	}
	for i = 0; i < n; i++ {
		j = i + rng.Intn(total-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	picked := perm[:n:n]
	sort.Ints(picked)

	return picked
}

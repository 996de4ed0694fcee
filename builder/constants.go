// Package builder defines shared constants used by the neighborhood builders,
// ensuring consistent defaults and validation across constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodKNearest is the canonical name for the KNearest constructor.
	MethodKNearest = "builder: KNearest"
	// MethodNeighbors is the canonical name for the Neighbors query.
	MethodNeighbors = "builder: Neighbors"
	// MethodPairDistances is the canonical name for the PairDistances pass.
	MethodPairDistances = "builder: PairDistances"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinNeighbors is the smallest meaningful neighbor count.
// Complexity impact: KNearest inserts at most N·k edges; k >= MinNeighbors.
const MinNeighbors = 1

// MinPoints is the smallest point count that admits any valid k (k ≤ N-1).
const MinPoints = 2

// minRowsPerWorker keeps tiny inputs on a single goroutine.
const minRowsPerWorker = 64

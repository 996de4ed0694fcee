package core

import (
	"fmt"
	"math"
	"strings"
)

// PointSet is an ordered sequence of N feature vectors of a common dimension D.
// The pipeline never mutates it; callers own it for its whole lifetime.
type PointSet [][]float64

// Len returns N, the number of points.
func (p PointSet) Len() int { return len(p) }

// Dim returns D, the dimension of the first point (0 for an empty set).
func (p PointSet) Dim() int {
	if len(p) == 0 {
		return 0
	}

	return len(p[0])
}

// Validate checks the structural contract of a point set.
//
// Errors:
//   - ErrEmptyInput if N == 0.
//   - ErrInvalidParameter if D == 0, rows have different lengths,
//     or any coordinate is NaN/±Inf.
//
// Complexity: O(N·D).
func (p PointSet) Validate() error {
	if len(p) == 0 {
		return ErrEmptyInput
	}
	dim := len(p[0])
	if dim == 0 {
		return invalidf("point 0 has zero dimension")
	}

	var i, j int
	for i = range p {
		if len(p[i]) != dim {
			return invalidf("point %d has dimension %d, want %d", i, len(p[i]), dim)
		}
		for j = range p[i] {
			if math.IsNaN(p[i][j]) || math.IsInf(p[i][j], 0) {
				return invalidf("point %d coordinate %d is not finite", i, j)
			}
		}
	}

	return nil
}

// DisconnectionPolicy selects what the geodesic solver does when the
// neighborhood graph has more than one connected component.
type DisconnectionPolicy int

const (
	// PolicyFail reports *DisconnectedGraphError and produces no matrix.
	PolicyFail DisconnectionPolicy = iota

	// PolicyInfiniteFill fills unreachable pairs with +Inf and lets the
	// caller decide whether to proceed.
	PolicyInfiniteFill
)

// Policy names accepted by ParsePolicy and produced by String.
const (
	policyFailName     = "fail"
	policyInfiniteName = "infinite-fill"
)

// String returns the canonical policy name.
func (p DisconnectionPolicy) String() string {
	switch p {
	case PolicyFail:
		return policyFailName
	case PolicyInfiniteFill:
		return policyInfiniteName
	default:
		return fmt.Sprintf("DisconnectionPolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the declared policies.
func (p DisconnectionPolicy) Valid() bool {
	return p == PolicyFail || p == PolicyInfiniteFill
}

// ParsePolicy maps "fail" / "infinite-fill" (also "inf", "infinite") to a policy.
// Matching is case-insensitive; anything else is ErrInvalidParameter.
func ParsePolicy(s string) (DisconnectionPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", policyFailName:
		return PolicyFail, nil
	case policyInfiniteName, "inf", "infinite":
		return PolicyInfiniteFill, nil
	default:
		return PolicyFail, invalidf("unknown disconnection policy %q", s)
	}
}

// Edge is one undirected, weighted connection between two vertices.
// Inside an adjacency list From is always the owning vertex.
type Edge struct {
	From   int     // owning / source vertex index
	To     int     // neighbor vertex index
	Weight float64 // Euclidean distance, ≥ 0
}

// Graph is the undirected weighted neighborhood graph over N vertices.
type Graph struct {
	n     int      // vertex count
	size  int      // undirected edge count
	adj   [][]Edge // adj[u] sorted by To ascending; mirrored for undirected edges
	total float64  // sum of undirected edge weights
}

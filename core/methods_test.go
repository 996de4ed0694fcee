package core_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/isomap/core"
)

// TestNewGraph_Errors verifies the vertex-count contract.
func TestNewGraph_Errors(t *testing.T) {
	_, err := core.NewGraph(0)
	assert.ErrorIs(t, err, core.ErrEmptyInput, "n=0 must be ErrEmptyInput")

	_, err = core.NewGraph(-3)
	assert.ErrorIs(t, err, core.ErrInvalidParameter, "negative n must be ErrInvalidParameter")

	g, err := core.NewGraph(4)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 0, g.Size())
}

// TestAddEdge_MirroredAndSorted checks that insertion keeps both lists sorted
// and that the undirected edge is visible from both endpoints.
func TestAddEdge_MirroredAndSorted(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)

	require.NoError(t, g.AddEdge(0, 3, 3.0))
	require.NoError(t, g.AddEdge(0, 1, 1.0))
	require.NoError(t, g.AddEdge(4, 0, 4.0))
	require.NoError(t, g.AddEdge(2, 0, 2.0))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	var got []int
	for _, e := range nbrs {
		assert.Equal(t, 0, e.From)
		got = append(got, e.To)
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got, "adjacency must be sorted by neighbor index")

	w, ok := g.Weight(3, 0)
	assert.True(t, ok)
	assert.Equal(t, 3.0, w)
	assert.True(t, g.HasEdge(4, 0))
	assert.False(t, g.HasEdge(1, 2))
	assert.Equal(t, 4, g.Size())
	assert.Equal(t, 4, g.Degree(0))
	assert.Equal(t, 1, g.Degree(3))
	assert.InDelta(t, 10.0, g.TotalWeight(), 1e-12)
}

// TestAddEdge_Idempotent ensures that re-adding the same pair with the same
// weight is a no-op and a conflicting weight is rejected.
func TestAddEdge_Idempotent(t *testing.T) {
	g, _ := core.NewGraph(3)
	require.NoError(t, g.AddEdge(0, 1, 0.5))
	require.NoError(t, g.AddEdge(1, 0, 0.5), "same pair from the other side is a no-op")
	assert.Equal(t, 1, g.Size())

	err := g.AddEdge(0, 1, 0.75)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.Equal(t, 1, g.Size(), "failed insertion must not change the graph")
}

// TestAddEdge_Rejections covers loops, bad indices and bad weights.
func TestAddEdge_Rejections(t *testing.T) {
	g, _ := core.NewGraph(3)

	cases := []struct {
		name string
		u, v int
		w    float64
	}{
		{"self-loop", 1, 1, 1},
		{"u out of range", -1, 1, 1},
		{"v out of range", 0, 3, 1},
		{"negative weight", 0, 1, -0.1},
		{"NaN weight", 0, 1, math.NaN()},
		{"Inf weight", 0, 1, math.Inf(1)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := g.AddEdge(tc.u, tc.v, tc.w)
			assert.True(t, errors.Is(err, core.ErrInvalidParameter), "got %v", err)
		})
	}
	assert.Equal(t, 0, g.Size())
}

// TestAddEdge_ZeroWeight keeps duplicate points connected at zero cost.
func TestAddEdge_ZeroWeight(t *testing.T) {
	g, _ := core.NewGraph(2)
	require.NoError(t, g.AddEdge(0, 1, 0))
	w, ok := g.Weight(0, 1)
	assert.True(t, ok, "a zero-weight edge is still an edge")
	assert.Equal(t, 0.0, w)
}

// TestEdges_CanonicalOrder lists every edge once with From < To.
func TestEdges_CanonicalOrder(t *testing.T) {
	g, _ := core.NewGraph(4)
	require.NoError(t, g.AddEdge(3, 2, 1))
	require.NoError(t, g.AddEdge(1, 0, 2))
	require.NoError(t, g.AddEdge(2, 0, 3))

	assert.Equal(t, []core.Edge{
		{From: 0, To: 1, Weight: 2},
		{From: 0, To: 2, Weight: 3},
		{From: 2, To: 3, Weight: 1},
	}, g.Edges())
}

// TestNeighbors_OutOfRange surfaces ErrInvalidParameter.
func TestNeighbors_OutOfRange(t *testing.T) {
	g, _ := core.NewGraph(2)
	_, err := g.Neighbors(2)
	assert.ErrorIs(t, err, core.ErrInvalidParameter)
	assert.Equal(t, 0, g.Degree(7))
	_, ok := g.Weight(0, 9)
	assert.False(t, ok)
}

package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betweenness/core"
)

// TestNewGraph_Validation checks that out-of-range neighbours are rejected.
func TestNewGraph_Validation(t *testing.T) {
	cases := []struct {
		name string
		adj  [][]int
	}{
		{"negative", [][]int{{-1}}},
		{"too large", [][]int{{1}, {2}}},
		{"far off", [][]int{{0, 1, 7}, {0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := core.NewGraph(tc.adj)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, core.ErrInvalidGraph)
		})
	}
}

// TestNewGraph_Empty covers N == 0, both nil and empty input.
func TestNewGraph_Empty(t *testing.T) {
	for _, adj := range [][][]int{nil, {}} {
		g, err := core.NewGraph(adj)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Order())
		assert.Equal(t, 0, g.Size())
		assert.Nil(t, g.Neighbors(0))
	}
	var zero core.Graph
	assert.Equal(t, 0, zero.Order())
}

// TestNewGraph_CopiesInput ensures later caller mutations are not observed.
func TestNewGraph_CopiesInput(t *testing.T) {
	adj := [][]int{{1}, {0}}
	g, err := core.NewGraph(adj)
	require.NoError(t, err)

	adj[0][0] = 0
	assert.Equal(t, []int{1}, g.Neighbors(0))

	nbrs := g.Neighbors(1)
	assert.Equal(t, len(nbrs), cap(nbrs), "neighbour view must be capacity-clipped")
}

// TestFromEdges mirrors edges and validates endpoints.
func TestFromEdges(t *testing.T) {
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {0, 2}, {1, 3}, {2}}, g.AdjacencyList())
	assert.Equal(t, 3, g.Size())
	assert.Equal(t, 6, g.HalfEdges())

	_, err = core.FromEdges(2, [][2]int{{0, 2}})
	assert.True(t, errors.Is(err, core.ErrInvalidGraph))

	_, err = core.FromEdges(-1, nil)
	assert.ErrorIs(t, err, core.ErrInvalidGraph)
}

// TestMustFromEdges_Panics surfaces fixture mistakes loudly.
func TestMustFromEdges_Panics(t *testing.T) {
	assert.Panics(t, func() { core.MustFromEdges(1, [][2]int{{0, 5}}) })
	assert.NotPanics(t, func() { core.MustFromEdges(2, [][2]int{{0, 1}}) })
}

// TestDegreeAndHasVertex covers the O(1) accessors.
func TestDegreeAndHasVertex(t *testing.T) {
	g := core.MustFromEdges(3, [][2]int{{0, 1}, {0, 2}})
	assert.Equal(t, 2, g.Degree(0))
	assert.Equal(t, 1, g.Degree(2))
	assert.Equal(t, 0, g.Degree(3))
	assert.True(t, g.HasVertex(2))
	assert.False(t, g.HasVertex(-1))
	assert.False(t, g.HasVertex(3))
}

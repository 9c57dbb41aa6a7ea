package bfs_test

import (
	"context"
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
)

// pathGraph returns 0–1–…–(n-1).
func pathGraph(n int) *core.Graph {
	edges := make([][2]int, 0, n)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}

	return core.MustFromEdges(n, edges)
}

// TestShortestPaths_Errors verifies that invalid inputs and options are rejected.
func TestShortestPaths_Errors(t *testing.T) {
	// nil graph
	if _, err := bfs.ShortestPaths(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	// source out of range, including the empty graph
	empty := core.MustFromEdges(0, nil)
	if _, err := bfs.ShortestPaths(empty, 0); !errors.Is(err, bfs.ErrSourceOutOfRange) {
		t.Errorf("empty graph: want ErrSourceOutOfRange, got %v", err)
	}
	g := pathGraph(3)
	for _, s := range []int{-1, 3} {
		if _, err := bfs.ShortestPaths(g, s); !errors.Is(err, bfs.ErrSourceOutOfRange) {
			t.Errorf("source %d: want ErrSourceOutOfRange, got %v", s, err)
		}
	}
	// negative MaxDepth is a violation
	if _, err := bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
}

// TestShortestPaths_SingleVertex covers the trivial one-vertex graph.
func TestShortestPaths_SingleVertex(t *testing.T) {
	g := core.MustFromEdges(1, nil)
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, res.Dist)
	assert.Equal(t, []float64{1}, res.Sigma)
	assert.Empty(t, res.Order)
	assert.Empty(t, res.Pred[0])
	assert.Equal(t, 1, res.Reachable())
	assert.Equal(t, 0, res.Eccentricity())
}

// TestShortestPaths_Path checks distances and order from the middle of a path.
func TestShortestPaths_Path(t *testing.T) {
	res, err := bfs.ShortestPaths(pathGraph(5), 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 1, 2}, res.Dist)
	assert.Equal(t, []int{1, 3, 0, 4}, res.Order)
	assert.Equal(t, []float64{1, 1, 1, 1, 1}, res.Sigma)
	assert.Equal(t, [][]int{{1}, {2}, nil, {2}, {3}}, res.Pred)
}

// TestShortestPaths_Diamond counts two equal-length routes.
func TestShortestPaths_Diamond(t *testing.T) {
	// 0–1, 0–2, 1–3, 2–3
	g := core.MustFromEdges(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, res.Sigma[3])
	assert.Equal(t, []int{1, 2}, res.Pred[3])
	assert.Equal(t, 2, res.Dist[3])
}

// TestShortestPaths_TwoRoutesOfDifferentLength mirrors a lattice with an
// unbalanced fork: 10 is reachable through 8 (two ways) and through 9.
func TestShortestPaths_TwoRoutesOfDifferentLength(t *testing.T) {
	g := core.MustFromEdges(11, [][2]int{
		{0, 1}, {1, 2}, {2, 3}, {2, 4}, {3, 5}, {4, 6},
		{4, 7}, {6, 8}, {5, 9}, {7, 8}, {8, 10}, {9, 10},
	})
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 8, 10}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 3, 3, 4, 4, 4, 5, 5, 6}, res.Dist)
	assert.Equal(t, []float64{1, 1, 1, 1, 1, 1, 1, 1, 2, 1, 3}, res.Sigma)
	assert.Equal(t, []int{6, 7}, res.Pred[8])
	assert.Equal(t, []int{9, 8}, res.Pred[10])
	assert.Equal(t, 6, res.Eccentricity())

	path, err := res.PathTo(10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 5, 9, 10}, path)
}

// TestShortestPaths_Disconnected ensures unreached vertices keep the sentinel.
func TestShortestPaths_Disconnected(t *testing.T) {
	g := core.MustFromEdges(4, [][2]int{{0, 1}, {2, 3}})
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, bfs.Unreached, bfs.Unreached}, res.Dist)
	assert.Equal(t, []float64{1, 1, 0, 0}, res.Sigma)
	assert.Equal(t, []int{1}, res.Order)
	assert.False(t, res.Reached(2))
	assert.False(t, res.Reached(9))
	assert.Equal(t, 2, res.Reachable())

	_, err = res.PathTo(3)
	if err == nil || !strings.Contains(err.Error(), "no path") {
		t.Errorf("PathTo unreachable: expected error, got %v", err)
	}
}

// TestShortestPaths_MultiEdgeInflatesSigma documents the accepted behaviour
// for parallel edges: duplicate predecessors and doubled counts.
func TestShortestPaths_MultiEdgeInflatesSigma(t *testing.T) {
	g, err := core.NewGraph([][]int{{1, 1}, {0, 0, 2}, {1}})
	require.NoError(t, err)
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, res.Pred[1])
	assert.Equal(t, []float64{1, 2, 2}, res.Sigma)
}

// TestShortestPaths_SelfLoopIgnored ensures a loop never creates a predecessor.
func TestShortestPaths_SelfLoopIgnored(t *testing.T) {
	g, err := core.NewGraph([][]int{{0, 1}, {1, 0}})
	require.NoError(t, err)
	res, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, res.Order)
	assert.Empty(t, res.Pred[0])
	assert.Equal(t, []int{0}, res.Pred[1])
}

// TestShortestPaths_MaxDepth verifies WithMaxDepth behaviour.
func TestShortestPaths_MaxDepth(t *testing.T) {
	g := pathGraph(5)
	res, err := bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, res.Order)
	assert.Equal(t, bfs.Unreached, res.Dist[3])

	res, err = bfs.ShortestPaths(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, res.Order)
}

// TestShortestPaths_OnDiscover asserts the hook fires once per reached vertex.
func TestShortestPaths_OnDiscover(t *testing.T) {
	var seen [][2]int
	_, err := bfs.ShortestPaths(pathGraph(4), 0,
		bfs.WithOnDiscover(func(v, d int) { seen = append(seen, [2]int{v, d}) }),
	)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 1}, {2, 2}, {3, 3}}, seen)
}

// TestShortestPaths_Cancellation verifies that a cancelled context halts the search.
func TestShortestPaths_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediate
	if _, err := bfs.ShortestPaths(pathGraph(100), 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Cancellation: want context.Canceled, got %v", err)
	}
}

// TestShortestPaths_Invariants checks the DAG invariants on seeded random graphs.
func TestShortestPaths_Invariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for trial := 0; trial < 20; trial++ {
		n := 5 + rnd.Intn(30)
		var edges [][2]int
		for k := 0; k < 2*n; k++ {
			u, v := rnd.Intn(n), rnd.Intn(n)
			if u != v {
				edges = append(edges, [2]int{u, v})
			}
		}
		g := core.MustFromEdges(n, edges)
		s := rnd.Intn(n)
		res, err := bfs.ShortestPaths(g, s)
		require.NoError(t, err)

		assert.Equal(t, 0, res.Dist[s])
		assert.Equal(t, 1.0, res.Sigma[s])
		assert.Empty(t, res.Pred[s])
		assert.NotContains(t, res.Order, s)

		prev := 0
		for _, v := range res.Order {
			assert.GreaterOrEqual(t, res.Dist[v], prev, "order must be non-decreasing")
			prev = res.Dist[v]
		}
		for v := 0; v < n; v++ {
			if v == s {
				continue
			}
			if !res.Reached(v) {
				assert.Zero(t, res.Sigma[v])
				assert.Empty(t, res.Pred[v])
				continue
			}
			require.NotEmpty(t, res.Pred[v], "reached vertex %d without predecessor", v)
			sum := 0.0
			for _, p := range res.Pred[v] {
				assert.Equal(t, res.Dist[v]-1, res.Dist[p])
				sum += res.Sigma[p]
			}
			assert.Equal(t, sum, res.Sigma[v])
		}
	}
}

// TestShortestPaths_Deterministic ensures repeated runs agree exactly.
func TestShortestPaths_Deterministic(t *testing.T) {
	g := core.MustFromEdges(6, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}, {3, 5}, {4, 5}})
	a, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	b, err := bfs.ShortestPaths(g, 0)
	require.NoError(t, err)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("runs differ:\n%+v\n%+v", a, b)
	}
}

// TestShortestPaths_ConcurrentSafety ensures concurrent runs on one graph do not interfere.
func TestShortestPaths_ConcurrentSafety(t *testing.T) {
	g := pathGraph(50)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func(s int) { _, err := bfs.ShortestPaths(g, s); errs <- err }(i)
	}
	for i := 0; i < 4; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Concurrent run #%d: unexpected error %v", i, err)
		}
	}
}

package centrality

import (
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// Degree returns the degree of every vertex as a float64 feature column.
// Parallel neighbours count with multiplicity.
func Degree(g *core.Graph) []float64 {
	out := make([]float64, g.Order())
	for v := range out {
		out[v] = float64(g.Degree(v))
	}

	return out
}

// AverageNeighborDegree returns, per vertex, the mean degree of its listed
// neighbours; 0 for isolated vertices.
func AverageNeighborDegree(g *core.Graph) []float64 {
	out := make([]float64, g.Order())
	for v := range out {
		nbrs := g.Neighbors(v)
		if len(nbrs) == 0 {
			continue
		}
		sum := 0
		for _, u := range nbrs {
			sum += g.Degree(u)
		}
		out[v] = float64(sum) / float64(len(nbrs))
	}

	return out
}

// Select picks scores[v] for each v in vertices, preserving request order.
// An index outside [0, len(scores)) returns an error wrapping core.ErrVertexNotFound.
func Select(scores []float64, vertices []int) ([]float64, error) {
	out := make([]float64, len(vertices))
	for i, v := range vertices {
		if v < 0 || v >= len(scores) {
			return nil, fmt.Errorf("centrality: Select #%d: %w: %d", i, core.ErrVertexNotFound, v)
		}
		out[i] = scores[v]
	}

	return out, nil
}

// ArgMax returns the lowest index holding the largest score, and that score.
// Returns (-1, 0) for an empty slice.
func ArgMax(scores []float64) (int, float64) {
	if len(scores) == 0 {
		return -1, 0
	}
	best := 0
	for v, x := range scores[1:] {
		if x > scores[best] {
			best = v + 1
		}
	}

	return best, scores[best]
}

// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Vertex 0 is the hub; leaves are 1..n-1.
//   - Emits spokes (0, i) in increasing leaf order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub 0 and n-1 leaves.
func Star(n int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if n < minStarNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}

		return n, edges, nil
	}
}

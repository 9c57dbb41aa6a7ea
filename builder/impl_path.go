// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Emits edges (i-1, i) for i=1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that builds the simple path P_n: 0–1–…–(n-1).
func Path(n int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if n < minPathNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n-1)
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{i - 1, i})
		}

		return n, edges, nil
	}
}

// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices): smaller rings would need loops or parallel edges.
//   - Emits (i, i+1) for i=0..n-2, then the closing edge (n-1, 0).
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if n < minCycleNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, n)
		for i := 0; i < n-1; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		edges = append(edges, [2]int{n - 1, 0})

		return n, edges, nil
	}
}

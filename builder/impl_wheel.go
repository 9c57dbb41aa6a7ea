// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices): hub 0 plus a rim cycle on 1..n-1.
//   - Emits rim edges (i, i+1) for i=1..n-2 and (n-1, 1), then spokes (0, i).
//
// Complexity: O(n).

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n = C_{n-1} + hub.
func Wheel(n int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if n < minWheelNodes {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, 2*(n-1))
		for i := 1; i < n-1; i++ {
			edges = append(edges, [2]int{i, i + 1})
		}
		edges = append(edges, [2]int{n - 1, 1})
		for i := 1; i < n; i++ {
			edges = append(edges, [2]int{0, i})
		}

		return n, edges, nil
	}
}

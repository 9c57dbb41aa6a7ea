// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_isolated.go - implementation of Isolated(n) constructor.

package builder

import "fmt"

const methodIsolated = "Isolated"

// Isolated returns a Constructor that adds n vertices and no edges.
// n == 0 is allowed and contributes nothing.
func Isolated(n int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if n < 0 {
			return 0, nil, fmt.Errorf("%s: n=%d < min=0: %w", methodIsolated, n, ErrTooFewVertices)
		}

		return n, nil, nil
	}
}

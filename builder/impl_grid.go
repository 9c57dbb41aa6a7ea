// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex r*cols+c sits at row r, column c (row-major).
//   - For each cell in row-major order emits its right then down edge.
//
// Complexity: O(rows·cols).

package builder

import "fmt"

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid returns a Constructor that builds a rows×cols 4-neighbourhood lattice.
func Grid(rows, cols int) Constructor {
	return func(_ builderConfig) (int, [][2]int, error) {
		if rows < minGridSide || cols < minGridSide {
			return 0, nil, fmt.Errorf("%s: %dx%d below min=%d: %w", methodGrid, rows, cols, minGridSide, ErrTooFewVertices)
		}
		edges := make([][2]int, 0, 2*rows*cols)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				v := r*cols + c
				if c+1 < cols {
					edges = append(edges, [2]int{v, v + 1})
				}
				if r+1 < rows {
					edges = append(edges, [2]int{v, v + cols})
				}
			}
		}

		return rows * cols, edges, nil
	}
}

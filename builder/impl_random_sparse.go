// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Model: Erdős–Rényi G(n, p). Each unordered pair {i,j}, i<j, is included
// independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Determinism:
//   - Trial order is fixed (i asc, then j asc with j > i), so a fixed seed
//     always yields the same edge set.
//
// Complexity: O(n²) Bernoulli trials.

package builder

import "fmt"

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples G(n, p).
func RandomSparse(n int, p float64) Constructor {
	return func(cfg builderConfig) (int, [][2]int, error) {
		if n < minRandomSparseVertices {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return 0, nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return 0, nil, fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		var edges [][2]int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
				case p == probMax:
					edges = append(edges, [2]int{i, j})
				case cfg.rng.Float64() < p:
					edges = append(edges, [2]int{i, j})
				}
			}
		}

		return n, edges, nil
	}
}

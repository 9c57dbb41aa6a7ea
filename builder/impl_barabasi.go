// SPDX-License-Identifier: MIT
// Package: betweenness/builder
//
// impl_barabasi.go - implementation of BarabasiAlbert(n, m) constructor.
//
// Model: preferential attachment. Vertex 0 starts alone; every later vertex
// v attaches to min(m, v) distinct earlier vertices, each chosen with
// probability proportional to (degree + 1). The +1 keeps the isolated seed
// vertex selectable, matching the common "power=1, zero_appeal=1" variant.
//
// Contract:
//   - n ≥ 1 and m ≥ 1 (else ErrTooFewVertices).
//   - cfg.rng must be non-nil (else ErrNeedRandSource).
//   - Result is connected and simple: no loops, no parallel edges.
//
// Determinism:
//   - Targets are drawn from a weighted pool in a fixed order; a fixed seed
//     reproduces the same graph.
//
// Complexity: O(n·m) expected draws, O(n·m) memory for the pool.

package builder

import (
	"fmt"

	"github.com/rhartert/sparsesets"
)

const (
	methodBarabasiAlbert = "BarabasiAlbert"
	minBarabasiVertices  = 1
	minBarabasiEdges     = 1
)

// BarabasiAlbert returns a Constructor that grows an n-vertex preferential
// attachment graph adding m edges per new vertex.
func BarabasiAlbert(n, m int) Constructor {
	return func(cfg builderConfig) (int, [][2]int, error) {
		if n < minBarabasiVertices {
			return 0, nil, fmt.Errorf("%s: n=%d < min=%d: %w",
				methodBarabasiAlbert, n, minBarabasiVertices, ErrTooFewVertices)
		}
		if m < minBarabasiEdges {
			return 0, nil, fmt.Errorf("%s: m=%d < min=%d: %w",
				methodBarabasiAlbert, m, minBarabasiEdges, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return 0, nil, fmt.Errorf("%s: rng is required: %w", methodBarabasiAlbert, ErrNeedRandSource)
		}

		// pool holds vertex v exactly degree(v)+1 times.
		pool := make([]int, 0, n*(2*m+1))
		pool = append(pool, 0)
		picked := sparsesets.New(n)
		edges := make([][2]int, 0, n*m)

		for v := 1; v < n; v++ {
			k := min(m, v)
			picked.Clear()
			targets := make([]int, 0, k)
			for len(targets) < k {
				u := pool[cfg.rng.Intn(len(pool))]
				if picked.Contains(u) {
					continue
				}
				picked.Insert(u)
				targets = append(targets, u)
			}
			pool = append(pool, v)
			for _, u := range targets {
				edges = append(edges, [2]int{u, v})
				pool = append(pool, u, v)
			}
		}

		return n, edges, nil
	}
}

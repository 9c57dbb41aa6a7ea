// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Structural predicates and simplification.
// Determinism:
//   - Simplify keeps the first occurrence of each neighbour, so relative order is stable.

package core

import "github.com/rhartert/sparsesets"

// HasSelfLoops reports whether any vertex lists itself as a neighbour.
// Complexity: O(V + E).
func (g *Graph) HasSelfLoops() bool {
	for v := 0; v < g.Order(); v++ {
		for _, u := range g.adj[v] {
			if u == v {
				return true
			}
		}
	}

	return false
}

// HasMultiEdges reports whether any neighbour list repeats an entry.
// Complexity: O(V + E); a single sparse set is reused and cleared in O(1).
func (g *Graph) HasMultiEdges() bool {
	n := g.Order()
	if n == 0 {
		return false
	}
	seen := sparsesets.New(n)
	for v := 0; v < n; v++ {
		seen.Clear()
		for _, u := range g.adj[v] {
			if seen.Contains(u) {
				return true
			}
			seen.Insert(u)
		}
	}

	return false
}

// IsSymmetric reports whether u appears in adj[v] exactly as many times as
// v appears in adj[u], for every pair. Undirected inputs must be symmetric;
// the centrality halving step assumes it.
//
// Complexity: O(V + E) expected.
func (g *Graph) IsSymmetric() bool {
	count := make(map[[2]int]int, g.HalfEdges())
	for v := 0; v < g.Order(); v++ {
		for _, u := range g.adj[v] {
			if u == v {
				continue
			}
			count[[2]int{v, u}]++
		}
	}
	for k, c := range count {
		if count[[2]int{k[1], k[0]}] != c {
			return false
		}
	}

	return true
}

// Simplify returns a new Graph without self-loops and without repeated
// neighbours. The receiver is left untouched.
//
// Complexity: O(V + E).
func (g *Graph) Simplify() *Graph {
	n := g.Order()
	out := &Graph{adj: make([][]int, n)}
	if n == 0 {
		return out
	}
	seen := sparsesets.New(n)
	for v := 0; v < n; v++ {
		seen.Clear()
		nbrs := make([]int, 0, len(g.adj[v]))
		for _, u := range g.adj[v] {
			if u == v || seen.Contains(u) {
				continue
			}
			seen.Insert(u)
			nbrs = append(nbrs, u)
		}
		out.adj[v] = nbrs[:len(nbrs):len(nbrs)]
		out.half += len(nbrs)
	}

	return out
}

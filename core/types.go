// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph type, sentinel errors and constructors.
//
// Errors:
//
//	ErrInvalidGraph    - a neighbour index lies outside [0, N), or an edge endpoint is negative.
//	ErrVertexNotFound  - a query referenced a vertex outside [0, N).

package core

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidGraph indicates a malformed adjacency structure.
	ErrInvalidGraph = errors.New("core: invalid graph")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is an immutable adjacency structure over vertices 0..N-1.
//
// The zero value is an empty graph (N == 0). A Graph never changes after
// construction, so it may be shared between goroutines without locking.
type Graph struct {
	// adj[v] lists the neighbours of v in caller-supplied order.
	adj [][]int

	// half counts directed half-edges, i.e. Σ len(adj[v]).
	half int
}

// NewGraph validates adj and returns a Graph holding a private copy of it.
//
// Every neighbour index must lie in [0, len(adj)); otherwise an error wrapping
// ErrInvalidGraph is returned and no Graph is built. Self-loops and repeated
// neighbours are accepted as-is (see Simplify).
//
// Complexity: O(V + E) time and space.
func NewGraph(adj [][]int) (*Graph, error) {
	n := len(adj)
	g := &Graph{adj: make([][]int, n)}
	for v, nbrs := range adj {
		for i, u := range nbrs {
			if u < 0 || u >= n {
				return nil, fmt.Errorf("%w: vertex %d neighbour #%d = %d outside [0,%d)", ErrInvalidGraph, v, i, u, n)
			}
		}
		// full-slice expression pins capacity so callers of Neighbors cannot append into our storage
		cp := make([]int, len(nbrs))
		copy(cp, nbrs)
		g.adj[v] = cp[:len(cp):len(cp)]
		g.half += len(nbrs)
	}

	return g, nil
}

// FromEdges builds an undirected Graph on n vertices, mirroring each edge
// into both endpoint lists in the order edges are given.
// Returns ErrInvalidGraph for a negative n or any endpoint outside [0, n).
func FromEdges(n int, edges [][2]int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative vertex count %d", ErrInvalidGraph, n)
	}
	adj := make([][]int, n)
	for i, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return nil, fmt.Errorf("%w: edge #%d (%d,%d) outside [0,%d)", ErrInvalidGraph, i, u, v, n)
		}
		adj[u] = append(adj[u], v)
		if u != v {
			adj[v] = append(adj[v], u)
		}
	}

	for v := range adj {
		adj[v] = slices.Clip(adj[v])
	}

	return &Graph{adj: adj, half: sumLens(adj)}, nil
}

// MustFromEdges is FromEdges that panics on error. Intended for fixtures.
func MustFromEdges(n int, edges [][2]int) *Graph {
	g, err := FromEdges(n, edges)
	if err != nil {
		panic(err)
	}

	return g
}

func sumLens(adj [][]int) int {
	total := 0
	for _, nbrs := range adj {
		total += len(nbrs)
	}

	return total
}

// Package core provides the immutable, index-addressed Graph that every
// algorithm in this module consumes.
//
// What
//
//   - Vertices are dense integers 0..N-1; N is fixed at construction.
//   - Each vertex owns an ordered neighbour list. Undirected edges are stored
//     twice, once in each endpoint's list.
//   - Self-loops and parallel edges are tolerated. They inflate shortest-path
//     counts downstream; call Simplify to drop them.
//
// Why
//
//   - Centrality runs one traversal per vertex; integer indexing keeps every
//     per-source vector a flat slice instead of a map.
//   - Immutability lets many traversals share one Graph without locks.
//
// Construction
//
//	g, err := core.NewGraph([][]int{{1}, {0, 2}, {1}}) // path 0–1–2
//	g, err := core.FromEdges(3, [][2]int{{0, 1}, {1, 2}})
//
// NewGraph copies its input; later changes to the caller's slices are not
// observed. Out-of-range neighbour indices fail fast with ErrInvalidGraph.
//
// Complexity (V = Order(), E = HalfEdges())
//
//   - NewGraph, FromEdges, Simplify, IsSymmetric, AdjacencyList: O(V + E)
//   - Order, Neighbors, Degree, HalfEdges: O(1)
//
// Concurrency
//
//	A *Graph is read-only after construction and safe for concurrent use.
package core

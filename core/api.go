// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only accessors over an immutable Graph.
// Policy:
//   - No algorithms here beyond O(1)/O(V+E) bookkeeping.
//   - Every accessor is safe for concurrent use (the Graph never mutates).

package core

// Order returns the number of vertices N.
// Complexity: O(1).
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}

	return len(g.adj)
}

// HasVertex reports whether v is a valid vertex index.
func (g *Graph) HasVertex(v int) bool {
	return v >= 0 && v < g.Order()
}

// Neighbors returns the neighbour list of v, in construction order.
//
// The returned slice aliases internal storage and MUST NOT be modified;
// its capacity is clipped so append always reallocates.
// Returns nil for an out-of-range v.
//
// Complexity: O(1).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}

	return g.adj[v]
}

// Degree returns len(Neighbors(v)). Self-loops count once, parallel
// neighbours count with multiplicity. Returns 0 for an out-of-range v.
func (g *Graph) Degree(v int) int {
	return len(g.Neighbors(v))
}

// HalfEdges returns Σ deg(v): each undirected edge contributes two.
// Complexity: O(1).
func (g *Graph) HalfEdges() int {
	if g == nil {
		return 0
	}

	return g.half
}

// Size returns the number of undirected edges, counting a self-loop once.
//
// Complexity: O(V + E).
func (g *Graph) Size() int {
	loops := 0
	for v := 0; v < g.Order(); v++ {
		for _, u := range g.adj[v] {
			if u == v {
				loops++
			}
		}
	}

	return (g.HalfEdges()-loops)/2 + loops
}

// AdjacencyList returns a deep copy of the adjacency structure.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	n := g.Order()
	out := make([][]int, n)
	for v := 0; v < n; v++ {
		out[v] = append([]int(nil), g.adj[v]...)
	}

	return out
}

// Stats is a snapshot of structural properties, handy for logging.
type Stats struct {
	Vertices   int
	Edges      int
	HalfEdges  int
	SelfLoops  bool
	MultiEdges bool
	Symmetric  bool
}

// Stats computes a Stats snapshot.
// Complexity: O(V + E).
func (g *Graph) Stats() Stats {
	return Stats{
		Vertices:   g.Order(),
		Edges:      g.Size(),
		HalfEdges:  g.HalfEdges(),
		SelfLoops:  g.HasSelfLoops(),
		MultiEdges: g.HasMultiEdges(),
		Symmetric:  g.IsSymmetric(),
	}
}

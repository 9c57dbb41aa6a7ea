// Package core_test provides benchmarks for core.Graph construction and queries.
package core_test

import (
	"testing"

	"github.com/katalvlaran/betweenness/core"
)

// ringEdges returns the edge list of an n-cycle with a chord every 7 vertices.
func ringEdges(n int) [][2]int {
	edges := make([][2]int, 0, n+n/7)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
		if i%7 == 0 {
			edges = append(edges, [2]int{i, (i + n/2) % n})
		}
	}
	return edges
}

// BenchmarkFromEdges measures symmetric adjacency assembly.
func BenchmarkFromEdges(b *testing.B) {
	edges := ringEdges(10_000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.FromEdges(10_000, edges); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkNewGraph measures validation plus deep copy.
func BenchmarkNewGraph(b *testing.B) {
	adj := core.MustFromEdges(10_000, ringEdges(10_000)).AdjacencyList()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := core.NewGraph(adj); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSimplify measures loop and duplicate removal on a multigraph.
func BenchmarkSimplify(b *testing.B) {
	edges := ringEdges(10_000)
	edges = append(edges, edges...)
	g := core.MustFromEdges(10_000, edges)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Simplify()
	}
}

// BenchmarkStats measures the full structural summary.
func BenchmarkStats(b *testing.B) {
	g := core.MustFromEdges(10_000, ringEdges(10_000))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Stats()
	}
}

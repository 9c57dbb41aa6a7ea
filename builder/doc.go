// Package builder provides deterministic topology constructors that assemble
// fixtures and synthetic workloads for betweenness centrality.
//
// Every constructor is a Constructor: a closure over its size parameters that
// returns a local vertex count and an undirected edge list. BuildGraph runs
// constructors in order and lays their outputs side by side as a disjoint
// union, so several components can be combined in a single call:
//
//	g, err := builder.BuildGraph(nil, builder.Complete(3), builder.Complete(3))
//	// two triangles: {0,1,2} and {3,4,5}
//
// Available constructors:
//
//   - Path(n), Star(n), Cycle(n), Complete(n), Wheel(n), Grid(rows, cols):
//     classic closed-form topologies whose centrality is known analytically.
//   - Isolated(n): n vertices with no edges.
//   - RandomSparse(n, p): Erdős–Rényi G(n, p); needs WithSeed or WithRand when 0<p<1.
//   - BarabasiAlbert(n, m): preferential attachment; always needs an RNG.
//
// Guarantees:
//
//   - Parameters are validated before any output is produced; failures wrap
//     ErrTooFewVertices, ErrInvalidProbability or ErrNeedRandSource.
//   - Edge emission order is documented per constructor and stable, so a
//     fixed seed reproduces the same graph.
//   - Constructors never panic; WithRand(nil) does.
package builder

// Package betweenness measures how much every vertex of an unweighted,
// undirected graph sits on the shortest paths between other vertices.
//
// What is it?
//
//	A small, dependency-light toolkit around Brandes' algorithm:
//		• core        – immutable dense adjacency Graph, validation, simplification
//		• bfs         – single-source shortest paths with path counts and predecessors
//		• centrality  – betweenness for all vertices, sequential or fanned out over workers
//		• builder     – path, star, cycle, complete, wheel, grid, G(n,p), Barabási–Albert
//		• edgelist    – named edge lists (TSV/CSV) with isoform tag stripping
//		• converters  – to and from gonum graphs
//
// Quick start:
//
//	g := builder.MustBuild(builder.Path(5))
//	scores, err := centrality.Betweenness(g)
//	// scores == [0 3 4 3 0]
//
// The command in cmd/betweenness wraps the same pipeline: load or generate a
// graph, score it and print betweenness next to degree features.
//
// Complexity: O(V·(V+E)) time and O(V+E) memory per worker.
package betweenness

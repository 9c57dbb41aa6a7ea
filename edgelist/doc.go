// Package edgelist loads undirected graphs from delimited text, one edge per
// line, such as protein-interaction tables:
//
//	GRMZM2G001_P01	GRMZM2G002_P01
//	GRMZM2G002_P01	GRMZM2G003_P02
//
// Vertex names are mapped to dense indices in order of first appearance and
// returned alongside the graph, so names[v] labels vertex v. Repeated edges,
// in either orientation, are stored once. Lines starting with '#' and blank
// lines are ignored; columns beyond the second are ignored.
//
// Options:
//
//   - WithSeparator(r): field delimiter, default '\t'.
//   - WithNameTransform(fn): rewrite names before mapping, e.g. to merge
//     isoforms. StripSuffix("_") keeps everything before the first "_".
package edgelist

// Package converters provides two-way adapters between core.Graph and
// gonum's graph interfaces, so graphs built or loaded elsewhere can be
// scored here and results cross-checked against gonum's algorithms.
//
// Vertex index v of a core.Graph maps to gonum node ID int64(v). Going the
// other way, gonum nodes are sorted by ID and renumbered densely; the returned
// ID slice records the original ID of every index.
package converters

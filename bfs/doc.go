// Package bfs provides single-source shortest-path accumulation over an
// unweighted core.Graph: the forward phase of Brandes' betweenness algorithm.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a source.
//   - Returns a Result containing, per vertex:
//   - Dist:  hop count from the source, or Unreached (-1)
//   - Sigma: number of distinct shortest paths from the source
//   - Pred:  every neighbour lying one hop closer on some shortest path
//   - Order: reached vertices (source excluded) in first-discovery order
//   - Supports an OnDiscover hook and a MaxDepth limit.
//
// Why
//
//   - Order is a topological order of the shortest-path DAG, so walking it
//     backwards finalises each vertex before its predecessors, which is what
//     dependency back-propagation needs.
//   - Eccentricity and PathTo make a Result directly useful for diameter or
//     routing questions without a second traversal.
//
// Invariants
//
//	Dist[s] == 0, Sigma[s] == 1, Pred[s] is empty.
//	For every reached v != s: len(Pred[v]) >= 1 and Sigma[v] == Σ Sigma[p], p ∈ Pred[v].
//	Unreached vertices have Sigma == 0 and empty Pred, and never appear in any Pred list.
//
// Multi-edges
//
//	A neighbour listed twice yields two identical predecessor entries and
//	doubles its Sigma contribution. This is accepted; use core.Graph.Simplify
//	beforehand if it is unwanted.
//
// Determinism
//
//	Neighbours are scanned in adjacency order and the queue is FIFO, so the
//	Order and every Pred list are fully reproducible.
//
// Complexity (V = |Vertices|, E = |half-edges|)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (predecessor lists grow by amortised append)
//
// Usage
//
//	res, err := bfs.ShortestPaths(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrSourceOutOfRange, ErrOptionViolation, or ctx.Err()
//	}
//	for i := len(res.Order) - 1; i >= 0; i-- { /* farthest first */ }
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued vertex.
//   - WithOnDiscover(fn): hook on first discovery of each vertex.
//   - WithMaxDepth(d):    stop discovering beyond depth d (>0); 0 means no limit.
package bfs

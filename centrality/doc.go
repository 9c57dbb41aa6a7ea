// Package centrality computes betweenness centrality for every vertex of an
// unweighted, undirected core.Graph using Brandes' algorithm.
//
// For each source vertex s a breadth-first pass (package bfs) yields shortest
// path counts σ, predecessor lists and the nearest-first visitation order.
// Walking that order farthest-first, every vertex v passes its dependency to
// each predecessor u in proportion σ[u]/σ[v]. Summing the per-source
// dependencies and halving gives, for every v,
//
//	C(v) = Σ_{s≠v≠t} σ_st(v) / σ_st   over unordered pairs {s,t}
//
// Disconnected graphs are supported: unreachable pairs contribute nothing.
//
// Accumulation modes:
//
//   - Dependency (default): δ starts at 0; no correction is needed.
//   - PlusOne: scores start at 1 and a closed-form per-vertex correction
//     removes the baseline afterwards. Both modes agree to rounding.
//
// Options:
//
//   - WithWorkers(n): split sources into n contiguous blocks processed in
//     parallel; partial vectors are reduced in block order, so output is
//     reproducible for a fixed n.
//   - WithNormalized(true): divide by (N-1)(N-2)/2.
//   - WithContext, WithLogger, WithTracerProvider: cancellation, slog records
//     and an OpenTelemetry span per run.
//
// Complexity: O(V·(V+E)) time, O(workers·V + E) extra memory.
//
// The package also exposes the per-vertex features reported next to
// betweenness (Degree, AverageNeighborDegree) and small helpers to pick
// subsets (Select) and the most central vertex (ArgMax).
package centrality

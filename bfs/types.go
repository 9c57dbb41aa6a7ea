package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreached is the distance recorded for vertices the source cannot reach.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrSourceOutOfRange is returned when the source index is not in [0, N).
	ErrSourceOutOfRange = errors.New("bfs: source vertex out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures ShortestPaths via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when ShortestPaths is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a traversal.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnDiscover is called the first time a vertex is reached,
	// with its distance from the source. Not called for the source.
	OnDiscover func(v, depth int)

	// MaxDepth, if > 0, stops discovering vertices beyond this depth.
	// Vertices past the limit are reported as Unreached.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit
// and a no-op discovery hook.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		OnDiscover: func(int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnDiscover registers a callback fired on first discovery.
func WithOnDiscover(fn func(v, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDiscover = fn
		}
	}
}

// WithMaxDepth limits discovery to vertices at most d hops away.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds everything one traversal learns about the shortest-path DAG
// rooted at Source. All slices have length N and are indexed by vertex.
type Result struct {
	// Source is the root vertex.
	Source int

	// Dist[v] is the hop count from Source, or Unreached.
	Dist []int

	// Pred[v] lists every neighbour u with Dist[u]+1 == Dist[v], in discovery
	// order. A parallel edge contributes a repeated entry.
	Pred [][]int

	// Sigma[v] counts distinct shortest Source→v paths; 0 when unreached.
	// Stored as float64: counts grow exponentially on lattice-like graphs.
	Sigma []float64

	// Order lists reached vertices, excluding Source, in non-decreasing
	// distance (first-discovery order).
	Order []int
}

// Reached reports whether v was reached from Source.
func (r *Result) Reached(v int) bool {
	return v >= 0 && v < len(r.Dist) && r.Dist[v] != Unreached
}

// Reachable returns the number of vertices reached, Source included.
func (r *Result) Reachable() int {
	return len(r.Order) + 1
}

// Eccentricity returns the largest finite distance from Source
// (0 when Source is isolated).
func (r *Result) Eccentricity() int {
	if len(r.Order) == 0 {
		return 0
	}

	return r.Dist[r.Order[len(r.Order)-1]]
}

// PathTo reconstructs one shortest path from Source to dest by following the
// first recorded predecessor at each step.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to %d", dest)
	}
	path := make([]int, r.Dist[dest]+1)
	for cur, i := dest, len(path)-1; i >= 0; i-- {
		path[i] = cur
		if i > 0 {
			cur = r.Pred[cur][0]
		}
	}

	return path, nil
}

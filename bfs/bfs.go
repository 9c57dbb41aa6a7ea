package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/betweenness/core"
)

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int
	head  int
	res   *Result
}

// ShortestPaths runs breadth-first search on g from source, applying any
// number of functional Options.
// Returns ErrGraphNil, ErrSourceOutOfRange or ErrOptionViolation for invalid
// input, or the context error if cancelled.
func ShortestPaths(g *core.Graph, source int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if source < 0 || source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, source, n)
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		res:   newResult(source, n),
	}

	// Seed queue with the source; it never enters Order.
	w.queue = append(w.queue, source)

	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.res, nil
}

// newResult allocates all per-vertex vectors in their initial state.
func newResult(source, n int) *Result {
	r := &Result{
		Source: source,
		Dist:   make([]int, n),
		Pred:   make([][]int, n),
		Sigma:  make([]float64, n),
		Order:  make([]int, 0, n),
	}
	for v := range r.Dist {
		r.Dist[v] = Unreached
	}
	r.Dist[source] = 0
	r.Sigma[source] = 1

	return r
}

// loop processes the queue until empty or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.dequeue()
		w.relax(u)
	}

	return nil
}

// dequeue pops the next vertex. The backing slice is never shifted:
// every vertex is enqueued at most once, so len(queue) <= N.
func (w *walker) dequeue() int {
	u := w.queue[w.head]
	w.head++

	return u
}

// relax inspects every neighbour of u, discovering new vertices and
// recording additional equal-length paths to already-discovered ones.
func (w *walker) relax(u int) {
	r := w.res
	next := r.Dist[u] + 1
	for _, v := range w.graph.Neighbors(u) {
		switch {
		case r.Dist[v] == Unreached:
			if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
				continue
			}
			w.discover(v, u, next)
		case r.Dist[v] == next:
			// another shortest path of the same length
			r.Pred[v] = append(r.Pred[v], u)
			r.Sigma[v] += r.Sigma[u]
		}
		// Dist[v] < next: u is not on a shortest path to v.
	}
}

// discover records v's first sighting via u at depth d and enqueues it.
func (w *walker) discover(v, u, d int) {
	r := w.res
	r.Dist[v] = d
	r.Sigma[v] = r.Sigma[u]
	r.Pred[v] = append(r.Pred[v], u)
	r.Order = append(r.Order, v)
	w.queue = append(w.queue, v)
	w.opts.OnDiscover(v, d)
}

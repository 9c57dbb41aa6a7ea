package centrality

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/betweenness/bfs"
	"github.com/katalvlaran/betweenness/core"
)

// Betweenness returns, for every vertex v of g, the number of unordered
// vertex pairs {s,t} (s≠v≠t) weighted by the fraction of shortest s–t paths
// passing through v. The result is index-aligned with g.
//
// An empty graph yields an empty, non-nil slice. Returns ErrGraphNil,
// ErrOptionViolation, ErrInternalInconsistency, or the context error.
func Betweenness(g *core.Graph, opts ...Option) ([]float64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	workers := o.Workers
	if workers > n {
		workers = max(n, 1)
	}

	ctx, span := o.TracerProvider.Tracer(instrumentationName).Start(o.Ctx, "centrality.Betweenness",
		trace.WithAttributes(
			attribute.Int("vertex_count", n),
			attribute.Int("edge_count", g.Size()),
			attribute.Int("workers", workers),
			attribute.String("mode", o.Mode.String()),
			attribute.Bool("normalized", o.Normalized),
		),
	)
	defer span.End()

	start := time.Now()
	o.Logger.Debug("betweenness started",
		slog.Int("vertices", n),
		slog.Int("half_edges", g.HalfEdges()),
		slog.Int("workers", workers),
		slog.String("mode", o.Mode.String()),
	)

	scores, err := run(ctx, g, o, workers)
	elapsed := time.Since(start)
	recordRunMetrics(ctx, o.Mode, elapsed, err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		o.Logger.Debug("betweenness failed", slog.String("error", err.Error()))
		return nil, err
	}

	span.SetStatus(codes.Ok, "")
	o.Logger.Debug("betweenness completed",
		slog.Int("vertices", n),
		slog.Duration("elapsed", elapsed),
	)

	return scores, nil
}

// run fans the sources out over workers, reduces the partial vectors in
// block order and applies the mode's finalisation.
func run(ctx context.Context, g *core.Graph, o Options, workers int) ([]float64, error) {
	n := g.Order()
	if n == 0 {
		return []float64{}, nil
	}

	// reach[s] is the size of s's component; written only by the worker owning s.
	reach := make([]int, n)
	partials := make([][]float64, workers)

	if workers == 1 {
		p, err := accumulateBlock(ctx, g, o.Mode, 0, n, reach)
		if err != nil {
			return nil, err
		}
		partials[0] = p
	} else {
		eg, egCtx := errgroup.WithContext(ctx)
		for w := 0; w < workers; w++ {
			lo, hi := w*n/workers, (w+1)*n/workers
			eg.Go(func() error {
				p, err := accumulateBlock(egCtx, g, o.Mode, lo, hi, reach)
				if err != nil {
					return err
				}
				partials[w] = p
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}

	final := partials[0]
	for _, p := range partials[1:] {
		for v := range final {
			final[v] += p[v]
		}
	}

	finalize(final, reach, o.Mode)
	if o.Normalized && n > 2 {
		scale := 2 / (float64(n-1) * float64(n-2))
		for v := range final {
			final[v] *= scale
		}
	}

	return final, nil
}

// accumulateBlock processes sources lo..hi-1 into a private partial vector.
func accumulateBlock(ctx context.Context, g *core.Graph, mode Mode, lo, hi int, reach []int) ([]float64, error) {
	n := g.Order()
	partial := make([]float64, n)
	work := make([]float64, n)

	for s := lo; s < hi; s++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := bfs.ShortestPaths(g, s, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("centrality: source %d: %w", s, err)
		}
		reach[s] = res.Reachable()

		switch mode {
		case PlusOne:
			err = propagatePlusOne(res, work)
		default:
			err = propagateDependency(res, work)
		}
		if err != nil {
			return nil, err
		}

		for v, x := range work {
			partial[v] += x
		}
	}
	recordSources(ctx, hi-lo)

	return partial, nil
}

// propagateDependency fills delta with the Brandes dependency of res.Source
// on every vertex, walking Order farthest-first. delta[Source] is left at 0
// so the source never credits itself.
func propagateDependency(res *bfs.Result, delta []float64) error {
	clear(delta)
	for i := len(res.Order) - 1; i >= 0; i-- {
		v := res.Order[i]
		sv := res.Sigma[v]
		if sv == 0 {
			return fmt.Errorf("%w: source %d: vertex %d ordered with zero path count", ErrInternalInconsistency, res.Source, v)
		}
		for _, u := range res.Pred[v] {
			delta[u] += res.Sigma[u] / sv * (1 + delta[v])
		}
	}
	delta[res.Source] = 0

	return nil
}

// propagatePlusOne fills scores using the dependency-plus-one convention:
// every vertex, reached or not, starts at 1 and the source keeps the
// credit of every vertex it reaches.
func propagatePlusOne(res *bfs.Result, scores []float64) error {
	for v := range scores {
		scores[v] = 1
	}
	for i := len(res.Order) - 1; i >= 0; i-- {
		v := res.Order[i]
		sv := res.Sigma[v]
		if sv == 0 {
			return fmt.Errorf("%w: source %d: vertex %d ordered with zero path count", ErrInternalInconsistency, res.Source, v)
		}
		for _, u := range res.Pred[v] {
			scores[u] += scores[v] * (res.Sigma[u] / sv)
		}
	}

	return nil
}

// finalize turns summed per-source vectors into unordered-pair centrality.
//
// Dependency: every pair is credited once from each endpoint, so halve.
//
// PlusOne: each vertex v collected N baseline units (one per source) plus
// reach[v]-1 self-credit from its own run, on top of twice its centrality.
// For a connected graph reach[v] = N and the correction is (x - (2N-1)) / 2.
func finalize(final []float64, reach []int, mode Mode) {
	n := float64(len(final))
	for v := range final {
		switch mode {
		case PlusOne:
			final[v] = (final[v] - n - float64(reach[v]-1)) / 2
		default:
			final[v] /= 2
		}
	}
}

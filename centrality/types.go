package centrality

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Sentinel errors for centrality computation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("centrality: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("centrality: invalid option supplied")

	// ErrInternalInconsistency signals a broken traversal invariant: a vertex
	// in the visitation order with a zero shortest-path count. It indicates a
	// bug, never bad input.
	ErrInternalInconsistency = errors.New("centrality: internal inconsistency")
)

// Mode selects how per-source dependencies are accumulated.
type Mode int

const (
	// Dependency initialises every dependency to 0 and propagates
	// σ[u]/σ[v]·(1+δ[v]). No end-of-run correction is needed.
	Dependency Mode = iota

	// PlusOne initialises every score to 1 and propagates
	// scores[v]·σ[u]/σ[v], then removes the baseline with a closed-form
	// per-vertex correction. Kept for parity with notebook-derived scores.
	PlusOne
)

// String returns the lower-case mode name used in config and telemetry.
func (m Mode) String() string {
	switch m {
	case Dependency:
		return "dependency"
	case PlusOne:
		return "plusone"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode maps a name produced by Mode.String back to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "dependency", "":
		return Dependency, nil
	case "plusone":
		return PlusOne, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrOptionViolation, s)
	}
}

// Option configures Betweenness via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Betweenness is invoked.
type Option func(*Options)

// Options holds parameters for a centrality run.
type Options struct {
	// Ctx allows cancellation and deadlines; checked once per source.
	Ctx context.Context

	// Workers is the number of goroutines sharing the sources. 1 = sequential.
	Workers int

	// Normalized divides every score by (N-1)(N-2)/2 when N > 2.
	Normalized bool

	// Mode selects the accumulation convention.
	Mode Mode

	// Logger receives debug records for each run.
	Logger *slog.Logger

	// TracerProvider supplies the tracer for the run span.
	TracerProvider trace.TracerProvider

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns sequential, unnormalised Dependency-mode options
// using the default slog logger and the global otel tracer provider.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Workers:        1,
		Mode:           Dependency,
		Logger:         slog.Default(),
		TracerProvider: otel.GetTracerProvider(),
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

// WithWorkers sets the number of goroutines. n < 1 → ErrOptionViolation.
// Output is deterministic for a fixed n; different n may differ in the
// last bits because partial sums are grouped differently.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: Workers must be >= 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithNormalized toggles normalisation by the number of unordered pairs
// not involving the vertex, (N-1)(N-2)/2.
func WithNormalized(on bool) Option {
	return func(o *Options) { o.Normalized = on }
}

// WithAccumulation selects the accumulation Mode.
func WithAccumulation(m Mode) Option {
	return func(o *Options) {
		if m != Dependency && m != PlusOne {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracerProvider sets the otel tracer provider; nil is ignored.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *Options) {
		if tp != nil {
			o.TracerProvider = tp
		}
	}
}

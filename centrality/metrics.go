package centrality

import (
	"context"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// instrumentationName names both the tracer and the meter.
const instrumentationName = "betweenness.centrality"

// Metrics for centrality runs.
var (
	runLatency   metric.Float64Histogram
	runTotal     metric.Int64Counter
	sourcesTotal metric.Int64Counter

	metricsOnce sync.Once
	metricsErr  error
)

// initMetrics resolves the meter from the global provider on first use and
// creates the instruments. Safe to call multiple times.
func initMetrics() error {
	metricsOnce.Do(func() {
		meter := otel.Meter(instrumentationName)
		var err error

		runLatency, err = meter.Float64Histogram(
			"betweenness_duration_seconds",
			metric.WithDescription("Duration of betweenness centrality runs"),
			metric.WithUnit("s"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		runTotal, err = meter.Int64Counter(
			"betweenness_runs_total",
			metric.WithDescription("Total number of betweenness centrality runs"),
		)
		if err != nil {
			metricsErr = err
			return
		}

		sourcesTotal, err = meter.Int64Counter(
			"betweenness_sources_total",
			metric.WithDescription("Number of source vertices processed"),
		)
		if err != nil {
			metricsErr = err
			return
		}
	})
	return metricsErr
}

// recordRunMetrics records duration and outcome of one run.
func recordRunMetrics(ctx context.Context, mode Mode, duration time.Duration, err error) {
	if initMetrics() != nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("status", status),
		attribute.String("mode", mode.String()),
	)
	runLatency.Record(ctx, duration.Seconds(), attrs)
	runTotal.Add(ctx, 1, attrs)
}

// recordSources counts processed sources for one worker block.
func recordSources(ctx context.Context, n int) {
	if initMetrics() != nil || n == 0 {
		return
	}
	sourcesTotal.Add(ctx, int64(n))
}

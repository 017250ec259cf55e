package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records invocation and cache metrics for endpoint operations.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordInvocation records an operation invocation with duration and
	// error status.
	RecordInvocation(ctx context.Context, meta OperationMeta, duration time.Duration, err error)

	// RecordCacheHit records an invocation served from a response cache.
	RecordCacheHit(ctx context.Context, meta OperationMeta)

	// RecordCacheMiss records an invocation that reached the operation.
	RecordCacheMiss(ctx context.Context, meta OperationMeta)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"endpoint.invoke.total",
		metric.WithDescription("Total number of operation invocations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"endpoint.invoke.errors",
		metric.WithDescription("Total number of failed operation invocations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"endpoint.invoke.duration_ms",
		metric.WithDescription("Operation invocation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"endpoint.cache.hits",
		metric.WithDescription("Invocations served from the response cache"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"endpoint.cache.misses",
		metric.WithDescription("Invocations that reached the operation"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
	}, nil
}

func (m *metricsImpl) attrs(meta OperationMeta) metric.MeasurementOption {
	attrs := []attribute.KeyValue{
		attribute.String("endpoint.id", meta.Endpoint),
		attribute.String("endpoint.op_type", string(meta.Type)),
	}
	if meta.Operation != "" {
		attrs = append(attrs, attribute.String("endpoint.operation", meta.Operation))
	}
	return metric.WithAttributes(attrs...)
}

func (m *metricsImpl) RecordInvocation(ctx context.Context, meta OperationMeta, duration time.Duration, err error) {
	opt := m.attrs(meta)

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

func (m *metricsImpl) RecordCacheHit(ctx context.Context, meta OperationMeta) {
	m.cacheHits.Add(ctx, 1, m.attrs(meta))
}

func (m *metricsImpl) RecordCacheMiss(ctx context.Context, meta OperationMeta) {
	m.cacheMisses.Add(ctx, 1, m.attrs(meta))
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (noopMetrics) RecordInvocation(context.Context, OperationMeta, time.Duration, error) {}
func (noopMetrics) RecordCacheHit(context.Context, OperationMeta)                         {}
func (noopMetrics) RecordCacheMiss(context.Context, OperationMeta)                        {}

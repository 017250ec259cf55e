package observe

import (
	"context"
	"time"

	"github.com/opkit/endpoint/cache"
	"github.com/opkit/endpoint/invoke"
)

// Middleware instruments endpoint operations with tracing, metrics, and
// logging. It implements invoke.Advisor so it can be applied alongside
// the caching advisor at registration time.
//
// Contract:
// - Concurrency: the advised invoker is safe for concurrent use.
// - Errors: errors from the wrapped invoker are recorded and propagated
//   unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability
// components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}
	return NewMiddleware(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// Advise wraps inv with span, metric, and log instrumentation.
func (m *Middleware) Advise(endpointID string, opType invoke.OperationType, inv invoke.Invoker) invoke.Invoker {
	meta := OperationMeta{Endpoint: endpointID, Type: opType}

	return invoke.InvokerFunc(func(ctx context.Context, ic *invoke.InvocationContext) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)
		start := time.Now()

		result, err := inv.Invoke(ctx, ic)

		duration := time.Since(start)
		m.tracer.EndSpan(span, err)
		m.metrics.RecordInvocation(ctx, meta, duration, err)

		logger := m.logger.WithOperation(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
			{Key: "principal_present", Value: ic.Principal() != nil},
		}
		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			logger.Error(ctx, "operation invocation failed", fields...)
		} else {
			logger.Info(ctx, "operation invocation completed", fields...)
		}

		return result, err
	})
}

// CacheEvents returns a cache.Events sink that counts hits and misses
// for the given endpoint, for wiring into cache.WithEvents.
func (m *Middleware) CacheEvents(endpointID string, opType invoke.OperationType) cache.Events {
	return cacheEvents{
		metrics: m.metrics,
		meta:    OperationMeta{Endpoint: endpointID, Type: opType},
	}
}

type cacheEvents struct {
	metrics Metrics
	meta    OperationMeta
}

func (c cacheEvents) Hit(ctx context.Context)  { c.metrics.RecordCacheHit(ctx, c.meta) }
func (c cacheEvents) Miss(ctx context.Context) { c.metrics.RecordCacheMiss(ctx, c.meta) }

// Ensure Middleware implements invoke.Advisor
var _ invoke.Advisor = (*Middleware)(nil)

// Ensure cacheEvents implements cache.Events
var _ cache.Events = cacheEvents{}

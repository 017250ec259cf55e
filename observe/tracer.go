package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"

	"github.com/opkit/endpoint/invoke"
)

// OperationMeta identifies an endpoint operation for telemetry purposes.
type OperationMeta struct {
	Endpoint  string               // endpoint ID (required)
	Operation string               // operation name within the endpoint (optional)
	Type      invoke.OperationType // read, write or delete
}

// ID returns the fully qualified operation identifier.
func (m OperationMeta) ID() string {
	if m.Operation != "" {
		return m.Endpoint + "." + m.Operation
	}
	return m.Endpoint
}

// SpanName returns the deterministic span name for this operation.
// Format: endpoint.invoke.<endpoint> or endpoint.invoke.<endpoint>.<operation>
func (m OperationMeta) SpanName() string {
	return "endpoint.invoke." + m.ID()
}

// Tracer wraps OpenTelemetry tracing with per-operation span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for an operation invocation.
	StartSpan(ctx context.Context, meta OperationMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

func (t *tracerImpl) StartSpan(ctx context.Context, meta OperationMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("endpoint.id", meta.Endpoint),
		attribute.String("endpoint.op_type", string(meta.Type)),
	}
	if meta.Operation != "" {
		attrs = append(attrs, attribute.String("endpoint.operation", meta.Operation))
	}

	return t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta OperationMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}

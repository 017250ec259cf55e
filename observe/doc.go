// Package observe provides observability for endpoint invocations.
//
// It wires OpenTelemetry tracing and metrics plus structured JSON
// logging behind a single Observer facade, and provides a Middleware
// advisor that instruments endpoint operations with spans, metrics
// (including cache hit/miss counters), and logs.
package observe

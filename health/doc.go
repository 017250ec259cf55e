// Package health provides health checking primitives for endpoint
// operations.
//
// A Checker reports the health of one component as a Result with a
// Status of healthy, degraded, or unhealthy. An Aggregator fans out
// registered checkers in parallel and combines their results into a
// Report where the worst component status wins.
//
// The health report is the canonical cacheable read operation:
// Operation adapts an Aggregator to invoke.Invoker so it can be wrapped
// by the caching and observability advisors like any other endpoint
// operation.
//
//	agg := health.NewAggregator()
//	agg.Register("memory", health.NewMemoryChecker(health.MemoryCheckerConfig{}))
//
//	op := health.NewOperation(agg)
//	cached, _ := cache.New(op, 30*time.Second)
//	report, _ := cached.Invoke(ctx, invoke.NewInvocationContext(nil, nil))
package health

// Package cache provides TTL response caching for endpoint operations.
//
// CachedInvoker wraps one invoke.Invoker with a single-slot cache so
// repeated invocations with equal parameters inside the freshness
// window replay the memoized outcome instead of re-executing the
// operation. Asynchronous results (async.Deferred, async.Stream) are
// stored in shared form so their side effects fire at most once per
// window. Advisor applies caching to read operations at registration
// time, driven by a Policy.
package cache

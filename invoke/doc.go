// Package invoke defines the endpoint operation model.
//
// An Invoker is the single capability every endpoint operation exposes:
// invoke with a context, produce a result or fail. InvocationContext
// carries the caller's security context and the operation parameters.
// Advisors decorate invokers at registration time; caching and
// observability are applied through them.
package invoke

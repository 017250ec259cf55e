// Package async provides lazy asynchronous result handles.
//
// Deferred holds a single deferred value; Stream holds a deferred
// multi-value sequence. Both start cold: the producer runs on each
// consumption. Share converts a handle to a hot form whose producer
// runs at most once, with the recorded outcome replayed to every
// consumer. Sharing never consumes eagerly; production happens on the
// first consumer's goroutine.
package async

// Package lifecycle publishes application lifecycle events to
// registered listeners.
//
// A Publisher fans each Event out to its listeners synchronously, in
// registration order, on the publishing goroutine. A panicking listener
// is logged and skipped; it never aborts delivery to the remaining
// listeners.
package lifecycle

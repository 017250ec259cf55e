package async

import (
	"context"
	"sync"
)

// Producer computes a single deferred value.
type Producer func(ctx context.Context) (any, error)

// Deferred is a lazily computed single-value result.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - A cold handle runs its producer on every Get.
// - A shared handle runs its producer exactly once; concurrent first
//   consumers block until the outcome is available, and every consumer
//   observes the identical value or error.
type Deferred struct {
	producer Producer
	shared   bool

	once  sync.Once
	value any
	err   error
}

// NewDeferred returns a cold handle for the given producer.
func NewDeferred(p Producer) *Deferred {
	return &Deferred{producer: p}
}

// Resolved returns a shared handle already holding v.
func Resolved(v any) *Deferred {
	d := &Deferred{shared: true}
	d.once.Do(func() { d.value = v })
	return d
}

// Get computes or replays the value. On a cold handle the producer runs
// on the calling goroutine; on a shared handle only the first call does.
func (d *Deferred) Get(ctx context.Context) (any, error) {
	if !d.shared {
		return d.producer(ctx)
	}
	d.once.Do(func() {
		d.value, d.err = d.producer(ctx)
	})
	return d.value, d.err
}

// Share returns a handle whose producer runs at most once. Sharing an
// already shared handle returns it unchanged.
func (d *Deferred) Share() *Deferred {
	if d.shared {
		return d
	}
	return &Deferred{producer: d.producer, shared: true}
}

package cache

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/opkit/endpoint/async"
	"github.com/opkit/endpoint/invoke"
)

// Events receives cache outcome notifications, typically backed by
// observe metrics. A nil Events is a no-op.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic; notification is best-effort.
type Events interface {
	// Hit is called when an invocation is served from the slot.
	Hit(ctx context.Context)

	// Miss is called when an invocation reaches the wrapped operation.
	Miss(ctx context.Context)
}

// entry is the single cache slot: the memoized outcome, the key it was
// stored under, and its creation time. Entries are immutable and
// swapped wholesale so readers never observe a partially written slot.
type entry struct {
	key     key
	value   any
	created time.Time
}

func (e *entry) stale(now time.Time, ttl time.Duration) bool {
	return now.Sub(e.created) >= ttl
}

// CachedInvoker wraps one invoker with a single-slot TTL cache.
//
// There is deliberately one slot, not a keyed map: each wrapper is
// bound to exactly one operation and is exercised with one stable
// invocation shape at a time. A call under a previously unseen key is
// a miss and replaces the slot.
//
// Contract:
// - Concurrency: safe for concurrent use. Two concurrent misses may
//   both invoke the target; the last completed store wins and each
//   caller returns the self-consistent value it obtained.
// - Staleness is checked lazily on every Invoke; there is no sweeper.
// - Errors from the target propagate unchanged and never populate the
//   slot.
// - Contexts carrying a principal bypass the cache entirely: their
//   results are neither read from nor written to the slot.
type CachedInvoker struct {
	target invoke.Invoker
	ttl    time.Duration
	events Events
	slot   atomic.Pointer[entry]
}

// Option configures a CachedInvoker.
type Option func(*CachedInvoker)

// WithEvents attaches a hit/miss sink.
func WithEvents(ev Events) Option {
	return func(c *CachedInvoker) {
		c.events = ev
	}
}

// New creates a cached invoker around target. The time to live bounds
// entry freshness and must be strictly positive.
func New(target invoke.Invoker, ttl time.Duration, opts ...Option) (*CachedInvoker, error) {
	if target == nil {
		return nil, invoke.ErrNilInvoker
	}
	if ttl <= 0 {
		return nil, &InvalidTTLError{TTL: ttl}
	}
	c := &CachedInvoker{target: target, ttl: ttl}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// TTL returns the configured time to live.
func (c *CachedInvoker) TTL() time.Duration {
	return c.ttl
}

// Invoke returns the memoized outcome when the slot holds a fresh entry
// under the invocation's key, and otherwise invokes the target and
// stores the outcome. Asynchronous handles are converted to their
// shared, replay-on-consume form before storing; Invoke never blocks
// waiting for an asynchronous result to complete.
func (c *CachedInvoker) Invoke(ctx context.Context, ic *invoke.InvocationContext) (any, error) {
	k, err := newKey(ic)
	if err != nil {
		// Unkeyable parameters: invoke without caching.
		return c.target.Invoke(ctx, ic)
	}
	if k.hasPrincipal {
		return c.target.Invoke(ctx, ic)
	}

	if e := c.slot.Load(); e != nil && e.key == k && !e.stale(time.Now(), c.ttl) {
		c.hit(ctx)
		return e.value, nil
	}

	c.miss(ctx)
	value, err := c.target.Invoke(ctx, ic)
	if err != nil {
		return nil, err
	}

	value = share(value)
	c.slot.Store(&entry{key: k, value: value, created: time.Now()})
	return value, nil
}

// share converts cold asynchronous handles to their replay-on-consume
// form so the producing side effect fires at most once per entry.
func share(v any) any {
	switch h := v.(type) {
	case *async.Deferred:
		return h.Share()
	case *async.Stream:
		return h.Share()
	default:
		return v
	}
}

func (c *CachedInvoker) hit(ctx context.Context) {
	if c.events != nil {
		c.events.Hit(ctx)
	}
}

func (c *CachedInvoker) miss(ctx context.Context) {
	if c.events != nil {
		c.events.Miss(ctx)
	}
}

// Ensure CachedInvoker implements Invoker
var _ invoke.Invoker = (*CachedInvoker)(nil)

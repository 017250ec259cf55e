package lifecycle

import (
	"context"
	"fmt"
	"sync"

	"github.com/opkit/endpoint/observe"
)

// Listener receives lifecycle events.
type Listener func(ctx context.Context, ev Event)

// Publisher fans lifecycle events out to registered listeners.
//
// Contract:
// - Concurrency: Subscribe and Publish are safe for concurrent use;
//   delivery happens on the publishing goroutine.
// - Errors: a panicking listener is logged and skipped.
type Publisher struct {
	logger observe.Logger

	mu        sync.Mutex
	listeners []Listener
}

// NewPublisher creates a publisher. A nil logger silences panic reports.
func NewPublisher(logger observe.Logger) *Publisher {
	return &Publisher{logger: logger}
}

// Subscribe registers a listener. Listeners are invoked in registration
// order. Nil listeners are ignored.
func (p *Publisher) Subscribe(l Listener) {
	if l == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, l)
}

// Publish delivers ev to every listener, in registration order, on the
// calling goroutine.
func (p *Publisher) Publish(ctx context.Context, ev Event) {
	p.mu.Lock()
	listeners := make([]Listener, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, l := range listeners {
		p.deliver(ctx, l, ev)
	}
}

func (p *Publisher) deliver(ctx context.Context, l Listener, ev Event) {
	defer func() {
		if r := recover(); r != nil && p.logger != nil {
			p.logger.Error(ctx, "lifecycle listener panicked",
				observe.Field{Key: "event", Value: ev.Kind.String()},
				observe.Field{Key: "panic", Value: fmt.Sprint(r)},
			)
		}
	}()
	l(ctx, ev)
}

package async

import (
	"context"
	"sync"
)

// Emit receives one stream element. Returning an error stops consumption
// and propagates to the consumer.
type Emit func(v any) error

// StreamProducer produces the elements of a stream in order.
type StreamProducer func(ctx context.Context, emit Emit) error

// Stream is a lazily produced sequence of values.
//
// Contract:
// - Concurrency: safe for concurrent use.
// - A cold handle runs its producer on every consumption.
// - A shared handle runs its producer exactly once and records the full
//   emission sequence; every consumer observes the identical sequence,
//   or the identical producer error. The outcome is recorded wholesale:
//   a shared stream whose producer failed replays only the error.
type Stream struct {
	producer StreamProducer
	shared   bool

	once  sync.Once
	items []any
	err   error
}

// NewStream returns a cold handle for the given producer.
func NewStream(p StreamProducer) *Stream {
	return &Stream{producer: p}
}

// Of returns a shared stream over fixed values.
func Of(values ...any) *Stream {
	s := &Stream{shared: true}
	s.once.Do(func() { s.items = values })
	return s
}

// ForEach drains the stream, calling fn for each element in order.
func (s *Stream) ForEach(ctx context.Context, fn Emit) error {
	if !s.shared {
		return s.producer(ctx, fn)
	}

	s.once.Do(func() {
		s.err = s.producer(ctx, func(v any) error {
			s.items = append(s.items, v)
			return nil
		})
		if s.err != nil {
			s.items = nil
		}
	})
	if s.err != nil {
		return s.err
	}

	for _, v := range s.items {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}

// Collect drains the stream into a slice.
func (s *Stream) Collect(ctx context.Context) ([]any, error) {
	var out []any
	err := s.ForEach(ctx, func(v any) error {
		out = append(out, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Share returns a stream whose producer runs at most once. Sharing an
// already shared stream returns it unchanged.
func (s *Stream) Share() *Stream {
	if s.shared {
		return s
	}
	return &Stream{producer: s.producer, shared: true}
}

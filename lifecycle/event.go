package lifecycle

import "time"

// Kind identifies a lifecycle phase.
type Kind int

const (
	// KindStarting is published before any endpoint work begins.
	KindStarting Kind = iota
	// KindReady is published once the application can serve invocations.
	KindReady
	// KindFailed is published when startup aborts; the event carries the
	// causing error.
	KindFailed
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindStarting:
		return "starting"
	case KindReady:
		return "ready"
	case KindFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event is a single lifecycle occurrence.
type Event struct {
	// Kind is the lifecycle phase.
	Kind Kind

	// Err is the causing error for failed events, nil otherwise.
	Err error

	// Timestamp is when the event was created.
	Timestamp time.Time
}

// Starting creates a starting event.
func Starting() Event {
	return Event{Kind: KindStarting, Timestamp: time.Now()}
}

// Ready creates a ready event.
func Ready() Event {
	return Event{Kind: KindReady, Timestamp: time.Now()}
}

// Failed creates a failed event carrying the causing error.
func Failed(err error) Event {
	return Event{Kind: KindFailed, Err: err, Timestamp: time.Now()}
}

package lifecycle

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/opkit/endpoint/observe"
)

// TestPublisher_RegistrationOrder verifies listeners fire once per
// event, in registration order.
func TestPublisher_RegistrationOrder(t *testing.T) {
	p := NewPublisher(nil)

	var got []string
	for _, name := range []string{"first", "second", "third"} {
		name := name
		p.Subscribe(func(ctx context.Context, ev Event) {
			got = append(got, name)
		})
	}

	p.Publish(context.Background(), Starting())

	want := []string{"first", "second", "third"}
	if len(got) != len(want) {
		t.Fatalf("expected %d deliveries, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("delivery %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

// TestPublisher_FailedCarriesError verifies the failed event delivers
// the causing error.
func TestPublisher_FailedCarriesError(t *testing.T) {
	p := NewPublisher(nil)

	sentinel := errors.New("port already in use")
	var received Event
	p.Subscribe(func(ctx context.Context, ev Event) {
		received = ev
	})

	p.Publish(context.Background(), Failed(sentinel))

	if received.Kind != KindFailed {
		t.Errorf("expected failed event, got %v", received.Kind)
	}
	if !errors.Is(received.Err, sentinel) {
		t.Errorf("expected causing error, got %v", received.Err)
	}
	if received.Timestamp.IsZero() {
		t.Error("expected event timestamp")
	}
}

// TestPublisher_PanickingListenerSkipped verifies a panic in one
// listener does not abort delivery to the rest.
func TestPublisher_PanickingListenerSkipped(t *testing.T) {
	var logBuf bytes.Buffer
	p := NewPublisher(observe.NewLoggerWithWriter("info", &logBuf))

	var delivered int
	p.Subscribe(func(ctx context.Context, ev Event) {
		panic("listener bug")
	})
	p.Subscribe(func(ctx context.Context, ev Event) {
		delivered++
	})

	p.Publish(context.Background(), Ready())

	if delivered != 1 {
		t.Fatalf("expected remaining listener to run, delivered=%d", delivered)
	}
	if !strings.Contains(logBuf.String(), "lifecycle listener panicked") {
		t.Errorf("expected panic to be logged, got: %s", logBuf.String())
	}
	if !strings.Contains(logBuf.String(), "listener bug") {
		t.Errorf("expected panic value in log, got: %s", logBuf.String())
	}
}

// TestPublisher_NilListenerIgnored verifies nil subscriptions are
// dropped.
func TestPublisher_NilListenerIgnored(t *testing.T) {
	p := NewPublisher(nil)
	p.Subscribe(nil)
	// Must not panic.
	p.Publish(context.Background(), Ready())
}

// TestKind_String verifies kind names.
func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindStarting, "starting"},
		{KindReady, "ready"},
		{KindFailed, "failed"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

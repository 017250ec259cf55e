package health

import (
	"context"
	"errors"
	"testing"
)

// TestStatus_String verifies status names.
func TestStatus_String(t *testing.T) {
	tests := []struct {
		status Status
		want   string
	}{
		{StatusHealthy, "healthy"},
		{StatusDegraded, "degraded"},
		{StatusUnhealthy, "unhealthy"},
		{Status(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("Status(%d).String() = %q, want %q", tt.status, got, tt.want)
		}
	}
}

// TestResultConstructors verifies the result helpers.
func TestResultConstructors(t *testing.T) {
	r := Healthy("ok")
	if r.Status != StatusHealthy || r.Message != "ok" || r.Timestamp.IsZero() {
		t.Errorf("unexpected healthy result: %+v", r)
	}

	r = Degraded("slow")
	if r.Status != StatusDegraded {
		t.Errorf("expected degraded, got %v", r.Status)
	}

	sentinel := errors.New("connection refused")
	r = Unhealthy("down", sentinel)
	if r.Status != StatusUnhealthy || !errors.Is(r.Err, sentinel) {
		t.Errorf("unexpected unhealthy result: %+v", r)
	}

	r = Healthy("ok").WithDetails(map[string]any{"latency_ms": 3})
	if r.Details["latency_ms"] != 3 {
		t.Errorf("expected details to be attached, got %+v", r.Details)
	}
}

// TestCheckerFunc verifies the function adapter.
func TestCheckerFunc(t *testing.T) {
	c := NewCheckerFunc("db", func(ctx context.Context) Result {
		return Healthy("ok")
	})
	if c.Name() != "db" {
		t.Errorf("expected name db, got %q", c.Name())
	}
	if got := c.Check(context.Background()); got.Status != StatusHealthy {
		t.Errorf("expected healthy, got %v", got.Status)
	}
}

// TestMemoryChecker verifies the memory checker returns a usable result
// with sane configuration defaults.
func TestMemoryChecker(t *testing.T) {
	checker := NewMemoryChecker(MemoryCheckerConfig{})
	if checker.Name() != "memory" {
		t.Errorf("expected name memory, got %q", checker.Name())
	}

	result := checker.Check(context.Background())
	if result.Status == StatusUnhealthy {
		t.Errorf("expected test process memory below critical threshold: %+v", result)
	}
	if result.Details["alloc_bytes"] == nil {
		t.Error("expected allocation details")
	}
}

// TestMemoryChecker_Cancelled verifies cancellation short-circuits the
// check.
func TestMemoryChecker_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewMemoryChecker(MemoryCheckerConfig{}).Check(ctx)
	if result.Status != StatusUnhealthy {
		t.Errorf("expected unhealthy on cancelled context, got %v", result.Status)
	}
}

package auth

import "testing"

func TestAnonymous(t *testing.T) {
	sc := Anonymous()

	if sc.Principal() != nil {
		t.Error("anonymous context should have a nil principal")
	}
	if sc.IsUserInRole("admin") {
		t.Error("anonymous context should hold no roles")
	}
}

func TestNew_NilIdentity(t *testing.T) {
	sc := New(nil)

	if sc.Principal() != nil {
		t.Error("New(nil) should behave as anonymous")
	}
	if sc.IsUserInRole("admin") {
		t.Error("New(nil) should hold no roles")
	}
}

func TestNew_WithIdentity(t *testing.T) {
	id := &Identity{
		Principal: "alice",
		Roles:     []string{"admin"},
	}
	sc := New(id)

	if got := sc.Principal(); got != id {
		t.Errorf("Principal() = %v, want the wrapped identity", got)
	}
	if !sc.IsUserInRole("admin") {
		t.Error("IsUserInRole(\"admin\") = false, want true")
	}
	if sc.IsUserInRole("viewer") {
		t.Error("IsUserInRole(\"viewer\") = true, want false")
	}
}

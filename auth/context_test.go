package auth

import (
	"context"
	"testing"
)

func TestWithIdentity_RoundTrip(t *testing.T) {
	id := &Identity{Principal: "alice"}
	ctx := WithIdentity(context.Background(), id)

	if got := IdentityFromContext(ctx); got != id {
		t.Errorf("IdentityFromContext = %v, want stored identity", got)
	}
}

func TestIdentityFromContext_Empty(t *testing.T) {
	if got := IdentityFromContext(context.Background()); got != nil {
		t.Errorf("IdentityFromContext on empty context = %v, want nil", got)
	}
}

func TestSecurityContextFromContext(t *testing.T) {
	t.Run("with identity", func(t *testing.T) {
		id := &Identity{Principal: "alice", Roles: []string{"admin"}}
		ctx := WithIdentity(context.Background(), id)

		sc := SecurityContextFromContext(ctx)
		if sc.Principal() != id {
			t.Error("security context should carry the context identity")
		}
		if !sc.IsUserInRole("admin") {
			t.Error("security context should expose the identity's roles")
		}
	})

	t.Run("without identity", func(t *testing.T) {
		sc := SecurityContextFromContext(context.Background())
		if sc.Principal() != nil {
			t.Error("security context without identity should be anonymous")
		}
	})
}

package auth

import "context"

// Context keys for auth-related values.
type contextKey int

const identityKey contextKey = iota

// WithIdentity returns a new context with the given identity attached.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext retrieves the identity from the context.
// Returns nil if no identity is present.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey).(*Identity)
	return id
}

// SecurityContextFromContext builds a SecurityContext for the identity
// attached to ctx. Returns an anonymous context when none is present.
func SecurityContextFromContext(ctx context.Context) SecurityContext {
	return New(IdentityFromContext(ctx))
}

package auth

// SecurityContext exposes the security attributes of one caller.
//
// Contract:
// - Concurrency: implementations must be immutable and safe for concurrent use.
// - Principal returns nil for anonymous callers.
type SecurityContext interface {
	// Principal returns the caller's identity, or nil when anonymous.
	Principal() *Identity

	// IsUserInRole reports whether the caller holds the given role.
	// Anonymous callers hold no roles.
	IsUserInRole(role string) bool
}

// securityContext is the concrete SecurityContext implementation.
type securityContext struct {
	id *Identity
}

// New returns a SecurityContext carrying the given identity.
// A nil identity yields an anonymous context.
func New(id *Identity) SecurityContext {
	return securityContext{id: id}
}

// Anonymous returns a SecurityContext with no principal.
func Anonymous() SecurityContext {
	return securityContext{}
}

func (s securityContext) Principal() *Identity {
	return s.id
}

func (s securityContext) IsUserInRole(role string) bool {
	if s.id == nil {
		return false
	}
	return s.id.HasRole(role)
}

package invoke

import "github.com/opkit/endpoint/auth"

// InvocationContext carries the caller-supplied state of one invocation:
// the caller's security context and the operation parameter map.
// It is immutable once constructed.
type InvocationContext struct {
	security   auth.SecurityContext
	parameters map[string]any
}

// NewInvocationContext creates an invocation context. The parameter map
// is copied; a nil security context is treated as anonymous.
func NewInvocationContext(sc auth.SecurityContext, parameters map[string]any) *InvocationContext {
	if sc == nil {
		sc = auth.Anonymous()
	}
	params := make(map[string]any, len(parameters))
	for k, v := range parameters {
		params[k] = v
	}
	return &InvocationContext{security: sc, parameters: params}
}

// SecurityContext returns the caller's security context.
func (ic *InvocationContext) SecurityContext() auth.SecurityContext {
	return ic.security
}

// Principal returns the caller's identity, or nil when anonymous.
func (ic *InvocationContext) Principal() *auth.Identity {
	return ic.security.Principal()
}

// Parameter returns the named parameter value and whether it is present.
// A present parameter may still hold a nil value.
func (ic *InvocationContext) Parameter(name string) (any, bool) {
	v, ok := ic.parameters[name]
	return v, ok
}

// Parameters returns a copy of the parameter map.
func (ic *InvocationContext) Parameters() map[string]any {
	params := make(map[string]any, len(ic.parameters))
	for k, v := range ic.parameters {
		params[k] = v
	}
	return params
}

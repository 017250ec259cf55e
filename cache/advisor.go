package cache

import "github.com/opkit/endpoint/invoke"

// Advisor applies TTL caching to read operations at registration time.
// Write and delete operations are returned untouched: a memoized
// mutation would hide its own effects.
type Advisor struct {
	policy Policy
	opts   []Option
}

// NewAdvisor creates a caching advisor driven by the given policy.
// Options are passed through to every CachedInvoker it creates.
func NewAdvisor(policy Policy, opts ...Option) *Advisor {
	return &Advisor{policy: policy, opts: opts}
}

// Advise wraps inv with a CachedInvoker when the operation is a read
// and the effective TTL for the endpoint is positive.
func (a *Advisor) Advise(endpointID string, opType invoke.OperationType, inv invoke.Invoker) invoke.Invoker {
	if opType != invoke.OperationTypeRead {
		return inv
	}
	ttl := a.policy.EffectiveTTL(endpointID)
	if ttl <= 0 {
		return inv
	}
	cached, err := New(inv, ttl, a.opts...)
	if err != nil {
		// ttl is positive here, so only a nil invoker can fail; advising
		// a nil invoker leaves it for the caller to surface.
		return inv
	}
	return cached
}

// Ensure Advisor implements invoke.Advisor
var _ invoke.Advisor = (*Advisor)(nil)

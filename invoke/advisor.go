package invoke

// Advisor decorates operations at registration time. Implementations
// return either the invoker unchanged or a wrapped form of it.
//
// Contract:
// - Concurrency: Advise may be called concurrently for different operations.
// - Errors: advising must not fail; an advisor that cannot apply returns
//   the invoker unchanged.
type Advisor interface {
	// Advise returns the invoker to register for the operation.
	Advise(endpointID string, opType OperationType, inv Invoker) Invoker
}

// AdvisorFunc is an adapter to allow ordinary functions to be used as
// Advisors.
type AdvisorFunc func(endpointID string, opType OperationType, inv Invoker) Invoker

// Advise calls f.
func (f AdvisorFunc) Advise(endpointID string, opType OperationType, inv Invoker) Invoker {
	return f(endpointID, opType, inv)
}

// Apply runs inv through the advisors in order. The first advisor
// becomes the innermost wrapper; nil advisors are skipped.
func Apply(endpointID string, opType OperationType, inv Invoker, advisors ...Advisor) Invoker {
	for _, a := range advisors {
		if a == nil {
			continue
		}
		inv = a.Advise(endpointID, opType, inv)
	}
	return inv
}

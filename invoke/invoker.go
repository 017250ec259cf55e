package invoke

import "context"

// OperationType classifies what an operation does to the state it touches.
type OperationType string

const (
	// OperationTypeRead is a side-effect-free operation. Only reads are
	// ever cacheable.
	OperationTypeRead OperationType = "read"

	// OperationTypeWrite mutates endpoint state.
	OperationTypeWrite OperationType = "write"

	// OperationTypeDelete removes endpoint state.
	OperationTypeDelete OperationType = "delete"
)

// Invoker is the capability every endpoint operation exposes.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: Invoke should honor cancellation/deadlines.
// - Errors: operations whose required inputs are absent return a
//   MissingParametersError; all other failures are operation-specific
//   and propagate unchanged.
type Invoker interface {
	// Invoke executes the operation for the given invocation context.
	// The result may be a plain value or a lazy asynchronous handle.
	Invoke(ctx context.Context, ic *InvocationContext) (any, error)
}

// InvokerFunc is an adapter to allow ordinary functions to be used as
// Invokers.
type InvokerFunc func(ctx context.Context, ic *InvocationContext) (any, error)

// Invoke calls f.
func (f InvokerFunc) Invoke(ctx context.Context, ic *InvocationContext) (any, error) {
	return f(ctx, ic)
}

package health

import (
	"context"
	"fmt"

	"github.com/opkit/endpoint/invoke"
)

// Operation exposes an Aggregator as a read endpoint operation. Without
// parameters it returns the aggregate Report; with a "check" parameter
// it runs only the named checker and returns its Result.
//
// The operation is side-effect free, so it is the natural target for
// the caching advisor.
type Operation struct {
	agg *Aggregator
}

// NewOperation creates a health operation backed by the given aggregator.
func NewOperation(agg *Aggregator) (*Operation, error) {
	if agg == nil {
		return nil, ErrNilAggregator
	}
	return &Operation{agg: agg}, nil
}

// Invoke runs the health checks for the invocation.
func (o *Operation) Invoke(ctx context.Context, ic *invoke.InvocationContext) (any, error) {
	v, ok := ic.Parameter("check")
	if !ok {
		return o.agg.Report(ctx), nil
	}

	name, ok := v.(string)
	if !ok || name == "" {
		return nil, invoke.NewMissingParametersError("check")
	}

	result, err := o.agg.Check(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", err, name)
	}
	return result, nil
}

// Ensure Operation implements invoke.Invoker
var _ invoke.Invoker = (*Operation)(nil)

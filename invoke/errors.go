package invoke

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for invocation.
var (
	// ErrNilInvoker is returned when a nil invoker is wrapped.
	ErrNilInvoker = errors.New("invoke: invoker is nil")

	// ErrMissingParameters matches any MissingParametersError with errors.Is.
	ErrMissingParameters = errors.New("invoke: missing required parameters")
)

// MissingParametersError reports the required parameters absent from an
// invocation context.
type MissingParametersError struct {
	// Names holds the missing parameter names, sorted.
	Names []string
}

// NewMissingParametersError creates a MissingParametersError. Names are
// sorted so messages are stable.
func NewMissingParametersError(names ...string) *MissingParametersError {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return &MissingParametersError{Names: sorted}
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("invoke: missing required parameters: %s", strings.Join(e.Names, ", "))
}

// Is reports whether target is ErrMissingParameters.
func (e *MissingParametersError) Is(target error) bool {
	return target == ErrMissingParameters
}

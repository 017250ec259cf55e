package cache

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTTL matches any InvalidTTLError with errors.Is.
var ErrInvalidTTL = errors.New("cache: time to live must be strictly positive")

// InvalidTTLError reports a non-positive time to live supplied at
// construction.
type InvalidTTLError struct {
	TTL time.Duration
}

func (e *InvalidTTLError) Error() string {
	return fmt.Sprintf("cache: invalid time to live %s: must be strictly positive", e.TTL)
}

// Is reports whether target is ErrInvalidTTL.
func (e *InvalidTTLError) Is(target error) bool {
	return target == ErrInvalidTTL
}

package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/opkit/endpoint/invoke"
)

// key identifies one invocation shape: whether a principal was present
// and a digest of the canonical parameter rendering. Contexts that are
// cache-equivalent produce equal keys; keys are comparable values so
// the slot can test equality directly.
type key struct {
	hasPrincipal bool
	params       string
}

// newKey derives the cache key for an invocation context.
func newKey(ic *invoke.InvocationContext) (key, error) {
	canonical, err := canonicalize(ic.Parameters())
	if err != nil {
		return key{}, fmt.Errorf("cache: canonicalize parameters: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return key{
		hasPrincipal: ic.Principal() != nil,
		params:       hex.EncodeToString(sum[:]),
	}, nil
}

// canonicalize renders the parameter map deterministically.
// encoding/json sorts map keys, so the standard rendering is stable
// regardless of map iteration order; nil values render as null and
// stay part of the key.
func canonicalize(params map[string]any) ([]byte, error) {
	if params == nil {
		return []byte("null"), nil
	}
	return json.Marshal(params)
}

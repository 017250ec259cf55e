package cache

import "time"

// Policy decides the time to live applied to an operation's cache.
type Policy struct {
	// DefaultTTL applies when no per-endpoint override exists.
	// Zero disables caching.
	DefaultTTL time.Duration

	// MaxTTL clamps the effective TTL when positive.
	MaxTTL time.Duration

	// TTLFor overrides the TTL for a specific endpoint. A nil func means
	// no overrides; a non-positive return falls back to DefaultTTL.
	TTLFor func(endpointID string) time.Duration
}

// DefaultPolicy returns the default caching policy.
// DefaultTTL: 5 minutes, MaxTTL: 1 hour.
func DefaultPolicy() Policy {
	return Policy{
		DefaultTTL: 5 * time.Minute,
		MaxTTL:     1 * time.Hour,
	}
}

// NoCachePolicy returns a policy that disables caching entirely.
func NoCachePolicy() Policy {
	return Policy{}
}

// EffectiveTTL returns the TTL for the given endpoint, applying the
// per-endpoint override, the default, and the clamp in that order.
// Zero means the endpoint stays uncached.
func (p Policy) EffectiveTTL(endpointID string) time.Duration {
	var ttl time.Duration
	if p.TTLFor != nil {
		ttl = p.TTLFor(endpointID)
	}
	if ttl <= 0 {
		ttl = p.DefaultTTL
	}
	if ttl <= 0 {
		return 0
	}
	if p.MaxTTL > 0 && ttl > p.MaxTTL {
		ttl = p.MaxTTL
	}
	return ttl
}

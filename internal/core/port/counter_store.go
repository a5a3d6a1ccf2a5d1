package port

import (
	"context"
	"time"
)

// CounterStore is the shared key-value store behind rate limits, cooldowns,
// fraud escalation and visitor sessions. It is an outbound port; every
// request handler shares one instance. Implementations must make Increment
// and SetNX atomic, otherwise concurrent requests could bypass limits.
type CounterStore interface {
	// Increment adds delta to the counter at key and returns the new value.
	// ttl is applied when the key has no expiry yet, so the first increment
	// of a window fixes its lifetime.
	Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error)
	// Count returns the counter at key, or zero when it does not exist.
	Count(ctx context.Context, key string) (int64, error)
	// Get returns the string value at key. ok is false when it is missing.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value at key for ttl.
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	// SetNX stores value at key for ttl only if key does not exist. It
	// reports whether the value was stored.
	SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	// Delete removes keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error
	// AppendEvent records an occurrence at `at` in the sliding window stored
	// under key and returns every occurrence still inside the window,
	// oldest first, including the new one.
	AppendEvent(ctx context.Context, key string, at time.Time, window time.Duration) ([]time.Time, error)
}

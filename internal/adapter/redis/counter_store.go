package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// incrScript increments a counter and applies the TTL only when the key has
// none, so the first increment of a window fixes its lifetime.
var incrScript = goredis.NewScript(`
local v = redis.call('INCRBY', KEYS[1], ARGV[1])
local ttl = tonumber(ARGV[2])
if ttl > 0 and redis.call('PTTL', KEYS[1]) < 0 then
	redis.call('PEXPIRE', KEYS[1], ttl)
end
return v
`)

// CounterStore implements port.CounterStore on a shared Redis instance.
// Every key is namespaced with prefix.
type CounterStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewCounterStore creates a counter store. prefix may be empty.
func NewCounterStore(client goredis.UniversalClient, prefix string) *CounterStore {
	return &CounterStore{client: client, prefix: prefix}
}

func (s *CounterStore) key(k string) string { return s.prefix + k }

func (s *CounterStore) Increment(ctx context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	n, err := incrScript.Run(ctx, s.client, []string{s.key(key)}, delta, ttl.Milliseconds()).Int64()
	if err != nil {
		return 0, fmt.Errorf("redis increment %s: %w", key, err)
	}
	return n, nil
}

func (s *CounterStore) Count(ctx context.Context, key string) (int64, error) {
	n, err := s.client.Get(ctx, s.key(key)).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis count %s: %w", key, err)
	}
	return n, nil
}

func (s *CounterStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *CounterStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.key(key), value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *CounterStore) SetNX(ctx context.Context, key, value string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(key), value, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis setnx %s: %w", key, err)
	}
	return ok, nil
}

func (s *CounterStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis delete: %w", err)
	}
	return nil
}

// AppendEvent keeps the window in a sorted set scored by microseconds.
// Members carry the exact nanosecond timestamp plus a random suffix so that
// simultaneous events are all kept.
func (s *CounterStore) AppendEvent(ctx context.Context, key string, at time.Time, window time.Duration) ([]time.Time, error) {
	k := s.key(key)
	cutoff := at.Add(-window).UnixMicro()
	member := strconv.FormatInt(at.UnixNano(), 10) + ":" + uuid.NewString()[:8]

	var rng *goredis.StringSliceCmd
	_, err := s.client.TxPipelined(ctx, func(p goredis.Pipeliner) error {
		p.ZRemRangeByScore(ctx, k, "-inf", strconv.FormatInt(cutoff, 10))
		p.ZAdd(ctx, k, goredis.Z{Score: float64(at.UnixMicro()), Member: member})
		p.PExpire(ctx, k, window)
		rng = p.ZRange(ctx, k, 0, -1)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis append event %s: %w", key, err)
	}

	members := rng.Val()
	out := make([]time.Time, 0, len(members))
	for _, m := range members {
		ns, _, _ := strings.Cut(m, ":")
		n, convErr := strconv.ParseInt(ns, 10, 64)
		if convErr != nil {
			continue
		}
		out = append(out, time.Unix(0, n).UTC())
	}
	return out, nil
}

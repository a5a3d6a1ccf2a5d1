// Package cache keeps read-mostly records in Redis in front of the
// Postgres adapters. The cache is best-effort: a Redis failure falls back
// to the wrapped source, never to an error.
package cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"promotrack/internal/metrics"
)

// defaultFetchTimeout bounds a shared fetch when no timeout is configured.
const defaultFetchTimeout = 5 * time.Second

// Cache is a JSON read-through cache. Concurrent misses for the same key
// share one fetch.
type Cache struct {
	client       goredis.UniversalClient
	prefix       string
	group        singleflight.Group
	fetchTimeout time.Duration
	logger       *slog.Logger
}

// Option customises a Cache.
type Option func(*Cache)

// WithFetchTimeout bounds the fetch shared by concurrent misses. Values
// below or equal to zero keep the default.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// New creates a cache whose keys are namespaced with prefix.
func New(client goredis.UniversalClient, prefix string, logger *slog.Logger, opts ...Option) *Cache {
	c := &Cache{client: client, prefix: prefix + "cache:", fetchTimeout: defaultFetchTimeout, logger: logger}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// generation returns the current generation of a namespace. Bumping it
// orphans every key built from the previous one, which then expire on
// their own.
func (c *Cache) generation(ctx context.Context, name string) (int64, error) {
	n, err := c.client.Get(ctx, c.prefix+"gen:"+name).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	return n, err
}

// Bump invalidates every key of the named generation.
func (c *Cache) Bump(ctx context.Context, name string) error {
	return c.client.Incr(ctx, c.prefix+"gen:"+name).Err()
}

// load returns the cached value under key, or fetches, stores and returns
// it. gen names the generation the key belongs to; an empty gen means the
// key is invalidated by TTL only. A zero ttl bypasses the cache. A fetch
// shared by concurrent misses is detached from the caller that started it,
// so its cancellation never fails the others; each caller still returns
// when its own context is done.
func load[T any](ctx context.Context, c *Cache, namespace, gen, key string, ttl time.Duration, fetch func(context.Context) (T, error)) (T, error) {
	if ttl <= 0 {
		return fetch(ctx)
	}

	full := c.prefix + namespace + ":" + key
	if gen != "" {
		g, err := c.generation(ctx, gen)
		if err != nil {
			metrics.CacheRequestsTotal.WithLabelValues(namespace, "error").Inc()
			c.logger.Warn("cache generation unavailable", slog.String("key", gen), slog.Any("error", err))
			return fetch(ctx)
		}
		full += ":g" + strconv.FormatInt(g, 10)
	}

	var zero T
	raw, err := c.client.Get(ctx, full).Bytes()
	switch {
	case err == nil:
		var v T
		if err = json.Unmarshal(raw, &v); err == nil {
			metrics.CacheRequestsTotal.WithLabelValues(namespace, "hit").Inc()
			return v, nil
		}
		c.logger.Warn("cache entry malformed", slog.String("key", full), slog.Any("error", err))
	case errors.Is(err, goredis.Nil):
	default:
		metrics.CacheRequestsTotal.WithLabelValues(namespace, "error").Inc()
		c.logger.Warn("cache read failed", slog.String("key", full), slog.Any("error", err))
		return fetch(ctx)
	}
	metrics.CacheRequestsTotal.WithLabelValues(namespace, "miss").Inc()

	ch := c.group.DoChan(full, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()
		v, err := fetch(fctx)
		if err != nil {
			return v, err
		}
		if raw, err := json.Marshal(v); err == nil {
			if err = c.client.Set(fctx, full, raw, ttl).Err(); err != nil {
				c.logger.Warn("cache write failed", slog.String("key", full), slog.Any("error", err))
			}
		}
		return v, nil
	})
	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

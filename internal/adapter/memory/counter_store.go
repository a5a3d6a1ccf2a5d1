// Package memory provides a process-local CounterStore. It is meant for
// single-instance deployments and tests; limits are not shared between
// processes.
package memory

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strconv"
	"sync"
	"time"
)

const shardCount = 32

type entry struct {
	value    string
	counter  int64
	isNumber bool
	events   []time.Time
	expires  time.Time // zero means no expiry
}

func (e *entry) expired(now time.Time) bool {
	return !e.expires.IsZero() && !now.Before(e.expires)
}

type shard struct {
	mu    sync.Mutex
	items map[string]*entry
}

// CounterStore is a sharded, mutex-guarded key-value store with expiry.
type CounterStore struct {
	shards [shardCount]*shard
	now    func() time.Time
	logger *slog.Logger
}

// Option customises a CounterStore.
type Option func(*CounterStore)

// WithClock replaces the wall clock used for expiry.
func WithClock(now func() time.Time) Option {
	return func(s *CounterStore) { s.now = now }
}

// NewCounterStore creates an empty store.
func NewCounterStore(logger *slog.Logger, opts ...Option) *CounterStore {
	s := &CounterStore{now: time.Now, logger: logger}
	for i := range s.shards {
		s.shards[i] = &shard{items: make(map[string]*entry)}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *CounterStore) shard(key string) *shard {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return s.shards[h.Sum32()%shardCount]
}

// live returns the unexpired entry at key. The caller holds sh.mu.
func (sh *shard) live(key string, now time.Time) *entry {
	e, ok := sh.items[key]
	if !ok {
		return nil
	}
	if e.expired(now) {
		delete(sh.items, key)
		return nil
	}
	return e
}

func expiry(now time.Time, ttl time.Duration) time.Time {
	if ttl <= 0 {
		return time.Time{}
	}
	return now.Add(ttl)
}

func (s *CounterStore) Increment(_ context.Context, key string, delta int64, ttl time.Duration) (int64, error) {
	now := s.now()
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.live(key, now)
	if e == nil {
		e = &entry{isNumber: true}
		sh.items[key] = e
	}
	if !e.isNumber {
		n, err := strconv.ParseInt(e.value, 10, 64)
		if err != nil {
			return 0, errNotInteger(key)
		}
		e.counter, e.isNumber, e.value = n, true, ""
	}
	e.counter += delta
	if e.expires.IsZero() {
		e.expires = expiry(now, ttl)
	}
	return e.counter, nil
}

func (s *CounterStore) Count(_ context.Context, key string) (int64, error) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.live(key, s.now())
	if e == nil {
		return 0, nil
	}
	if e.isNumber {
		return e.counter, nil
	}
	n, err := strconv.ParseInt(e.value, 10, 64)
	if err != nil {
		return 0, errNotInteger(key)
	}
	return n, nil
}

func (s *CounterStore) Get(_ context.Context, key string) (string, bool, error) {
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.live(key, s.now())
	if e == nil {
		return "", false, nil
	}
	if e.isNumber {
		return strconv.FormatInt(e.counter, 10), true, nil
	}
	return e.value, true, nil
}

func (s *CounterStore) Set(_ context.Context, key, value string, ttl time.Duration) error {
	now := s.now()
	sh := s.shard(key)
	sh.mu.Lock()
	sh.items[key] = &entry{value: value, expires: expiry(now, ttl)}
	sh.mu.Unlock()
	return nil
}

func (s *CounterStore) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	now := s.now()
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	if sh.live(key, now) != nil {
		return false, nil
	}
	sh.items[key] = &entry{value: value, expires: expiry(now, ttl)}
	return true, nil
}

func (s *CounterStore) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		sh := s.shard(key)
		sh.mu.Lock()
		delete(sh.items, key)
		sh.mu.Unlock()
	}
	return nil
}

func (s *CounterStore) AppendEvent(_ context.Context, key string, at time.Time, window time.Duration) ([]time.Time, error) {
	now := s.now()
	sh := s.shard(key)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	e := sh.live(key, now)
	if e == nil {
		e = &entry{}
		sh.items[key] = e
	}
	cutoff := at.Add(-window)
	kept := e.events[:0]
	for _, t := range e.events {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	// events stay ordered as long as callers append in time order; insert
	// out-of-order timestamps at their position
	i := len(kept)
	for i > 0 && kept[i-1].After(at) {
		i--
	}
	kept = append(kept, time.Time{})
	copy(kept[i+1:], kept[i:])
	kept[i] = at
	e.events = kept
	e.expires = expiry(now, window)

	out := make([]time.Time, len(kept))
	copy(out, kept)
	return out, nil
}

// Sweep drops expired entries and returns how many were removed.
func (s *CounterStore) Sweep() int {
	now := s.now()
	removed := 0
	for _, sh := range s.shards {
		sh.mu.Lock()
		for k, e := range sh.items {
			if e.expired(now) {
				delete(sh.items, k)
				removed++
			}
		}
		sh.mu.Unlock()
	}
	return removed
}

// Run sweeps expired entries every interval until ctx is cancelled.
func (s *CounterStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("expired counters swept", slog.Int("removed", n))
			}
		}
	}
}

type errNotInteger string

func (e errNotInteger) Error() string {
	return "value at " + strconv.Quote(string(e)) + " is not an integer"
}

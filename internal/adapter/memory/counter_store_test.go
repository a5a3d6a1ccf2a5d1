package memory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func newStore() (*CounterStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	return NewCounterStore(slog.New(slog.NewTextHandler(io.Discard, nil)), WithClock(clock.Now)), clock
}

func TestIncrementKeepsFirstTTL(t *testing.T) {
	s, clock := newStore()
	ctx := context.Background()

	n, err := s.Increment(ctx, "k", 1, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	clock.Advance(50 * time.Second)
	n, err = s.Increment(ctx, "k", 2, time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// the window started with the first increment
	clock.Advance(15 * time.Second)
	n, err = s.Count(ctx, "k")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestIncrementIsAtomic(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = s.Increment(ctx, "k", 1, time.Hour)
		}()
	}
	wg.Wait()

	n, err := s.Count(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, int64(100), n)
}

func TestSetNXOnlyOnce(t *testing.T) {
	s, clock := newStore()
	ctx := context.Background()

	ok, err := s.SetNX(ctx, "cooldown", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetNX(ctx, "cooldown", "1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	clock.Advance(time.Minute)
	ok, err = s.SetNX(ctx, "cooldown", "1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestGetSetDelete(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(ctx, "k", "v", 0))
	v, ok, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.Delete(ctx, "k", "missing"))
	_, ok, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIncrementRejectsNonInteger(t *testing.T) {
	s, _ := newStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "abc", 0))
	_, err := s.Increment(ctx, "k", 1, 0)
	assert.Error(t, err)
}

func TestAppendEventSlidesWindow(t *testing.T) {
	s, clock := newStore()
	ctx := context.Background()
	start := clock.Now()

	for i := 0; i < 3; i++ {
		_, err := s.AppendEvent(ctx, "w", start.Add(time.Duration(i)*time.Minute), 5*time.Minute)
		require.NoError(t, err)
	}
	times, err := s.AppendEvent(ctx, "w", start.Add(6*time.Minute), 5*time.Minute)
	require.NoError(t, err)

	// the events at 0 and 1 minute fell out of the window
	require.Len(t, times, 2)
	assert.Equal(t, start.Add(2*time.Minute), times[0])
	assert.Equal(t, start.Add(6*time.Minute), times[1])
}

func TestSweepRemovesExpired(t *testing.T) {
	s, clock := newStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "short", "v", time.Second))
	require.NoError(t, s.Set(ctx, "long", "v", time.Hour))
	clock.Advance(time.Minute)

	assert.Equal(t, 1, s.Sweep())
	_, ok, _ := s.Get(ctx, "long")
	assert.True(t, ok)
}

package ratelimit

import (
	"fmt"
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

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestLimiter_Allow_FiveThenDeny(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Second, MaxRequests: 5}, WithClock(clock.Now))

	for _, want := range []int{4, 3, 2, 1, 0} {
		res := l.Allow("1.2.3.4")
		require.True(t, res.Allowed)
		assert.Equal(t, want, res.Remaining)
		assert.Equal(t, 5, res.Limit)
		clock.Advance(100 * time.Millisecond)
	}

	res := l.Allow("1.2.3.4")
	assert.False(t, res.Allowed)
	assert.Equal(t, 0, res.Remaining)
}

func TestLimiter_Allow_ResetsAfterWindow(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Second, MaxRequests: 2}, WithClock(clock.Now))

	first := l.Allow("client")
	require.True(t, first.Allowed)
	assert.Equal(t, clock.Now().Add(time.Second), first.ResetTime)
	require.True(t, l.Allow("client").Allowed)
	require.False(t, l.Allow("client").Allowed)

	// Still inside the window at exactly resetTime
	clock.Advance(time.Second)
	require.False(t, l.Allow("client").Allowed)

	clock.Advance(time.Millisecond)
	res := l.Allow("client")
	require.True(t, res.Allowed)
	assert.Equal(t, 1, res.Remaining)
	assert.Equal(t, clock.Now().Add(time.Second), res.ResetTime)
}

func TestLimiter_Allow_IdentifiersAreIndependent(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Minute, MaxRequests: 1}, WithClock(clock.Now))

	assert.True(t, l.Allow("a").Allowed)
	assert.False(t, l.Allow("a").Allowed)
	assert.True(t, l.Allow("b").Allowed)
}

func TestLimiter_Allow_PurgesExpiredEntries(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Second, MaxRequests: 3}, WithClock(clock.Now))

	l.Allow("a")
	l.Allow("b")
	require.Equal(t, 2, l.Len())

	clock.Advance(2 * time.Second)
	l.Allow("c")
	assert.Equal(t, 1, l.Len())
}

func TestLimiter_Sweep(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Second, MaxRequests: 3}, WithClock(clock.Now))

	l.Allow("a")
	clock.Advance(500 * time.Millisecond)
	l.Allow("b")

	clock.Advance(600 * time.Millisecond)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 1, l.Len())

	clock.Advance(time.Second)
	assert.Equal(t, 1, l.Sweep())
	assert.Equal(t, 0, l.Len())
}

func TestLimiter_RemainingNeverNegative(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	l := New(Config{Window: time.Minute, MaxRequests: 3}, WithClock(clock.Now))

	for i := 0; i < 10; i++ {
		res := l.Allow("x")
		assert.GreaterOrEqual(t, res.Remaining, 0)
		assert.Equal(t, i < 3, res.Allowed, "call %d", i+1)
	}
}

func TestLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	l := New(Config{Window: time.Hour, MaxRequests: 50})

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}

func TestResult_RetryAfter(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		reset time.Time
		want  int
	}{
		{now.Add(1500 * time.Millisecond), 2},
		{now.Add(15 * time.Minute), 900},
		{now, 0},
		{now.Add(-time.Second), 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.want), func(t *testing.T) {
			assert.Equal(t, tt.want, Result{ResetTime: tt.reset}.RetryAfter(now))
		})
	}
}

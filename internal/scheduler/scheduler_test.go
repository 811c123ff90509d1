package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/citizenprep/internal/ratelimit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type counter struct {
	n   int
	err error
}

func (c counter) Count(context.Context) (int, error)    { return c.n, c.err }
func (c counter) CountAll(context.Context) (int, error) { return c.n, c.err }

func TestSweepLimiters(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	general := ratelimit.New(ratelimit.Config{Window: time.Minute, MaxRequests: 10}, ratelimit.WithClock(clock))
	auth := ratelimit.New(ratelimit.Config{Window: time.Hour, MaxRequests: 5}, ratelimit.WithClock(clock))

	general.Allow("a")
	general.Allow("b")
	auth.Allow("a")

	s := New(time.Minute, counter{}, counter{}, zap.NewNop(), general, auth)
	assert.Equal(t, 0, s.SweepLimiters())

	now = now.Add(2 * time.Minute)
	assert.Equal(t, 2, s.SweepLimiters())
	assert.Equal(t, 0, general.Len())
	assert.Equal(t, 1, auth.Len())
}

func TestHeartbeat(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	s := New(time.Minute, counter{n: 120}, counter{n: 7}, zap.New(core))

	require.NoError(t, s.Heartbeat(context.Background()))

	entries := logs.FilterMessage("heartbeat").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.EqualValues(t, 120, fields["questions"])
	assert.EqualValues(t, 7, fields["test_results"])
}

func TestHeartbeat_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")

	s := New(time.Minute, counter{err: boom}, counter{}, zap.NewNop())
	assert.ErrorIs(t, s.Heartbeat(context.Background()), boom)

	s = New(time.Minute, counter{}, counter{err: boom}, zap.NewNop())
	assert.ErrorIs(t, s.Heartbeat(context.Background()), boom)
}

func TestStartStop(t *testing.T) {
	t.Parallel()

	s := New(0, counter{}, counter{}, zap.NewNop())
	assert.Equal(t, time.Minute, s.sweepInterval)

	require.NoError(t, s.Start())
	assert.Equal(t, 2, s.Jobs())
	s.Stop()
}

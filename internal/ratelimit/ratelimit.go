// Package ratelimit implements a fixed-window request counter keyed by client identifier.
//
// Counts reset at exact window boundaries per identifier. State lives in process
// memory only, so a restart clears every window; limits are best-effort.
package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config bounds the number of requests per identifier within one window
type Config struct {
	Window      time.Duration
	MaxRequests int
}

// Result is the outcome of one Allow call
type Result struct {
	Allowed   bool
	Remaining int
	ResetTime time.Time
	Limit     int
}

// RetryAfter returns the whole seconds until the window resets, never negative
func (r Result) RetryAfter(now time.Time) int {
	d := r.ResetTime.Sub(now)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(d.Seconds()))
}

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter is a fixed-window counter table safe for concurrent use
type Limiter struct {
	mu      sync.Mutex
	cfg     Config
	now     func() time.Time
	entries map[string]*entry
}

// Option customizes a Limiter
type Option func(*Limiter)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// New creates a limiter for cfg
func New(cfg Config, opts ...Option) *Limiter {
	l := &Limiter{
		cfg:     cfg,
		now:     time.Now,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Limit returns the configured maximum requests per window
func (l *Limiter) Limit() int {
	return l.cfg.MaxRequests
}

// Allow records a request from identifier and reports whether it fits the window
func (l *Limiter) Allow(identifier string) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.purge(now)

	e, ok := l.entries[identifier]
	if !ok {
		e = &entry{resetTime: now.Add(l.cfg.Window)}
		l.entries[identifier] = e
	}

	if e.resetTime.Before(now) {
		e.count = 0
		e.resetTime = now.Add(l.cfg.Window)
	}

	allowed := e.count < l.cfg.MaxRequests
	if allowed {
		e.count++
	}

	remaining := l.cfg.MaxRequests - e.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   allowed,
		Remaining: remaining,
		ResetTime: e.resetTime,
		Limit:     l.cfg.MaxRequests,
	}
}

// Sweep drops every expired window and returns how many were removed
func (l *Limiter) Sweep() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.purge(l.now())
}

// Len returns the number of tracked identifiers
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}

// purge must be called with mu held
func (l *Limiter) purge(now time.Time) int {
	removed := 0
	for key, e := range l.entries {
		if e.resetTime.Before(now) {
			delete(l.entries, key)
			removed++
		}
	}
	return removed
}

// Package ratelimit implements a sliding window request limiter.
//
// Each identity owns a window of request timestamps. On every attempt the
// window is pruned to the trailing interval and the surviving count is
// compared against the cap. Only allowed attempts are recorded; a denied
// attempt leaves the window untouched and never moves the reset time.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a single limiter check
type Decision struct {
	Allowed   bool
	Remaining int
	ResetAt   time.Time
}

// Result is what a Windows store reports for one take
type Result struct {
	Allowed bool
	// Count is the number of surviving entries before this take was recorded
	Count int
	// Oldest is the oldest surviving entry, zero when the window was empty
	Oldest time.Time
}

// Windows stores per-identity request timestamps.
// Take must prune entries at or before cutoff, then record now only when the
// surviving count is below limit. Implementations must be safe for
// concurrent use.
type Windows interface {
	Take(ctx context.Context, identity string, now, cutoff time.Time, limit int) (Result, error)
	Reset(ctx context.Context, identity string) error
	Clear(ctx context.Context) error
}

// Limiter enforces a cap of requests per identity over a sliding window
type Limiter struct {
	limit  int
	window time.Duration
	store  Windows
	now    func() time.Time
}

// Option mutates limiter construction
type Option func(*Limiter)

// WithClock overrides the limiter clock, for tests
func WithClock(fn func() time.Time) Option {
	return func(l *Limiter) {
		if fn != nil {
			l.now = fn
		}
	}
}

// New builds a limiter over the given window store
func New(limit int, window time.Duration, store Windows, opts ...Option) *Limiter {
	if limit <= 0 {
		panic("ratelimit.New requires a positive limit")
	}
	if window <= 0 {
		panic("ratelimit.New requires a positive window")
	}
	if store == nil {
		panic("ratelimit.New requires a non nil Windows store")
	}
	l := &Limiter{limit: limit, window: window, store: store, now: time.Now}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Limit returns the configured request cap
func (l *Limiter) Limit() int { return l.limit }

// Window returns the configured window duration
func (l *Limiter) Window() time.Duration { return l.window }

// Allow checks and records one attempt for identity.
// Any identity is a valid bucket, including the empty string.
func (l *Limiter) Allow(ctx context.Context, identity string) (Decision, error) {
	now := l.now()
	cutoff := now.Add(-l.window)

	res, err := l.store.Take(ctx, identity, now, cutoff, l.limit)
	if err != nil {
		return Decision{}, err
	}

	if !res.Allowed {
		// earliest surviving entry ages out of the window first
		resetAt := now.Add(l.window)
		if !res.Oldest.IsZero() {
			resetAt = res.Oldest.Add(l.window)
		}
		return Decision{Allowed: false, Remaining: 0, ResetAt: resetAt}, nil
	}

	remaining := l.limit - res.Count - 1
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Remaining: remaining, ResetAt: now.Add(l.window)}, nil
}

// Reset clears the window for one identity
func (l *Limiter) Reset(ctx context.Context, identity string) error {
	return l.store.Reset(ctx, identity)
}

// ClearAll drops every tracked window
func (l *Limiter) ClearAll(ctx context.Context) error {
	return l.store.Clear(ctx)
}

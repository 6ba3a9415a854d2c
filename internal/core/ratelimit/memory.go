package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryWindows keeps per-identity windows in process memory.
// Buckets are never evicted unless a janitor is started, so long-lived
// processes serving many distinct identities should either run the janitor
// or use RedisWindows.
type MemoryWindows struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
}

// NewMemoryWindows builds an empty in-memory window store
func NewMemoryWindows() *MemoryWindows {
	return &MemoryWindows{buckets: make(map[string][]time.Time)}
}

// Take implements Windows
func (m *MemoryWindows) Take(_ context.Context, identity string, now, cutoff time.Time, limit int) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := m.buckets[identity]

	// prune entries at or before cutoff; survivors are already sorted
	keep := b[:0]
	for _, t := range b {
		if t.After(cutoff) {
			keep = append(keep, t)
		}
	}

	res := Result{Count: len(keep)}
	if len(keep) > 0 {
		res.Oldest = keep[0]
	}

	if len(keep) >= limit {
		m.buckets[identity] = keep
		return res, nil
	}

	res.Allowed = true
	m.buckets[identity] = append(keep, now)
	return res, nil
}

// Reset implements Windows
func (m *MemoryWindows) Reset(_ context.Context, identity string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.buckets, identity)
	return nil
}

// Clear implements Windows
func (m *MemoryWindows) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.buckets = make(map[string][]time.Time)
	return nil
}

// Len reports the number of tracked identities
func (m *MemoryWindows) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.buckets)
}

// StartJanitor sweeps idle buckets every interval until ctx is done.
// A bucket is idle when its newest entry is older than idle ago.
func (m *MemoryWindows) StartJanitor(ctx context.Context, interval, idle time.Duration) {
	if interval <= 0 || idle <= 0 {
		return
	}
	go func() {
		tick := time.NewTicker(interval)
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tick.C:
				m.sweep(now.Add(-idle))
			}
		}
	}()
}

func (m *MemoryWindows) sweep(stale time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, b := range m.buckets {
		if len(b) == 0 || !b[len(b)-1].After(stale) {
			delete(m.buckets, id)
		}
	}
}

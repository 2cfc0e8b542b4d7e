// Package cache stores raw external-API responses for a bounded time so the
// shell does not hammer the public Quran and prayer-time endpoints. The
// in-memory implementation is the default; a Redis-backed one is used when a
// Redis address is configured.
package cache

import (
	"context"
	"sync"
	"time"
)

// Cache is a byte-value TTL cache. Get returns (nil, false) on a miss;
// implementations never surface storage errors to callers, a failed lookup
// is just a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type entry struct {
	value   []byte
	expires time.Time
}

// Memory is a process-local Cache with lazy expiry.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	if m.now().After(e.expires) {
		delete(m.entries, key)
		return nil, false
	}
	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, true
}

func (m *Memory) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = entry{value: stored, expires: m.now().Add(ttl)}
	m.sweepLocked()
}

// sweepLocked drops expired entries. Called on writes so the map does not
// grow without bound between reads.
func (m *Memory) sweepLocked() {
	now := m.now()
	for k, e := range m.entries {
		if now.After(e.expires) {
			delete(m.entries, k)
		}
	}
}

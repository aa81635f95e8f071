// Package memorystore is a process-local key-value store with TTL support.
// It only suits single-instance deployments, since flows started on one instance
// cannot be completed on another.
package memorystore

import (
	"context"
	"sync"
	"time"
)

// DefaultSweepInterval is how often expired entries are removed by Run.
const DefaultSweepInterval = time.Minute

type item struct {
	value   []byte
	expires time.Time
}

func (i item) expired(now time.Time) bool {
	return !i.expires.IsZero() && now.After(i.expires)
}

// KV stores values in a map guarded by a mutex.
type KV struct {
	mu    sync.Mutex
	items map[string]item
	// now is swapped in tests.
	now func() time.Time
}

// NewKV returns an empty KV.
func NewKV() *KV {
	return &KV{items: map[string]item{}, now: time.Now}
}

func (k *KV) Get(_ context.Context, key string) ([]byte, bool, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	it, ok := k.items[key]
	if !ok {
		return nil, false, nil
	}
	if it.expired(k.now()) {
		delete(k.items, key)
		return nil, false, nil
	}
	return append([]byte(nil), it.value...), true, nil
}

// Set stores a copy of value. A non-positive ttl never expires.
func (k *KV) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	var expires time.Time
	if ttl > 0 {
		expires = k.now().Add(ttl)
	}
	k.items[key] = item{value: append([]byte(nil), value...), expires: expires}
	return nil
}

func (k *KV) Del(_ context.Context, key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	delete(k.items, key)
	return nil
}

// Len returns the number of stored entries, expired ones included until they are swept.
func (k *KV) Len() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.items)
}

// Sweep removes all expired entries.
func (k *KV) Sweep() {
	k.mu.Lock()
	defer k.mu.Unlock()

	now := k.now()
	for key, it := range k.items {
		if it.expired(now) {
			delete(k.items, key)
		}
	}
}

// Run sweeps periodically until the context is cancelled.
func (k *KV) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.Sweep()
		}
	}
}

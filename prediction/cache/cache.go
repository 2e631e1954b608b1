package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"encore.dev/rlog"
)

// FetchFunc produces a fresh value for a cache key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	value      any
	cachedAt   time.Time
	freshUntil time.Time
	staleUntil time.Time
}

// Cache is an in-process TTL cache with stale-while-revalidate semantics.
// Concurrent misses for one key share a single fetch; a stale-but-usable
// hit serves immediately and triggers at most one detached background
// revalidation per key.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*entry

	group      singleflight.Group
	refreshing map[string]bool

	// now and runAsync are swapped out in tests.
	now      func() time.Time
	runAsync func(op string, fn func(ctx context.Context) error)
}

func New() *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		refreshing: make(map[string]bool),
		now:        time.Now,
		runAsync:   detachedAsync,
	}
}

// GetOrSet returns the cached value for key, fetching when needed.
//
// Fresh hit: returns the cached value without fetching. Stale-but-usable
// hit with allowStale: returns the stale value and revalidates in the
// background, swallowing fetch errors. Miss or expired entry: fetches
// synchronously through a single flight and stores the result with
// freshUntil = now+ttl, staleUntil = now+staleTTL.
func (c *Cache) GetOrSet(ctx context.Context, key string, fetch FetchFunc, ttl, staleTTL time.Duration, allowStale bool) (any, error) {
	now := c.now()

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if ok {
		switch {
		case now.Before(e.freshUntil):
			return e.value, nil
		case allowStale && now.Before(e.staleUntil):
			c.revalidate(key, fetch, ttl, staleTTL)
			return e.value, nil
		}
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		// Another flight may have stored a usable value while this caller
		// waited for the slot.
		c.mu.RLock()
		e, ok := c.entries[key]
		c.mu.RUnlock()
		if ok && c.now().Before(e.freshUntil) {
			return e.value, nil
		}

		v, err := fetch(ctx)
		if err != nil {
			// The flight ends here, releasing the slot for a later miss.
			return nil, err
		}
		c.store(key, v, ttl, staleTTL)
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}

// revalidate kicks off at most one background refresh for key. The refresh
// runs on its own context, detached from the serving caller.
func (c *Cache) revalidate(key string, fetch FetchFunc, ttl, staleTTL time.Duration) {
	c.mu.Lock()
	if c.refreshing[key] {
		c.mu.Unlock()
		return
	}
	c.refreshing[key] = true
	c.mu.Unlock()

	c.runAsync("cache-revalidate:"+key, func(ctx context.Context) error {
		defer func() {
			c.mu.Lock()
			delete(c.refreshing, key)
			c.mu.Unlock()
		}()

		v, err := fetch(ctx)
		if err != nil {
			// Stale value keeps serving; the next stale hit retries.
			rlog.Warn("cache revalidation failed", "key", key, "error", err)
			return nil
		}
		c.store(key, v, ttl, staleTTL)
		return nil
	})
}

func (c *Cache) store(key string, value any, ttl, staleTTL time.Duration) {
	now := c.now()
	if staleTTL < ttl {
		staleTTL = ttl
	}
	c.mu.Lock()
	c.entries[key] = &entry{
		value:      value,
		cachedAt:   now,
		freshUntil: now.Add(ttl),
		staleUntil: now.Add(staleTTL),
	}
	c.mu.Unlock()
}

// Delete evicts one key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
}

// InvalidatePattern evicts every key with the given prefix.
func (c *Cache) InvalidatePattern(prefix string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			n++
		}
	}
	return n
}

// Len reports the number of stored entries, expired ones included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func detachedAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		}
	}()
}

// Package cache memoizes rendered feed pages keyed by scope and page
// number. Entries expire after a fixed TTL; writes that change a scope's
// membership invalidate every cached page of that scope at once.
package cache

import (
	"fmt"
	"sync"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultTTL bounds how long a stale entry can be served even when an
// invalidation was missed.
const DefaultTTL = 20 * time.Second

// FeedCache stores rendered feed pages. Invalidation bumps a per-scope
// generation counter; since the generation is part of every entry's key,
// one bump orphans all cached pages of the scope and the orphans age out
// via TTL. Two concurrent misses for the same key may both compute and
// both store; the last write wins.
type FeedCache struct {
	store *ristretto.Cache[string, []byte]
	ttl   time.Duration

	mu   sync.Mutex
	gens map[string]uint64
}

// New creates a FeedCache with the given TTL.
func New(ttl time.Duration) (*FeedCache, error) {
	store, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
		NumCounters: 1 << 14,
		MaxCost:     32 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &FeedCache{
		store: store,
		ttl:   ttl,
		gens:  make(map[string]uint64),
	}, nil
}

func (c *FeedCache) entryKey(scopeKey string, page int) string {
	c.mu.Lock()
	gen := c.gens[scopeKey]
	c.mu.Unlock()
	return fmt.Sprintf("%s@%d/%d", scopeKey, gen, page)
}

// GetOrCompute returns the cached rendering for the scope's page, or runs
// compute and stores its result. A compute error is returned as-is and
// nothing is cached.
func (c *FeedCache) GetOrCompute(scopeKey string, page int, compute func() ([]byte, error)) ([]byte, error) {
	key := c.entryKey(scopeKey, page)
	if val, ok := c.store.Get(key); ok {
		return val, nil
	}

	val, err := compute()
	if err != nil {
		return nil, err
	}

	cost := int64(len(val))
	if cost == 0 {
		cost = 1
	}
	c.store.SetWithTTL(key, val, cost, c.ttl)
	return val, nil
}

// Invalidate drops every cached page of the given scope.
func (c *FeedCache) Invalidate(scopeKey string) {
	c.mu.Lock()
	c.gens[scopeKey]++
	c.mu.Unlock()
}

// InvalidateAll drops the entire cache.
func (c *FeedCache) InvalidateAll() {
	c.mu.Lock()
	c.gens = make(map[string]uint64)
	c.mu.Unlock()
	c.store.Clear()
}

// Wait blocks until buffered writes have been applied. Tests use it to
// make a just-stored entry observable.
func (c *FeedCache) Wait() {
	c.store.Wait()
}

// Close releases the cache's resources.
func (c *FeedCache) Close() {
	c.store.Close()
}

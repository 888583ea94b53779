// Package querycache keeps short lived, process wide copies of backend
// reads. Entries are view projections, not authoritative state: a
// successful mutation marks the affected keys stale, the next read (or a
// registered refresher) re-fetches. Last writer wins on an entry; there
// are no cross entry invariants.
package querycache

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// FetchFunc loads the value for a key from the backend
type FetchFunc func(ctx context.Context) (interface{}, error)

type entry struct {
	value     interface{}
	stale     bool
	fetchedAt time.Time
}

// Cache is a keyed query cache. The zero value is not usable; call New
type Cache struct {
	mu         sync.Mutex
	entries    map[Key]*entry
	refreshers map[Key]FetchFunc

	// refreshWG lets tests wait for scheduled refreshes
	refreshWG sync.WaitGroup
}

// New returns an empty cache
func New() *Cache {
	return &Cache{
		entries:    map[Key]*entry{},
		refreshers: map[Key]FetchFunc{},
	}
}

// GetOrFetch returns the cached value for key when present and fresh,
// otherwise runs fetch and caches the result. A fetch error is returned
// as is and nothing is cached, so the previous (stale) value survives for
// the next attempt
func (c *Cache) GetOrFetch(ctx context.Context, key Key, fetch FetchFunc) (v interface{}, err error) {
	c.mu.Lock()
	if en, ok := c.entries[key]; ok && !en.stale {
		v = en.value
		c.mu.Unlock()
		return v, nil
	}
	c.mu.Unlock()

	// Fetch outside the lock. Concurrent callers may race to fetch the
	// same key; last writer wins, which is acceptable for read mostly
	// view projections
	v, err = fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.store(key, v)

	return v, nil
}

// Peek returns the cached value and whether it is present and fresh.
// It never triggers a fetch
func (c *Cache) Peek(key Key) (v interface{}, fresh bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	en, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return en.value, !en.stale
}

// RegisterRefresher installs a fetch func that will be run asynchronously
// whenever key is invalidated, so the fresh value is already in place by
// the time the next read happens. Without a refresher an invalidated key
// is simply re-fetched on next read
func (c *Cache) RegisterRefresher(key Key, fetch FetchFunc) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshers[key] = fetch
}

// Invalidate marks the given keys stale and schedules a refresh for every
// key with a registered refresher. It only schedules: callers may observe
// the stale value until the refresh resolves
func (c *Cache) Invalidate(keys ...Key) {
	for _, key := range keys {
		c.mu.Lock()
		if en, ok := c.entries[key]; ok {
			en.stale = true
		}
		refresh, ok := c.refreshers[key]
		if ok {
			c.refreshWG.Add(1)
		}
		c.mu.Unlock()

		if !ok {
			continue
		}

		key := key
		go func() {
			defer c.refreshWG.Done()
			v, err := refresh(context.Background())
			if err != nil {
				log.Warn().Err(err).Str("key", string(key)).
					Msg("querycache.refresh.1")
				return
			}
			c.store(key, v)
		}()
	}
}

// Wait blocks until all scheduled refreshes have resolved
func (c *Cache) Wait() {
	c.refreshWG.Wait()
}

func (c *Cache) store(key Key, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = &entry{
		value:     v,
		fetchedAt: time.Now(),
	}
}

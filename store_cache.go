package frozen

import (
	"context"

	lru "github.com/hashicorp/golang-lru"
)

// cachingStore fronts a Store with an in-memory cache.  Snapshot names
// are content hashes, so cached bytes can never go stale.  One cache
// serves one underlying store; switch caches when the store changes.
type cachingStore struct {
	inner Store
	cache *lru.ARCCache
}

// NewCachingStore wraps the given store with an LRU cache of the given
// size.  A snapshot already cached is not re-stored, and a snapshot
// already cached is loaded without touching the underlying store.
func NewCachingStore(inner Store, size int) Store {
	cache, err := lru.NewARC(size)
	if err != nil {
		panic(err)
	}
	return &cachingStore{inner, cache}
}

func (c *cachingStore) Store(ctx context.Context, name string, data []byte) error {
	if c.cache.Contains(name) {
		return nil
	}
	if err := c.inner.Store(ctx, name, data); err != nil {
		return err
	}
	c.cache.Add(name, data)
	return nil
}

func (c *cachingStore) Load(ctx context.Context, name string) ([]byte, error) {
	if data, ok := c.cache.Get(name); ok {
		return data.([]byte), nil
	}
	data, err := c.inner.Load(ctx, name)
	if err != nil {
		return nil, err
	}
	c.cache.Add(name, data)
	return data, nil
}

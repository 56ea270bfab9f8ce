package morphy

import (
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
)

// Resolver resolves an inflected form to its lemmas.
type Resolver interface {
	Resolve(form string, pos PartOfSpeech) ([]string, error)
}

var _ Resolver = (*Lemmatizer)(nil)

// DefaultCacheSize is the number of results a CachedResolver keeps when no
// size is configured.
const DefaultCacheSize = 4096

type cacheKey struct {
	pos  PartOfSpeech
	form string
}

// CachedResolver memoizes the results of another Resolver in a bounded
// LRU cache. Errors are not cached. It is safe for concurrent use.
type CachedResolver struct {
	next  Resolver
	cache *lru.Cache[cacheKey, []string]
}

// NewCachedResolver wraps next with an LRU cache of size entries.
func NewCachedResolver(next Resolver, size int) (*CachedResolver, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	cache, err := lru.New[cacheKey, []string](size)
	if err != nil {
		return nil, errors.Wrap(err, "result cache")
	}
	return &CachedResolver{next: next, cache: cache}, nil
}

// Resolve returns the cached result for (form, pos) or computes it.
// The returned slice belongs to the caller.
func (c *CachedResolver) Resolve(form string, pos PartOfSpeech) ([]string, error) {
	key := cacheKey{pos: pos, form: form}
	if lemmas, ok := c.cache.Get(key); ok {
		return append([]string{}, lemmas...), nil
	}
	lemmas, err := c.next.Resolve(form, pos)
	if err != nil {
		return nil, err
	}
	c.cache.Add(key, append([]string{}, lemmas...))
	return lemmas, nil
}

// Len returns the number of cached results.
func (c *CachedResolver) Len() int {
	return c.cache.Len()
}

// Purge drops every cached result.
func (c *CachedResolver) Purge() {
	c.cache.Purge()
}

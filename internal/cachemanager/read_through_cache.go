package cachemanager

import (
	"context"
	"sync/atomic"
	"time"
)

// Stats counts read-through outcomes.
type Stats struct {
	Hits   int64
	Misses int64
	Errors int64
}

// ReadThroughCache loads values through fn on a miss and stores successful
// results. Errors from fn are returned and never cached.
type ReadThroughCache[K comparable, V any, I any] struct {
	cache           CacheManager[K, V]
	fn              func(ctx context.Context, input I) (V, error)
	shouldSkipCache bool

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

func NewReadThroughCache[K comparable, V any, I any](
	cache CacheManager[K, V],
	fn func(ctx context.Context, input I) (V, error),
	shouldSkipCache bool,
) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{
		cache:           cache,
		fn:              fn,
		shouldSkipCache: shouldSkipCache,
	}
}

// Get returns the cached value for key, loading it from input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.get(ctx, key, input, ttl, func() (V, bool) { return r.cache.Get(ctx, key) })
}

// GetWithRefresh is Get that also extends the TTL of a hit.
func (r *ReadThroughCache[K, V, I]) GetWithRefresh(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	return r.get(ctx, key, input, ttl, func() (V, bool) { return r.cache.GetWithRefresh(ctx, key, ttl) })
}

func (r *ReadThroughCache[K, V, I]) get(ctx context.Context, key K, input I, ttl time.Duration, lookup func() (V, bool)) (V, error) {
	if r.shouldSkipCache {
		return r.load(ctx, input)
	}

	if value, ok := lookup(); ok {
		r.hits.Add(1)
		return value, nil
	}
	r.misses.Add(1)

	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}

	r.cache.Set(ctx, key, value, ttl)

	return value, nil
}

func (r *ReadThroughCache[K, V, I]) load(ctx context.Context, input I) (V, error) {
	value, err := r.fn(ctx, input)
	if err != nil {
		r.errors.Add(1)
	}
	return value, err
}

// Stats returns a snapshot of the counters.
func (r *ReadThroughCache[K, V, I]) Stats() Stats {
	return Stats{
		Hits:   r.hits.Load(),
		Misses: r.misses.Load(),
		Errors: r.errors.Load(),
	}
}

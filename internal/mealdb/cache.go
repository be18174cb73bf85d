package mealdb

import (
	"context"
	"time"

	"github.com/pageza/recipe-analyzer/backend/internal/logger"
	"github.com/pageza/recipe-analyzer/backend/internal/observability"
)

// Cache stores upstream response bodies keyed by request URL.
type Cache interface {
	// Get returns the cached body and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// CachingFetcher decorates a Fetcher with a Cache, honoring the ttl hint.
// Only successful bodies are stored, and only when ttl > 0. Cache failures
// are logged and bypassed.
type CachingFetcher struct {
	next  Fetcher
	cache Cache
	log   *logger.Logger
}

// NewCachingFetcher wraps next. A nil cache makes the decorator transparent.
func NewCachingFetcher(next Fetcher, cache Cache, log *logger.Logger) *CachingFetcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &CachingFetcher{
		next:  next,
		cache: cache,
		log:   log.With("component", "CachingFetcher"),
	}
}

// Fetch implements Fetcher.
func (f *CachingFetcher) Fetch(ctx context.Context, rawURL string, ttl time.Duration) ([]byte, error) {
	if f.cache == nil || ttl <= 0 {
		return f.next.Fetch(ctx, rawURL, ttl)
	}

	body, ok, err := f.cache.Get(ctx, rawURL)
	switch {
	case err != nil:
		f.log.Warn("cache read failed", "url", rawURL, "error", err)
	case ok:
		observability.UpstreamCacheTotal.WithLabelValues("hit").Inc()
		return body, nil
	}
	observability.UpstreamCacheTotal.WithLabelValues("miss").Inc()

	body, err = f.next.Fetch(ctx, rawURL, ttl)
	if err != nil {
		return nil, err
	}
	if err := f.cache.Set(ctx, rawURL, body, ttl); err != nil {
		f.log.Warn("cache write failed", "url", rawURL, "error", err)
	}
	return body, nil
}

package metadata

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/cache"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

// CachedFetcher keeps successful lookups in Redis. Cache errors are logged
// and fall through to the wrapped fetcher.
type CachedFetcher struct {
	next  Fetcher
	cache *cache.Cache
	ttl   time.Duration
}

func NewCachedFetcher(next Fetcher, c *cache.Cache, ttl time.Duration) *CachedFetcher {
	return &CachedFetcher{next: next, cache: c, ttl: ttl}
}

func cacheKey(tmdbID int, kind models.Kind) string {
	return fmt.Sprintf("tmdb:%s:%d", kind.TMDBPath(), tmdbID)
}

func (f *CachedFetcher) Fetch(ctx context.Context, tmdbID int, kind models.Kind) (*models.Descriptor, error) {
	key := cacheKey(tmdbID, kind)

	var d models.Descriptor
	hit, err := f.cache.GetJSON(ctx, key, &d)
	if err != nil {
		log.Printf("[metadata] error leyendo cache %s: %v", key, err)
	}
	if hit {
		return &d, nil
	}

	fresh, err := f.next.Fetch(ctx, tmdbID, kind)
	if err != nil {
		return nil, err
	}
	if err := f.cache.SetJSON(ctx, key, fresh, f.ttl); err != nil {
		log.Printf("[metadata] error escribiendo cache %s: %v", key, err)
	}
	return fresh, nil
}

// Popular caches each page for the same TTL as lookups. It fails with
// apperr.ErrMetadataFetch when the wrapped fetcher cannot list.
func (f *CachedFetcher) Popular(ctx context.Context, page int) (*PopularPage, error) {
	lister, ok := f.next.(PopularLister)
	if !ok {
		return nil, apperr.MetadataFetch("tmdb.popular", strconv.Itoa(page), errors.New("listing not supported"))
	}
	page = min(max(page, 1), MaxPopularPage)
	key := fmt.Sprintf("tmdb:movie:popular:%d", page)

	var p PopularPage
	hit, err := f.cache.GetJSON(ctx, key, &p)
	if err != nil {
		log.Printf("[metadata] error leyendo cache %s: %v", key, err)
	}
	if hit {
		return &p, nil
	}
	fresh, err := lister.Popular(ctx, page)
	if err != nil {
		return nil, err
	}
	if err := f.cache.SetJSON(ctx, key, fresh, f.ttl); err != nil {
		log.Printf("[metadata] error escribiendo cache %s: %v", key, err)
	}
	return fresh, nil
}

// Invalidate drops a cached lookup so the next Fetch goes upstream.
func (f *CachedFetcher) Invalidate(ctx context.Context, tmdbID int, kind models.Kind) error {
	return f.cache.Delete(ctx, cacheKey(tmdbID, kind))
}

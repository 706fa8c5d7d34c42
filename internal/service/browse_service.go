package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/cache"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

const (
	statsCacheKey = "stats:footer"
	statsCacheTTL = 5 * time.Minute
)

// BrowseService serves the read-only views that span collections: global
// search, footer stats and the genre pages.
type BrowseService struct {
	stores *repository.Stores
	cache  *cache.Cache
}

func NewBrowseService(stores *repository.Stores, c *cache.Cache) *BrowseService {
	return &BrowseService{stores: stores, cache: c}
}

// ================== SEARCH ==================

// Search matches titles in all three collections in parallel, up to limit
// per collection.
func (s *BrowseService) Search(ctx context.Context, q string, limit int) (*models.SearchResult, error) {
	out := &models.SearchResult{
		Movies:   []models.ContentRecord{},
		Series:   []models.ContentRecord{},
		HDTVRips: []models.ContentRecord{},
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return out, nil
	}
	limit = ordering.ClampLimit(limit, 10, ordering.MaxPageSize)
	filter := models.ContentFilter{TitleContains: q}

	targets := []struct {
		store repository.ContentStore
		dest  *[]models.ContentRecord
	}{
		{s.stores.Movies, &out.Movies},
		{s.stores.Series, &out.Series},
		{s.stores.HDTV, &out.HDTVRips},
	}

	p := pool.New().WithContext(ctx)
	for _, t := range targets {
		p.Go(func(ctx context.Context) error {
			recs, _, err := t.store.List(ctx, filter, ordering.SortLatest.Fields(), 0, int64(limit))
			if err != nil {
				return err
			}
			*t.dest = recs
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ================== STATS ==================

// FooterStats counts every collection. The result is cached for five minutes.
func (s *BrowseService) FooterStats(ctx context.Context) (*models.FooterStats, error) {
	var stats models.FooterStats
	hit, err := s.cache.GetJSON(ctx, statsCacheKey, &stats)
	if err != nil {
		log.Printf("[stats] error leyendo cache: %v", err)
	}
	if hit {
		return &stats, nil
	}

	p := pool.New().WithContext(ctx)
	count := func(store repository.ContentStore, dest *int64) {
		p.Go(func(ctx context.Context) error {
			n, err := store.Count(ctx, models.ContentFilter{})
			*dest = n
			return err
		})
	}
	count(s.stores.Movies, &stats.TotalMovies)
	count(s.stores.Series, &stats.TotalSeries)
	count(s.stores.HDTV, &stats.TotalHDTV)
	if err := p.Wait(); err != nil {
		return nil, err
	}
	stats.TotalTitles = stats.TotalMovies + stats.TotalSeries + stats.TotalHDTV

	if err := s.cache.SetJSON(ctx, statsCacheKey, stats, statsCacheTTL); err != nil {
		log.Printf("[stats] error escribiendo cache: %v", err)
	}
	return &stats, nil
}

// InvalidateStats drops the cached footer stats after a catalog write.
func (s *BrowseService) InvalidateStats(ctx context.Context) {
	if err := s.cache.Delete(ctx, statsCacheKey); err != nil {
		log.Printf("[stats] error invalidando cache: %v", err)
	}
}

// ================== GENRES ==================

// Genres lists movie genres with how many movies carry each.
func (s *BrowseService) Genres(ctx context.Context) ([]models.GenreCount, error) {
	return s.stores.Movies.GenreCounts(ctx)
}

// MoviesByGenre pages through one genre. latest/oldest sort on creation
// time; pinned puts pinned movies first.
func (s *BrowseService) MoviesByGenre(ctx context.Context, genre string, page, pageSize int, mode ordering.SortMode) (*models.Page[models.ContentRecord], error) {
	genre = strings.TrimSpace(genre)
	if genre == "" {
		return nil, apperr.Validation("genres.list", "genre is required")
	}
	p := ordering.NewPaging(page, pageSize)
	recs, total, err := s.stores.Movies.List(ctx, models.ContentFilter{Genre: genre}, mode.ChronoFields(), p.Skip(), p.Limit())
	if err != nil {
		return nil, err
	}
	return &models.Page[models.ContentRecord]{
		Results:     recs,
		Total:       total,
		TotalPages:  p.TotalPages(total),
		CurrentPage: p.Number,
	}, nil
}

// GenrePreview is the newest few movies of a genre for the home page rows.
func (s *BrowseService) GenrePreview(ctx context.Context, genre string, limit int) ([]models.ContentRecord, error) {
	page, err := s.MoviesByGenre(ctx, genre, 1, ordering.ClampLimit(limit, 10, ordering.MaxPageSize), ordering.SortLatest)
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

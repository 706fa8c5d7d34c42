package service

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/metadata"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

// CatalogLookup is TMDB metadata merged with what the catalog knows about
// the same id.
type CatalogLookup struct {
	models.Descriptor
	TMDBID    int             `json:"tmdbID"`
	Kind      models.Kind     `json:"kind"`
	InCatalog bool            `json:"inCatalog"`
	FileLink  string          `json:"fileLink,omitempty"`
	Pinned    bool            `json:"pinned"`
	Seasons   []models.Season `json:"seasons,omitempty"`
}

// RefreshReport says what a metadata refresh pass did.
type RefreshReport struct {
	Checked   int `json:"checked"`
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

type invalidator interface {
	Invalidate(ctx context.Context, tmdbID int, kind models.Kind) error
}

type MetadataService struct {
	fetcher metadata.Fetcher
	stores  *repository.Stores
}

func NewMetadataService(fetcher metadata.Fetcher, stores *repository.Stores) *MetadataService {
	return &MetadataService{fetcher: fetcher, stores: stores}
}

// Lookup proxies a TMDB lookup and overlays the catalog state for that id.
func (s *MetadataService) Lookup(ctx context.Context, kind models.Kind, tmdbID int) (*CatalogLookup, error) {
	if tmdbID <= 0 {
		return nil, apperr.Validation("tmdb.lookup", "tmdb id must be positive")
	}
	desc, err := s.fetcher.Fetch(ctx, tmdbID, kind)
	if err != nil {
		return nil, err
	}
	out := &CatalogLookup{Descriptor: *desc, TMDBID: tmdbID, Kind: kind}

	if err := s.overlay(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

// Popular lists TMDB's popular movies, marking the ones already in the
// catalog.
func (s *MetadataService) Popular(ctx context.Context, page int) (*models.Page[CatalogLookup], error) {
	lister, ok := s.fetcher.(metadata.PopularLister)
	if !ok {
		return nil, apperr.MetadataFetch("tmdb.popular", strconv.Itoa(page), errors.New("listing not supported"))
	}
	p, err := lister.Popular(ctx, page)
	if err != nil {
		return nil, err
	}
	out := &models.Page[CatalogLookup]{
		Results:     make([]CatalogLookup, 0, len(p.Results)),
		Total:       p.TotalResults,
		TotalPages:  p.TotalPages,
		CurrentPage: p.Page,
	}
	for _, t := range p.Results {
		item := CatalogLookup{Descriptor: t.Descriptor, TMDBID: t.TMDBID, Kind: models.KindMovie}
		if err := s.overlay(ctx, &item); err != nil {
			return nil, err
		}
		out.Results = append(out.Results, item)
	}
	return out, nil
}

func (s *MetadataService) overlay(ctx context.Context, out *CatalogLookup) error {
	rec, err := s.stores.Content(out.Kind).FindByTMDBID(ctx, out.TMDBID)
	if err != nil {
		return err
	}
	if rec != nil && !rec.Placeholder {
		out.InCatalog = true
		out.FileLink = rec.FileLink
		out.Pinned = rec.Pinned
		out.Seasons = rec.Seasons
	}
	return nil
}

// RefreshStale re-fetches metadata for records with an external source that
// have not been updated since olderThan ago, up to limit per collection.
// A failed record is logged and skipped.
func (s *MetadataService) RefreshStale(ctx context.Context, olderThan time.Duration, limit int) (*RefreshReport, error) {
	report := &RefreshReport{}
	before := time.Now().UTC().Add(-olderThan)

	for _, kind := range []models.Kind{models.KindMovie, models.KindSeries, models.KindHDTV} {
		store := s.stores.Content(kind)
		recs, err := store.StaleExternal(ctx, before, limit)
		if err != nil {
			return report, err
		}
		for _, rec := range recs {
			if ctx.Err() != nil {
				return report, ctx.Err()
			}
			report.Checked++
			if err := s.refreshOne(ctx, store, kind, &rec); err != nil {
				log.Printf("[metadata] error actualizando %s %s: %v", kind, rec.ID.Key(), err)
				report.Failed++
				continue
			}
			report.Refreshed++
		}
	}
	return report, nil
}

func (s *MetadataService) refreshOne(ctx context.Context, store repository.ContentStore, kind models.Kind, rec *models.ContentRecord) error {
	tmdbID, ok := rec.ID.External()
	if rec.TMDBID != nil {
		tmdbID, ok = *rec.TMDBID, true
	}
	if !ok {
		return nil
	}
	if inv, ok := s.fetcher.(invalidator); ok {
		if err := inv.Invalidate(ctx, tmdbID, kind); err != nil {
			log.Printf("[metadata] error invalidando %d: %v", tmdbID, err)
		}
	}
	desc, err := s.fetcher.Fetch(ctx, tmdbID, kind)
	if err != nil {
		return err
	}
	_, err = store.Update(ctx, rec.ID, &models.ContentPatch{Descriptor: desc, UpdatedAt: time.Now().UTC()})
	return err
}

// internal/service/catalog_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/metadata"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/repository"
	"github.com/madhangowdaa/mak-backend/internal/seasons"
)

// CatalogService handles one kind of record: movies, series or hdtv.
type CatalogService struct {
	kind    models.Kind
	store   repository.ContentStore
	fetcher metadata.Fetcher
	now     func() time.Time
}

func NewCatalogService(kind models.Kind, store repository.ContentStore, fetcher metadata.Fetcher) *CatalogService {
	return &CatalogService{
		kind:    kind,
		store:   store,
		fetcher: fetcher,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *CatalogService) Kind() models.Kind { return s.kind }

func (s *CatalogService) op(name string) string { return string(s.kind) + "." + name }

// ListQuery is a page request over the catalog.
type ListQuery struct {
	Query    string
	Genre    string
	Page     int
	PageSize int
	Sort     ordering.SortMode
}

// ================== ADD ==================

// Add creates a record from either a TMDB id or inline custom metadata.
// Adding a movie that only exists as an upcoming placeholder promotes the
// placeholder instead of failing as a duplicate.
func (s *CatalogService) Add(ctx context.Context, req models.ContentCreateRequest) (*models.ContentRecord, error) {
	op := s.op("add")

	hasTMDB := req.TMDBID != 0
	hasCustom := req.CustomData != nil
	switch {
	case hasTMDB == hasCustom:
		return nil, apperr.Validation(op, "exactly one of tmdbID or customData is required")
	case req.TMDBID < 0:
		return nil, apperr.Validation(op, "tmdbID must be positive")
	case s.kind != models.KindSeries && strings.TrimSpace(req.FileLink) == "":
		return nil, apperr.Validation(op, "fileLink is required")
	case s.kind != models.KindSeries && len(req.Seasons) > 0:
		return nil, apperr.Validation(op, "seasons are only valid for series")
	}
	pos, err := ordering.ParsePosition(req.Position)
	if err != nil {
		return nil, apperr.Validation(op, err.Error())
	}
	if pos == ordering.PositionKeep {
		pos = ordering.PositionLast
	}

	now := s.now()
	rec := &models.ContentRecord{
		Kind:      s.kind,
		FileLink:  strings.TrimSpace(req.FileLink),
		Pinned:    req.Pinned,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if len(req.Seasons) > 0 {
		tree, err := normalizeSeasons(req.Seasons)
		if err != nil {
			return nil, err
		}
		rec.Seasons = tree.Seasons()
	}

	if hasTMDB {
		existing, err := s.store.FindByTMDBID(ctx, req.TMDBID)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			if existing.Placeholder {
				return s.promote(ctx, existing, rec, pos)
			}
			return nil, apperr.Duplicate(op, existing.ID.String())
		}
		desc, err := s.fetcher.Fetch(ctx, req.TMDBID, s.kind)
		if err != nil {
			return nil, err
		}
		tmdbID := req.TMDBID
		rec.ID = models.ExternalID(req.TMDBID)
		rec.TMDBID = &tmdbID
		rec.Descriptor = *desc
	} else {
		desc, err := s.customDescriptor(ctx, op, *req.CustomData, models.ContentID{})
		if err != nil {
			return nil, err
		}
		rec.ID = models.NewLocalID()
		rec.Descriptor = *desc
		rec.IsCustom = true
	}
	rec.TitleKey = models.TitleKey(rec.Title)
	if rec.Genres == nil {
		rec.Genres = []string{}
	}

	if rec.Order, err = ordering.NextOrder(ctx, s.store, pos); err != nil {
		return nil, err
	}
	if err := s.store.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// promote turns an upcoming placeholder into a regular record, keeping its
// metadata, clicks and flags.
func (s *CatalogService) promote(ctx context.Context, placeholder, incoming *models.ContentRecord, pos ordering.Position) (*models.ContentRecord, error) {
	order, err := ordering.NextOrder(ctx, s.store, pos)
	if err != nil {
		return nil, err
	}
	no := false
	patch := &models.ContentPatch{
		Placeholder: &no,
		Order:       &order,
		Pinned:      &incoming.Pinned,
		UpdatedAt:   s.now(),
	}
	if incoming.FileLink != "" {
		patch.FileLink = models.Some(incoming.FileLink)
	}
	rec, err := s.store.Update(ctx, placeholder.ID, patch)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound(s.op("add"), placeholder.ID.String())
	}
	if len(incoming.Seasons) > 0 {
		return s.store.ReplaceSeasons(ctx, rec.ID, rec.Revision, incoming.Seasons, s.now())
	}
	return rec, nil
}

// customDescriptor trims and validates inline metadata and rejects a title
// already used by a record other than self.
func (s *CatalogService) customDescriptor(ctx context.Context, op string, desc models.Descriptor, self models.ContentID) (*models.Descriptor, error) {
	desc.Title = strings.TrimSpace(desc.Title)
	if desc.Title == "" {
		return nil, apperr.Validation(op, "customData.title is required")
	}
	if desc.Genres == nil {
		desc.Genres = []string{}
	}
	other, err := s.store.FindByTitleKey(ctx, models.TitleKey(desc.Title))
	if err != nil {
		return nil, err
	}
	if other != nil && other.ID != self {
		return nil, apperr.Duplicate(op, desc.Title)
	}
	return &desc, nil
}

// find resolves id to a visible record.
func (s *CatalogService) find(ctx context.Context, op string, id models.ContentID) (*models.ContentRecord, error) {
	rec, err := models.Resolve(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.Placeholder {
		return nil, apperr.NotFound(op, id.String())
	}
	return rec, nil
}

func normalizeSeasons(in []models.Season) (*seasons.Tree, error) {
	tree := seasons.FromSeasons(nil)
	for _, season := range in {
		for _, v := range season.Versions {
			if err := tree.UpsertLeaf(season.SeasonNumber, season.Language, v.Quality, v.FileLink); err != nil {
				return nil, err
			}
		}
	}
	return tree, nil
}

// ================== UPDATE ==================

// Update applies a partial update. See models.ContentUpdateRequest for the
// meaning of absent and null fields.
func (s *CatalogService) Update(ctx context.Context, id models.ContentID, req models.ContentUpdateRequest) (*models.ContentRecord, error) {
	op := s.op("update")

	rec, err := s.find(ctx, op, id)
	if err != nil {
		return nil, err
	}
	id = rec.ID

	patch := &models.ContentPatch{UpdatedAt: s.now()}

	switch {
	case req.TMDBID.Present():
		n := req.TMDBID.Value
		if n <= 0 {
			return nil, apperr.Validation(op, "tmdbID must be positive")
		}
		owner, err := s.store.FindByTMDBID(ctx, n)
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != rec.ID {
			return nil, apperr.Duplicate(op, owner.ID.String())
		}
		desc, err := s.fetcher.Fetch(ctx, n, s.kind)
		if err != nil {
			return nil, err
		}
		custom := false
		patch.Descriptor = desc
		patch.TMDBID = models.Some(n)
		patch.IsCustom = &custom
	case req.TMDBID.Set && req.TMDBID.Null:
		if rec.ID.IsExternal() {
			return nil, apperr.Validation(op, "cannot detach a record keyed by its tmdbID")
		}
		custom := true
		patch.TMDBID = models.Null[int]()
		patch.IsCustom = &custom
		if req.CustomData.Present() {
			desc, err := s.customDescriptor(ctx, op, req.CustomData.Value, rec.ID)
			if err != nil {
				return nil, err
			}
			patch.Descriptor = desc
		}
	case req.CustomData.Present():
		desc, err := s.customDescriptor(ctx, op, req.CustomData.Value, rec.ID)
		if err != nil {
			return nil, err
		}
		patch.Descriptor = desc
	case rec.TMDBID != nil:
		// no new source: refresh from the one we have
		desc, err := s.fetcher.Fetch(ctx, *rec.TMDBID, s.kind)
		if err != nil {
			return nil, err
		}
		patch.Descriptor = desc
	}

	if req.FileLink.Set {
		if req.FileLink.Null || strings.TrimSpace(req.FileLink.Value) == "" {
			if s.kind != models.KindSeries {
				return nil, apperr.Validation(op, "fileLink cannot be cleared")
			}
			patch.FileLink = models.Null[string]()
		} else {
			patch.FileLink = models.Some(strings.TrimSpace(req.FileLink.Value))
		}
	}

	if req.Position.Present() {
		pos, err := ordering.ParsePosition(req.Position.Value)
		if err != nil {
			return nil, apperr.Validation(op, err.Error())
		}
		if pos != ordering.PositionKeep {
			order, err := ordering.Reorder(ctx, s.store, rec.Order, pos)
			if err != nil {
				return nil, err
			}
			patch.Order = &order
		}
	}

	if req.Pinned.Present() {
		pinned := req.Pinned.Value
		patch.Pinned = &pinned
	}

	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound(op, id.String())
	}
	return updated, nil
}

// ================== DELETE / CLICK / READ ==================

// Delete removes the record id resolves to. Upcoming placeholders can be
// deleted here too.
func (s *CatalogService) Delete(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	found, err := models.Resolve(ctx, s.store, id)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, apperr.NotFound(s.op("delete"), id.String())
	}
	rec, err := s.store.Delete(ctx, found.ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound(s.op("delete"), id.String())
	}
	return rec, nil
}

// IncrementClicks bumps the counter atomically and returns the new record.
func (s *CatalogService) IncrementClicks(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	found, err := s.find(ctx, s.op("click"), id)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.IncrementClicks(ctx, found.ID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apperr.NotFound(s.op("click"), id.String())
	}
	return rec, nil
}

func (s *CatalogService) Get(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	return s.find(ctx, s.op("get"), id)
}

func (s *CatalogService) List(ctx context.Context, q ListQuery) (*models.Page[models.ContentRecord], error) {
	return s.page(ctx, q, q.Sort.Fields())
}

func (s *CatalogService) page(ctx context.Context, q ListQuery, sortBy []ordering.SortField) (*models.Page[models.ContentRecord], error) {
	p := ordering.NewPaging(q.Page, q.PageSize)
	filter := models.ContentFilter{TitleContains: strings.TrimSpace(q.Query), Genre: q.Genre}

	recs, total, err := s.store.List(ctx, filter, sortBy, p.Skip(), p.Limit())
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

// languageCodes lets routes name a language instead of its ISO 639-1 code.
var languageCodes = map[string]string{
	"english":   "en",
	"hindi":     "hi",
	"kannada":   "kn",
	"malayalam": "ml",
	"tamil":     "ta",
	"telugu":    "te",
}

// TopByLanguage returns the most clicked records in one original language,
// newest first on ties.
func (s *CatalogService) TopByLanguage(ctx context.Context, language string, limit int) ([]models.ContentRecord, error) {
	language = strings.ToLower(strings.TrimSpace(language))
	if language == "" {
		return nil, apperr.Validation(s.op("top"), "language is required")
	}
	if code, ok := languageCodes[language]; ok {
		language = code
	}
	limit = ordering.ClampLimit(limit, 10, ordering.MaxPageSize)
	recs, _, err := s.store.List(ctx, models.ContentFilter{Language: language},
		[]ordering.SortField{{Field: "clicks", Desc: true}, {Field: "createdAt", Desc: true}}, 0, int64(limit))
	return recs, err
}

// Recent returns the newest records by creation time, ignoring manual order.
func (s *CatalogService) Recent(ctx context.Context, limit int) ([]models.ContentRecord, error) {
	limit = ordering.ClampLimit(limit, 10, ordering.MaxPageSize)
	recs, _, err := s.store.List(ctx, models.ContentFilter{},
		[]ordering.SortField{{Field: "createdAt", Desc: true}}, 0, int64(limit))
	return recs, err
}

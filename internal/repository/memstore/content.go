// Package memstore is an in-process implementation of the catalog stores.
// It mirrors the Mongo repositories operation for operation (same nil,nil
// on missing documents, same duplicate and conflict errors) and is used for
// local runs with STORAGE=memory and by package tests.
package memstore

import (
	"cmp"
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
)

type ContentStore struct {
	mu      sync.Mutex
	kind    models.Kind
	records map[string]*models.ContentRecord
}

func NewContentStore(kind models.Kind) *ContentStore {
	return &ContentStore{kind: kind, records: make(map[string]*models.ContentRecord)}
}

func clone(rec *models.ContentRecord) *models.ContentRecord {
	out := *rec
	out.Genres = append([]string(nil), rec.Genres...)
	if rec.Seasons != nil {
		out.Seasons = make([]models.Season, len(rec.Seasons))
		for i, s := range rec.Seasons {
			s.Versions = append([]models.Version(nil), s.Versions...)
			out.Seasons[i] = s
		}
	}
	return &out
}

func (s *ContentStore) OrderBounds(ctx context.Context) (int, int, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var lo, hi int
	found := false
	for _, rec := range s.records {
		if rec.Placeholder {
			continue
		}
		if !found {
			lo, hi, found = rec.Order, rec.Order, true
			continue
		}
		lo = min(lo, rec.Order)
		hi = max(hi, rec.Order)
	}
	return lo, hi, found, nil
}

func (s *ContentStore) FindByID(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[id.Key()]; ok {
		return clone(rec), nil
	}
	return nil, nil
}

func (s *ContentStore) FindByTMDBID(ctx context.Context, tmdbID int) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rec, ok := s.records[models.ExternalID(tmdbID).Key()]; ok {
		return clone(rec), nil
	}
	for _, rec := range s.records {
		if rec.TMDBID != nil && *rec.TMDBID == tmdbID {
			return clone(rec), nil
		}
	}
	return nil, nil
}

func (s *ContentStore) FindByTitleKey(ctx context.Context, key string) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range s.records {
		if rec.TitleKey == key {
			return clone(rec), nil
		}
	}
	return nil, nil
}

func (s *ContentStore) FindMany(ctx context.Context, ids []models.ContentID) ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContentRecord, 0, len(ids))
	for _, id := range ids {
		if rec, ok := s.records[id.Key()]; ok {
			out = append(out, *clone(rec))
		}
	}
	return out, nil
}

func (s *ContentStore) Insert(ctx context.Context, rec *models.ContentRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := rec.ID.Key()
	if _, exists := s.records[key]; exists {
		return apperr.Duplicate("insert", rec.ID.String())
	}
	s.records[key] = clone(rec)
	return nil
}

func (s *ContentStore) Update(ctx context.Context, id models.ContentID, patch *models.ContentPatch) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, nil
	}
	patch.Apply(rec)
	return clone(rec), nil
}

func (s *ContentStore) Delete(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, nil
	}
	delete(s.records, id.Key())
	return rec, nil
}

func (s *ContentStore) IncrementClicks(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, nil
	}
	rec.Clicks++
	return clone(rec), nil
}

func matches(rec *models.ContentRecord, f models.ContentFilter) bool {
	if rec.Placeholder && !f.IncludePlaceholders {
		return false
	}
	if f.TitleContains != "" && !strings.Contains(strings.ToLower(rec.Title), strings.ToLower(f.TitleContains)) {
		return false
	}
	if f.Language != "" && rec.Language != f.Language {
		return false
	}
	if f.Genre != "" {
		hit := false
		for _, g := range rec.Genres {
			if strings.EqualFold(g, f.Genre) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

func (s *ContentStore) List(ctx context.Context, f models.ContentFilter, sortBy []ordering.SortField, skip, limit int64) ([]models.ContentRecord, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var all []*models.ContentRecord
	for _, rec := range s.records {
		if matches(rec, f) {
			all = append(all, rec)
		}
	}
	sortRecords(all, sortBy)

	total := int64(len(all))
	return window(all, skip, limit), total, nil
}

func (s *ContentStore) Count(ctx context.Context, f models.ContentFilter) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for _, rec := range s.records {
		if matches(rec, f) {
			n++
		}
	}
	return n, nil
}

func (s *ContentStore) GenreCounts(ctx context.Context) ([]models.GenreCount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := map[string]int64{}
	for _, rec := range s.records {
		if rec.Placeholder {
			continue
		}
		for _, g := range rec.Genres {
			counts[g]++
		}
	}
	out := make([]models.GenreCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.GenreCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ContentStore) ReplaceSeasons(ctx context.Context, id models.ContentID, revision int64, seasons []models.Season, now time.Time) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, nil
	}
	if rec.Revision != revision {
		return nil, apperr.ErrConflict
	}
	rec.Seasons = clone(&models.ContentRecord{Seasons: seasons}).Seasons
	rec.Revision++
	rec.UpdatedAt = now
	return clone(rec), nil
}

func (s *ContentStore) SetFlag(ctx context.Context, id models.ContentID, kind models.FlagKind, state models.FlagState, now time.Time) (*models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.records[id.Key()]
	if !ok {
		return nil, nil
	}
	rec.SetFlag(kind, state)
	rec.UpdatedAt = now
	return clone(rec), nil
}

func (s *ContentStore) ListFlagged(ctx context.Context, kind models.FlagKind, limit int) ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*models.ContentRecord
	for _, rec := range s.records {
		if rec.Placeholder && kind != models.FlagUpcoming {
			continue
		}
		if rec.Flag(kind).Active {
			all = append(all, rec)
		}
	}
	sortRecords(all, ordering.FlagFields(kind.OrderField()))
	return window(all, 0, int64(limit)), nil
}

func (s *ContentStore) StaleExternal(ctx context.Context, before time.Time, limit int) ([]models.ContentRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var all []*models.ContentRecord
	for _, rec := range s.records {
		if (rec.ID.IsExternal() || rec.TMDBID != nil) && rec.UpdatedAt.Before(before) {
			all = append(all, rec)
		}
	}
	sortRecords(all, []ordering.SortField{{Field: "updatedAt"}})
	return window(all, 0, int64(limit)), nil
}

func window(all []*models.ContentRecord, skip, limit int64) []models.ContentRecord {
	out := []models.ContentRecord{}
	for i := skip; i < int64(len(all)); i++ {
		if limit > 0 && int64(len(out)) >= limit {
			break
		}
		out = append(out, *clone(all[i]))
	}
	return out
}

func sortRecords(recs []*models.ContentRecord, fields []ordering.SortField) {
	sort.SliceStable(recs, func(i, j int) bool {
		for _, f := range fields {
			c := compareField(recs[i], recs[j], f.Field)
			if f.Desc {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return recs[i].ID.Key() < recs[j].ID.Key()
	})
}

// compareField orders like Mongo: a missing value sorts before any value.
func compareField(a, b *models.ContentRecord, field string) int {
	switch field {
	case "order":
		return cmp.Compare(a.Order, b.Order)
	case "createdAt":
		return a.CreatedAt.Compare(b.CreatedAt)
	case "updatedAt":
		return a.UpdatedAt.Compare(b.UpdatedAt)
	case "clicks":
		return cmp.Compare(a.Clicks, b.Clicks)
	case "pinned":
		return cmp.Compare(boolInt(a.Pinned), boolInt(b.Pinned))
	case "title":
		return cmp.Compare(a.Title, b.Title)
	case "trending.trendingOrder":
		return compareIntPtr(a.Trending.TrendingOrder, b.Trending.TrendingOrder)
	case "upcoming.upcomingOrder":
		return compareIntPtr(a.Upcoming.UpcomingOrder, b.Upcoming.UpcomingOrder)
	}
	return 0
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func compareIntPtr(a, b *int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return cmp.Compare(*a, *b)
}

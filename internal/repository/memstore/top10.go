package memstore

import (
	"context"
	"sort"
	"sync"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

type RankStore struct {
	mu      sync.Mutex
	entries map[string]*models.Top10Entry
}

func NewRankStore() *RankStore {
	return &RankStore{entries: make(map[string]*models.Top10Entry)}
}

func (s *RankStore) Get(ctx context.Context, id models.ContentID) (*models.Top10Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id.Key()]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (s *RankStore) Count(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.entries)), nil
}

func (s *RankStore) ShiftRanks(ctx context.Context, from, to, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.Rank >= from && (to <= 0 || e.Rank <= to) {
			e.Rank += delta
		}
	}
	return nil
}

func (s *RankStore) Insert(ctx context.Context, e *models.Top10Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[e.ContentID.Key()]; ok {
		return apperr.Duplicate("top10.insert", e.ContentID.String())
	}
	cp := *e
	s.entries[e.ContentID.Key()] = &cp
	return nil
}

func (s *RankStore) SetRank(ctx context.Context, id models.ContentID, rank int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.entries[id.Key()]; ok {
		e.Rank = rank
	}
	return nil
}

func (s *RankStore) Delete(ctx context.Context, id models.ContentID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id.Key())
	return nil
}

func (s *RankStore) All(ctx context.Context) ([]models.Top10Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Top10Entry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, *e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].ContentID.Key() < out[j].ContentID.Key()
	})
	return out, nil
}

package service

import (
	"context"
	"log"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ranking"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

// Top10View is the ranked list joined with its movies. Orphans lists entries
// whose movie no longer exists; they are left out of Results.
type Top10View struct {
	Results []models.RankedContent `json:"results"`
	Orphans []models.ContentID     `json:"orphans"`
}

type Top10Service struct {
	list   *ranking.List
	movies repository.ContentStore
}

func NewTop10Service(ranks repository.RankStore, movies repository.ContentStore) *Top10Service {
	return &Top10Service{list: ranking.NewList(ranks, movies), movies: movies}
}

func (s *Top10Service) List(ctx context.Context) (*Top10View, error) {
	entries, err := s.list.Entries(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]models.ContentID, len(entries))
	for i, e := range entries {
		ids[i] = e.ContentID
	}
	recs, err := s.movies.FindMany(ctx, ids)
	if err != nil {
		return nil, err
	}
	byKey := make(map[string]models.ContentRecord, len(recs))
	for _, r := range recs {
		byKey[r.ID.Key()] = r
	}

	view := &Top10View{Results: []models.RankedContent{}, Orphans: []models.ContentID{}}
	for _, e := range entries {
		rec, ok := byKey[e.ContentID.Key()]
		if !ok || rec.Placeholder {
			log.Printf("[top10] la entrada %s (rank %d) no tiene película", e.ContentID.Key(), e.Rank)
			view.Orphans = append(view.Orphans, e.ContentID)
			continue
		}
		view.Results = append(view.Results, models.RankedContent{ContentRecord: rec, Rank: e.Rank})
	}
	return view, nil
}

func (s *Top10Service) Add(ctx context.Context, req models.Top10Request) (*models.Top10Entry, error) {
	if req.TMDBID <= 0 {
		return nil, apperr.Validation("top10.insert", "tmdbID is required")
	}
	return s.list.Insert(ctx, models.ExternalID(req.TMDBID), req.Rank)
}

// entryID maps a client id onto the id the entry is stored under. Ids with
// no record (orphans) are used as given.
func (s *Top10Service) entryID(ctx context.Context, id models.ContentID) (models.ContentID, error) {
	rec, err := models.Resolve(ctx, s.movies, id)
	if err != nil {
		return id, err
	}
	if rec == nil {
		return id, nil
	}
	return rec.ID, nil
}

// Move changes the rank of id. unpin also clears the movie's pinned flag.
func (s *Top10Service) Move(ctx context.Context, id models.ContentID, rank int, unpin bool) (*models.Top10Entry, error) {
	id, err := s.entryID(ctx, id)
	if err != nil {
		return nil, err
	}
	entry, err := s.list.Move(ctx, id, rank)
	if err != nil {
		return nil, err
	}
	if unpin {
		no := false
		if _, err := s.movies.Update(ctx, id, &models.ContentPatch{Pinned: &no}); err != nil {
			return entry, err
		}
	}
	return entry, nil
}

func (s *Top10Service) Remove(ctx context.Context, id models.ContentID) (*models.Top10Entry, error) {
	id, err := s.entryID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.list.Remove(ctx, id)
}

func (s *Top10Service) Repair(ctx context.Context) (*ranking.RepairReport, error) {
	return s.list.Repair(ctx)
}

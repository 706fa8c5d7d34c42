package service

import (
	"context"
	"errors"
	"time"

	"github.com/avast/retry-go/v4"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/seasons"
)

// seasonWriteAttempts bounds the re-read/re-merge loop when another writer
// changed the same series in between.
const seasonWriteAttempts = 3

// UpsertVersion sets one quality of one season/language of a series.
func (s *CatalogService) UpsertVersion(ctx context.Context, id models.ContentID, req models.SeasonUpsertRequest) (*models.ContentRecord, error) {
	return s.mutateSeasons(ctx, s.op("seasons.upsert"), id, func(t *seasons.Tree) error {
		return t.UpsertLeaf(req.SeasonNumber, req.Language, req.Quality, req.FileLink)
	})
}

// DeleteSeasonNode removes a season, or one quality of it; see seasons.Tree.Delete.
func (s *CatalogService) DeleteSeasonNode(ctx context.Context, id models.ContentID, sel seasons.Selector) (*models.ContentRecord, error) {
	return s.mutateSeasons(ctx, s.op("seasons.delete"), id, func(t *seasons.Tree) error {
		_, err := t.Delete(sel)
		return err
	})
}

func (s *CatalogService) mutateSeasons(ctx context.Context, op string, id models.ContentID, edit func(*seasons.Tree) error) (*models.ContentRecord, error) {
	if s.kind != models.KindSeries {
		return nil, apperr.Validation(op, "seasons are only valid for series")
	}

	var out *models.ContentRecord
	err := retry.Do(
		func() error {
			rec, err := s.find(ctx, op, id)
			if err != nil {
				return err
			}
			tree := seasons.FromSeasons(rec.Seasons)
			if err := edit(tree); err != nil {
				return err
			}
			updated, err := s.store.ReplaceSeasons(ctx, rec.ID, rec.Revision, tree.Seasons(), s.now())
			if err != nil {
				return err
			}
			if updated == nil {
				return apperr.NotFound(op, id.String())
			}
			out = updated
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(seasonWriteAttempts),
		retry.Delay(10*time.Millisecond),
		retry.RetryIf(func(err error) bool { return errors.Is(err, apperr.ErrConflict) }),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, err
	}
	return out, nil
}

package service

import (
	"context"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/flags"
	"github.com/madhangowdaa/mak-backend/internal/metadata"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository"
)

// NewTrendingSet flags existing movies as trending.
func NewTrendingSet(movies repository.ContentStore) *flags.Set {
	return flags.NewTrending(movies)
}

// NewUpcomingSet flags movies as upcoming, creating a placeholder movie from
// TMDB metadata when the id is not in the catalog yet.
func NewUpcomingSet(movies repository.ContentStore, fetcher metadata.Fetcher) *flags.Set {
	return flags.NewUpcoming(movies, placeholderBuilder(fetcher))
}

func placeholderBuilder(fetcher metadata.Fetcher) flags.PlaceholderBuilder {
	return func(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
		n, ok := id.External()
		if !ok {
			// nothing to describe a local id with
			return nil, apperr.ContentNotFound("upcoming.set", id.String())
		}
		desc, err := fetcher.Fetch(ctx, n, models.KindMovie)
		if err != nil {
			return nil, err
		}
		now := time.Now().UTC()
		if desc.Genres == nil {
			desc.Genres = []string{}
		}
		return &models.ContentRecord{
			ID:          id,
			Kind:        models.KindMovie,
			TMDBID:      &n,
			Descriptor:  *desc,
			TitleKey:    models.TitleKey(desc.Title),
			Placeholder: true,
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil
	}
}

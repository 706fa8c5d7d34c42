package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

func TestUpgradedCustomEntryIsAddressableByTMDBID(t *testing.T) {
	ctx := context.Background()
	movies, stores, f := newCatalog(models.KindMovie)
	custom, err := movies.Add(ctx, models.ContentCreateRequest{CustomData: &models.Descriptor{Title: "Home Video"}, FileLink: "x"})
	require.NoError(t, err)
	_, err = movies.Update(ctx, custom.ID, models.ContentUpdateRequest{TMDBID: models.Some(42)})
	require.NoError(t, err)
	byTMDB := models.ExternalID(42)

	got, err := movies.Get(ctx, byTMDB)
	require.NoError(t, err)
	assert.Equal(t, custom.ID, got.ID)

	clicked, err := movies.IncrementClicks(ctx, byTMDB)
	require.NoError(t, err)
	assert.Equal(t, custom.ID, clicked.ID)
	assert.Equal(t, int64(1), clicked.Clicks)

	top := NewTop10Service(stores.Top10, stores.Movies)
	entry, err := top.Add(ctx, models.Top10Request{TMDBID: 42, Rank: 1})
	require.NoError(t, err)
	assert.Equal(t, custom.ID, entry.ContentID, "entries are keyed by the record id")
	view, err := top.List(ctx)
	require.NoError(t, err)
	require.Len(t, view.Results, 1)
	assert.Empty(t, view.Orphans)
	_, err = top.Add(ctx, models.Top10Request{TMDBID: 42, Rank: 1})
	assert.ErrorIs(t, err, apperr.ErrDuplicateContent)
	_, err = top.Move(ctx, byTMDB, 1, true)
	require.NoError(t, err)

	trending := NewTrendingSet(stores.Movies)
	rec, err := trending.Set(ctx, byTMDB, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, custom.ID, rec.ID)
	rec, err = trending.Clear(ctx, byTMDB)
	require.NoError(t, err)
	assert.False(t, rec.Trending.IsTrending)

	calls := f.calls
	upcoming := NewUpcomingSet(stores.Movies, f)
	rec, err = upcoming.Set(ctx, byTMDB, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, custom.ID, rec.ID, "no placeholder next to the upgraded record")
	assert.Equal(t, calls, f.calls)

	carousel := NewCarouselService(stores.Carousel, stores.Movies)
	n := 42
	slide, err := carousel.Add(ctx, models.CarouselCreateRequest{ImagePath: "/b.jpg", TMDBID: &n})
	require.NoError(t, err)
	require.NotNil(t, slide.ContentID)
	assert.Equal(t, custom.ID, *slide.ContentID)

	removed, err := top.Remove(ctx, byTMDB)
	require.NoError(t, err)
	assert.Equal(t, custom.ID, removed.ContentID)
}

func TestPlaceholdersStayOutOfTop10AndTrending(t *testing.T) {
	ctx := context.Background()
	movies, stores, f := newCatalog(models.KindMovie)
	addMovie(t, movies, 1, "")

	upcoming := NewUpcomingSet(stores.Movies, f)
	_, err := upcoming.Set(ctx, models.ExternalID(77), nil, nil)
	require.NoError(t, err)
	_, err = movies.Get(ctx, models.ExternalID(77))
	require.ErrorIs(t, err, apperr.ErrNotFound)

	top := NewTop10Service(stores.Top10, stores.Movies)
	_, err = top.Add(ctx, models.Top10Request{TMDBID: 77, Rank: 1})
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)

	trending := NewTrendingSet(stores.Movies)
	_, err = trending.Set(ctx, models.ExternalID(77), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)

	_, err = movies.IncrementClicks(ctx, models.ExternalID(77))
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	carousel := NewCarouselService(stores.Carousel, stores.Movies)
	n := 77
	_, err = carousel.Add(ctx, models.CarouselCreateRequest{ImagePath: "/p.jpg", TMDBID: &n})
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)

	// a placeholder carrying both flags is still listed by upcoming only
	_, err = stores.Movies.SetFlag(ctx, models.ExternalID(77), models.FlagTrending,
		models.FlagState{Active: true}, movies.now())
	require.NoError(t, err)
	_, err = trending.Set(ctx, models.ExternalID(1), nil, nil)
	require.NoError(t, err)

	hot, err := trending.ListActive(ctx, 0)
	require.NoError(t, err)
	require.Len(t, hot, 1)
	assert.Equal(t, models.ExternalID(1), hot[0].ID)

	soon, err := upcoming.ListActive(ctx, 0)
	require.NoError(t, err)
	require.Len(t, soon, 1)
	assert.Equal(t, models.ExternalID(77), soon[0].ID)
}

func TestDetachValidatesCustomData(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := newCatalog(models.KindMovie)
	_, err := svc.Add(ctx, models.ContentCreateRequest{CustomData: &models.Descriptor{Title: "Taken"}, FileLink: "x"})
	require.NoError(t, err)
	custom, err := svc.Add(ctx, models.ContentCreateRequest{CustomData: &models.Descriptor{Title: "Mine"}, FileLink: "x"})
	require.NoError(t, err)
	_, err = svc.Update(ctx, custom.ID, models.ContentUpdateRequest{TMDBID: models.Some(11)})
	require.NoError(t, err)

	detach := func(title string) (*models.ContentRecord, error) {
		return svc.Update(ctx, custom.ID, models.ContentUpdateRequest{
			TMDBID:     models.Null[int](),
			CustomData: models.Some(models.Descriptor{Title: title}),
		})
	}

	_, err = detach("   ")
	assert.ErrorIs(t, err, apperr.ErrValidation)
	_, err = detach("taken")
	assert.ErrorIs(t, err, apperr.ErrDuplicateContent)

	rec, err := detach("  Mine Again  ")
	require.NoError(t, err)
	assert.Equal(t, "Mine Again", rec.Title)
	assert.Equal(t, models.TitleKey("Mine Again"), rec.TitleKey)
	assert.True(t, rec.IsCustom)
}

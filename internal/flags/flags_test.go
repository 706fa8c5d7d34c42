package flags_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/flags"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository/memstore"
)

func intp(v int) *int { return &v }

func placeholderFor(calls *int) flags.PlaceholderBuilder {
	return func(ctx context.Context, id models.ContentID) (*models.ContentRecord, error) {
		*calls++
		return &models.ContentRecord{
			ID:          id,
			Kind:        models.KindMovie,
			Descriptor:  models.Descriptor{Title: "Placeholder " + id.String()},
			Placeholder: true,
		}, nil
	}
}

func seed(t *testing.T, store *memstore.ContentStore, ids ...int) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, store.Insert(context.Background(), &models.ContentRecord{ID: models.ExternalID(id), Kind: models.KindMovie}))
	}
}

func TestTrendingAndUpcomingAsymmetry(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	calls := 0
	trending := flags.NewTrending(store)
	upcoming := flags.NewUpcoming(store, placeholderFor(&calls))

	_, err := trending.Set(ctx, models.ExternalID(999), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)
	rec, err := store.FindByID(ctx, models.ExternalID(999))
	require.NoError(t, err)
	assert.Nil(t, rec, "trending must not create records")

	got, err := upcoming.Set(ctx, models.ExternalID(999), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, got.Upcoming.IsUpcoming)
	require.NotNil(t, got.Upcoming.UpcomingOrder)
	assert.Equal(t, flags.DefaultOrder, *got.Upcoming.UpcomingOrder)
	assert.True(t, got.Placeholder)
	assert.Zero(t, got.Clicks)
	assert.False(t, got.Pinned)
	assert.False(t, got.Trending.IsTrending)
}

func TestTrendingKeepsExistingOrder(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	seed(t, store, 1)
	trending := flags.NewTrending(store)

	got, err := trending.Set(ctx, models.ExternalID(1), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, flags.DefaultOrder, *got.Trending.TrendingOrder)

	_, err = trending.Set(ctx, models.ExternalID(1), intp(3), nil)
	require.NoError(t, err)
	got, err = trending.Set(ctx, models.ExternalID(1), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, *got.Trending.TrendingOrder)
}

func TestUpcomingStoresDateAndExistingRecord(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	seed(t, store, 5)
	calls := 0
	upcoming := flags.NewUpcoming(store, placeholderFor(&calls))

	release := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)
	got, err := upcoming.Set(ctx, models.ExternalID(5), intp(2), &release)
	require.NoError(t, err)
	assert.Zero(t, calls, "existing record needs no placeholder")
	assert.False(t, got.Placeholder)
	assert.Equal(t, 2, *got.Upcoming.UpcomingOrder)
	require.NotNil(t, got.Upcoming.OTTRelease)
	assert.True(t, release.Equal(*got.Upcoming.OTTRelease))
}

func TestClearReturnsPostClearState(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	seed(t, store, 1)
	trending := flags.NewTrending(store)

	_, err := trending.Set(ctx, models.ExternalID(1), intp(4), nil)
	require.NoError(t, err)

	got, err := trending.Clear(ctx, models.ExternalID(1))
	require.NoError(t, err)
	assert.False(t, got.Trending.IsTrending)
	assert.Nil(t, got.Trending.TrendingOrder)

	_, err = trending.Clear(ctx, models.ExternalID(42))
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestListActiveOrdering(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	seed(t, store, 1, 2, 3, 4)
	trending := flags.NewTrending(store)

	_, err := trending.Set(ctx, models.ExternalID(1), intp(2), nil)
	require.NoError(t, err)
	_, err = trending.Set(ctx, models.ExternalID(2), intp(1), nil)
	require.NoError(t, err)
	// same order as 1 but more clicks
	_, err = store.IncrementClicks(ctx, models.ExternalID(3))
	require.NoError(t, err)
	_, err = trending.Set(ctx, models.ExternalID(3), intp(2), nil)
	require.NoError(t, err)

	list, err := trending.ListActive(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, models.ExternalID(2), list[0].ID)
	assert.Equal(t, models.ExternalID(3), list[1].ID)
	assert.Equal(t, models.ExternalID(1), list[2].ID)

	list, err = trending.ListActive(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSetRejectsZeroID(t *testing.T) {
	trending := flags.NewTrending(memstore.NewContentStore(models.KindMovie))
	_, err := trending.Set(context.Background(), models.ContentID{}, nil, nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTrendingIgnoresPlaceholders(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	calls := 0
	trending := flags.NewTrending(store)
	upcoming := flags.NewUpcoming(store, placeholderFor(&calls))

	_, err := upcoming.Set(ctx, models.ExternalID(8), nil, nil)
	require.NoError(t, err)

	_, err = trending.Set(ctx, models.ExternalID(8), nil, nil)
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)

	list, err := trending.ListActive(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, list)
	list, err = upcoming.ListActive(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

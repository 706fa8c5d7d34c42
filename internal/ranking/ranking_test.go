package ranking_test

import (
	"context"
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ranking"
	"github.com/madhangowdaa/mak-backend/internal/repository/memstore"
)

func newList(t *testing.T, movies ...int) (*ranking.List, *memstore.RankStore, *memstore.ContentStore) {
	t.Helper()
	catalog := memstore.NewContentStore(models.KindMovie)
	for _, id := range movies {
		require.NoError(t, catalog.Insert(context.Background(), &models.ContentRecord{ID: models.ExternalID(id)}))
	}
	store := memstore.NewRankStore()
	return ranking.NewList(store, catalog), store, catalog
}

func ranksOf(t *testing.T, l *ranking.List) map[int]int {
	t.Helper()
	entries, err := l.Entries(context.Background())
	require.NoError(t, err)
	out := map[int]int{}
	for _, e := range entries {
		n, _ := e.ContentID.External()
		out[n] = e.Rank
	}
	return out
}

func requireContiguous(t *testing.T, l *ranking.List) {
	t.Helper()
	entries, err := l.Entries(context.Background())
	require.NoError(t, err)
	ranks := make([]int, 0, len(entries))
	for _, e := range entries {
		ranks = append(ranks, e.Rank)
	}
	sort.Ints(ranks)
	for i, r := range ranks {
		require.Equal(t, i+1, r, "ranks must be exactly 1..N, got %v", ranks)
	}
}

func TestInsertShiftsDown(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1, 2, 3)

	_, err := l.Insert(ctx, models.ExternalID(1), 1)
	require.NoError(t, err)
	_, err = l.Insert(ctx, models.ExternalID(2), 1)
	require.NoError(t, err)
	_, err = l.Insert(ctx, models.ExternalID(3), 2)
	require.NoError(t, err)

	assert.Equal(t, map[int]int{2: 1, 3: 2, 1: 3}, ranksOf(t, l))
}

func TestInsertClampsPastEnd(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1, 2)

	e, err := l.Insert(ctx, models.ExternalID(1), 9)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Rank)
	e, err = l.Insert(ctx, models.ExternalID(2), 9)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Rank)
}

func TestInsertRejectsMissingContentBeforeShifting(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1)
	_, err := l.Insert(ctx, models.ExternalID(1), 1)
	require.NoError(t, err)

	_, err = l.Insert(ctx, models.ExternalID(999), 1)
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)
	assert.Equal(t, map[int]int{1: 1}, ranksOf(t, l), "failed insert must not shift")
}

func TestInsertRejectsDuplicateAndBadRank(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1)
	_, err := l.Insert(ctx, models.ExternalID(1), 1)
	require.NoError(t, err)

	_, err = l.Insert(ctx, models.ExternalID(1), 1)
	assert.ErrorIs(t, err, apperr.ErrDuplicateContent)

	_, err = l.Insert(ctx, models.ExternalID(1), 0)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestMove(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1, 2, 3, 4)
	for i := 1; i <= 4; i++ {
		_, err := l.Insert(ctx, models.ExternalID(i), i)
		require.NoError(t, err)
	}

	_, err := l.Move(ctx, models.ExternalID(4), 1)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{4: 1, 1: 2, 2: 3, 3: 4}, ranksOf(t, l))

	_, err = l.Move(ctx, models.ExternalID(4), 3)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 1, 2: 2, 4: 3, 3: 4}, ranksOf(t, l))

	_, err = l.Move(ctx, models.ExternalID(1), 50)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{2: 1, 4: 2, 3: 3, 1: 4}, ranksOf(t, l))
}

func TestMoveToSameRankIsNoop(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1, 2, 3)
	for i := 1; i <= 3; i++ {
		_, err := l.Insert(ctx, models.ExternalID(i), i)
		require.NoError(t, err)
	}
	before := ranksOf(t, l)

	e, err := l.Move(ctx, models.ExternalID(2), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Rank)
	assert.Equal(t, before, ranksOf(t, l))
}

func TestMoveAndRemoveUnknown(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1)

	_, err := l.Move(ctx, models.ExternalID(1), 1)
	assert.ErrorIs(t, err, apperr.ErrNotInList)
	_, err = l.Remove(ctx, models.ExternalID(1))
	assert.ErrorIs(t, err, apperr.ErrNotInList)
}

func TestRemoveCompacts(t *testing.T) {
	ctx := context.Background()
	l, _, _ := newList(t, 1, 2, 3)
	for i := 1; i <= 3; i++ {
		_, err := l.Insert(ctx, models.ExternalID(i), i)
		require.NoError(t, err)
	}

	removed, err := l.Remove(ctx, models.ExternalID(2))
	require.NoError(t, err)
	assert.Equal(t, 2, removed.Rank)
	assert.Equal(t, map[int]int{1: 1, 3: 2}, ranksOf(t, l))
}

func TestRandomOperationsKeepRanksContiguous(t *testing.T) {
	ctx := context.Background()
	ids := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	l, _, _ := newList(t, ids...)
	rng := rand.New(rand.NewPCG(7, 11))

	ranked := map[int]bool{}
	for step := 0; step < 500; step++ {
		id := ids[rng.IntN(len(ids))]
		rank := rng.IntN(len(ids)+2) + 1
		switch {
		case !ranked[id]:
			_, err := l.Insert(ctx, models.ExternalID(id), rank)
			require.NoError(t, err)
			ranked[id] = true
		case rng.IntN(3) == 0:
			_, err := l.Remove(ctx, models.ExternalID(id))
			require.NoError(t, err)
			delete(ranked, id)
		default:
			_, err := l.Move(ctx, models.ExternalID(id), rank)
			require.NoError(t, err)
		}
		requireContiguous(t, l)
	}
}

func TestRepairRemovesOrphansAndRenumbers(t *testing.T) {
	ctx := context.Background()
	l, store, catalog := newList(t, 1, 2, 3)
	for i := 1; i <= 3; i++ {
		_, err := l.Insert(ctx, models.ExternalID(i), i)
		require.NoError(t, err)
	}

	// simulate a crash after a shift: a gap at rank 1, a duplicate at 3
	require.NoError(t, store.SetRank(ctx, models.ExternalID(1), 3))
	// and a movie deleted behind the list's back
	_, err := catalog.Delete(ctx, models.ExternalID(2))
	require.NoError(t, err)

	report, err := l.Repair(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.ContentID{models.ExternalID(2)}, report.Orphans)
	requireContiguous(t, l)
	assert.Len(t, ranksOf(t, l), 2)

	again, err := l.Repair(ctx)
	require.NoError(t, err)
	assert.Empty(t, again.Orphans)
	assert.Zero(t, again.Renumbered)
}

func TestInsertRejectsPlaceholder(t *testing.T) {
	ctx := context.Background()
	l, _, catalog := newList(t)
	require.NoError(t, catalog.Insert(ctx, &models.ContentRecord{ID: models.ExternalID(9), Placeholder: true}))

	_, err := l.Insert(ctx, models.ExternalID(9), 1)
	assert.ErrorIs(t, err, apperr.ErrContentNotFound)
	requireContiguous(t, l)
}

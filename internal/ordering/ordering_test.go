package ordering_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/repository/memstore"
)

func insertAt(t *testing.T, store *memstore.ContentStore, id int, pos ordering.Position) int {
	t.Helper()
	ctx := context.Background()
	order, err := ordering.NextOrder(ctx, store, pos)
	require.NoError(t, err)
	require.NoError(t, store.Insert(ctx, &models.ContentRecord{ID: models.ExternalID(id), Order: order}))
	return order
}

func TestNextOrderPlacement(t *testing.T) {
	store := memstore.NewContentStore(models.KindMovie)

	assert.Equal(t, 0, insertAt(t, store, 1, ordering.PositionLast), "empty collection starts at 0")
	assert.Equal(t, 1, insertAt(t, store, 2, ordering.PositionLast))
	assert.Equal(t, -1, insertAt(t, store, 3, ordering.PositionFirst))
	assert.Equal(t, -2, insertAt(t, store, 4, ordering.PositionFirst))
	assert.Equal(t, 2, insertAt(t, store, 5, ordering.PositionKeep), "unset position appends")
}

func TestNextOrderFirstOnEmpty(t *testing.T) {
	store := memstore.NewContentStore(models.KindHDTV)
	assert.Equal(t, 0, insertAt(t, store, 1, ordering.PositionFirst))
}

func TestReorder(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewContentStore(models.KindMovie)
	insertAt(t, store, 1, ordering.PositionLast) // 0
	insertAt(t, store, 2, ordering.PositionLast) // 1
	insertAt(t, store, 3, ordering.PositionLast) // 2

	got, err := ordering.Reorder(ctx, store, 1, ordering.PositionKeep)
	require.NoError(t, err)
	assert.Equal(t, 1, got)

	got, err = ordering.Reorder(ctx, store, 1, ordering.PositionFirst)
	require.NoError(t, err)
	assert.Equal(t, -1, got)

	got, err = ordering.Reorder(ctx, store, 1, ordering.PositionLast)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestParsePosition(t *testing.T) {
	for in, want := range map[string]ordering.Position{
		"":      ordering.PositionKeep,
		"f":     ordering.PositionFirst,
		"FIRST": ordering.PositionFirst,
		"l":     ordering.PositionLast,
		"last":  ordering.PositionLast,
	} {
		got, err := ordering.ParsePosition(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ordering.ParsePosition("middle")
	assert.Error(t, err)
}

func TestSortModeFields(t *testing.T) {
	assert.Equal(t, ordering.SortLatest, ordering.ParseSortMode("bogus"))
	assert.Equal(t, []ordering.SortField{{Field: "order"}, {Field: "createdAt", Desc: true}}, ordering.SortLatest.Fields())
	assert.Equal(t, []ordering.SortField{{Field: "order", Desc: true}, {Field: "createdAt"}}, ordering.SortOldest.Fields())
	assert.Equal(t, []ordering.SortField{{Field: "pinned", Desc: true}, {Field: "order"}}, ordering.SortPinned.Fields())
}

func TestPaging(t *testing.T) {
	p := ordering.NewPaging(3, 20)
	assert.Equal(t, int64(40), p.Skip())
	assert.Equal(t, 3, p.TotalPages(45))
	assert.Equal(t, 0, p.TotalPages(0))
	assert.Equal(t, 1, ordering.NewPaging(1, 20).TotalPages(20))

	d := ordering.NewPaging(0, 0)
	assert.Equal(t, 1, d.Number)
	assert.Equal(t, ordering.DefaultPageSize, d.Size)
	assert.Equal(t, ordering.MaxPageSize, ordering.NewPaging(1, 1000).Size)
}

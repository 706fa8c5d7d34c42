package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/models"
)

func TestBackupDump(t *testing.T) {
	ctx := context.Background()
	movies, stores, fetcher := newCatalog(models.KindMovie)
	addMovie(t, movies, 1, "")
	addMovie(t, movies, 2, "")
	_, err := NewUpcomingSet(stores.Movies, fetcher).Set(ctx, models.ExternalID(3), nil, nil)
	require.NoError(t, err)
	_, err = NewTop10Service(stores.Top10, stores.Movies).Add(ctx, models.Top10Request{TMDBID: 1, Rank: 1})
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	svc := NewBackupService(stores, fs, "/var/backup")
	svc.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	report, err := svc.Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"movies.json": 3, "top10_movies.json": 1}, report.Files)

	raw, err := afero.ReadFile(fs, "/var/backup/movies.json")
	require.NoError(t, err)
	var dumped []models.ContentRecord
	require.NoError(t, json.Unmarshal(raw, &dumped))
	require.Len(t, dumped, 3)
	placeholders := 0
	for _, rec := range dumped {
		if rec.Placeholder {
			placeholders++
		}
	}
	assert.Equal(t, 1, placeholders)

	exists, err := afero.Exists(fs, "/var/backup/series.json")
	require.NoError(t, err)
	assert.False(t, exists)
	exists, err = afero.Exists(fs, "/var/backup/movies.json.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBackupKeepsInactiveSlides(t *testing.T) {
	ctx := context.Background()
	_, stores, _ := newCatalog(models.KindMovie)
	require.NoError(t, stores.Carousel.Insert(ctx, &models.CarouselSlide{Title: "on", ImagePath: "/a", IsActive: true, Order: 1}))
	require.NoError(t, stores.Carousel.Insert(ctx, &models.CarouselSlide{Title: "off", ImagePath: "/b", Order: 2}))

	fs := afero.NewMemMapFs()
	report, err := NewBackupService(stores, fs, "/b").Dump(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Files["carousel.json"])

	raw, err := afero.ReadFile(fs, "/b/carousel.json")
	require.NoError(t, err)
	var slides []models.CarouselSlide
	require.NoError(t, json.Unmarshal(raw, &slides))
	require.Len(t, slides, 2)
	assert.False(t, slides[1].IsActive)
}

func TestBackupReadOnlyFs(t *testing.T) {
	_, stores, _ := newCatalog(models.KindMovie)
	svc := NewBackupService(stores, afero.NewReadOnlyFs(afero.NewMemMapFs()), "/b")
	_, err := svc.Dump(context.Background())
	assert.Error(t, err)
}

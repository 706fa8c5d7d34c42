package jobs

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/repository/memstore"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type countingJob struct {
	name  string
	runs  atomic.Int32
	fails bool
}

func (j *countingJob) Name() string { return j.name }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	if j.fails {
		return errors.New("boom")
	}
	return nil
}

func TestSchedulerRegistration(t *testing.T) {
	s := NewScheduler()
	job := &countingJob{name: "a"}

	require.NoError(t, s.AddJob("@every 1h", job))
	assert.Error(t, s.AddJob("@every 1h", job), "duplicate name")
	assert.Error(t, s.AddJob("every tuesday", &countingJob{name: "b"}))
	assert.ElementsMatch(t, []string{"a"}, s.Names())

	require.NoError(t, s.RunJobNow("a"))
	assert.Equal(t, int32(1), job.runs.Load())
	assert.Error(t, s.RunJobNow("missing"))

	failing := &countingJob{name: "f", fails: true}
	require.NoError(t, s.AddJob("0 3 * * *", failing))
	assert.Error(t, s.RunJobNow("f"))
}

func TestSchedulerRunsOnSchedule(t *testing.T) {
	s := NewScheduler()
	job := &countingJob{name: "tick"}
	require.NoError(t, s.AddJob("@every 1s", job))

	s.Start()
	s.Start()
	assert.Eventually(t, func() bool { return job.runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)
	s.Stop()
	s.Stop()
}

type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, id int, kind models.Kind) (*models.Descriptor, error) {
	return &models.Descriptor{Title: fmt.Sprintf("Fresh %d", id)}, nil
}

func TestCatalogJobs(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	movies := service.NewCatalogService(models.KindMovie, stores.Movies, stubFetcher{})
	top := service.NewTop10Service(stores.Top10, stores.Movies)

	for _, id := range []int{1, 2} {
		_, err := movies.Add(ctx, models.ContentCreateRequest{TMDBID: id, FileLink: "x"})
		require.NoError(t, err)
		_, err = top.Add(ctx, models.Top10Request{TMDBID: id, Rank: id})
		require.NoError(t, err)
	}
	_, err := movies.Delete(ctx, models.ExternalID(1))
	require.NoError(t, err)

	require.NoError(t, RepairTop10{Top10: top}.Run(ctx))
	view, err := top.List(ctx)
	require.NoError(t, err)
	require.Len(t, view.Results, 1)
	assert.Equal(t, 1, view.Results[0].Rank)
	assert.Empty(t, view.Orphans)

	// nothing is older than a week yet
	require.NoError(t, RefreshMetadata{Metadata: service.NewMetadataService(stubFetcher{}, stores)}.Run(ctx))
	rec, err := stores.Movies.FindByID(ctx, models.ExternalID(2))
	require.NoError(t, err)
	assert.Equal(t, "Fresh 2", rec.Title)
}

func TestBackupJob(t *testing.T) {
	ctx := context.Background()
	stores := memstore.NewStores()
	movies := service.NewCatalogService(models.KindMovie, stores.Movies, stubFetcher{})
	_, err := movies.Add(ctx, models.ContentCreateRequest{TMDBID: 9, FileLink: "x"})
	require.NoError(t, err)

	fs := afero.NewMemMapFs()
	job := Backup{Backup: service.NewBackupService(stores, fs, "out")}
	assert.Equal(t, BackupName, job.Name())
	require.NoError(t, job.Run(ctx))

	ok, err := afero.Exists(fs, "out/movies.json")
	require.NoError(t, err)
	assert.True(t, ok)
}

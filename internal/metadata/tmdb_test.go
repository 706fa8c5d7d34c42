package metadata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

func newTestClient(t *testing.T, h http.HandlerFunc) (*TMDBClient, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		h(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewTMDBClient("key", srv.URL, time.Second, WithRate(0)), &calls
}

func TestFetchMovie(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/603", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"title":"The Matrix","overview":"o","poster_path":"/p.jpg",
			"release_date":"1999-03-30","original_language":"en",
			"genres":[{"id":28,"name":"Action"},{"id":878,"name":"Science Fiction"}]}`))
	})

	d, err := c.Fetch(context.Background(), 603, models.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, "The Matrix", d.Title)
	assert.Equal(t, "1999-03-30", d.ReleaseDate)
	assert.Equal(t, []string{"Action", "Science Fiction"}, d.Genres)
	assert.Equal(t, "en", d.Language)
}

func TestFetchTVUsesNameAndFirstAirDate(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tv/1399", r.URL.Path)
		_, _ = w.Write([]byte(`{"name":"Game of Thrones","first_air_date":"2011-04-17","genres":[]}`))
	})

	for _, kind := range []models.Kind{models.KindSeries, models.KindHDTV} {
		d, err := c.Fetch(context.Background(), 1399, kind)
		require.NoError(t, err)
		assert.Equal(t, "Game of Thrones", d.Title)
		assert.Equal(t, "2011-04-17", d.ReleaseDate)
	}
}

func TestFetchNotFoundIsNotRetried(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Fetch(context.Background(), 1, models.KindMovie)
	assert.ErrorIs(t, err, apperr.ErrMetadataFetch)
	assert.Equal(t, http.StatusBadGateway, apperr.HTTPStatus(err))
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestFetchRetriesServerErrors(t *testing.T) {
	var n int32
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&n, 1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"title":"ok"}`))
	})

	d, err := c.Fetch(context.Background(), 2, models.KindMovie)
	require.NoError(t, err)
	assert.Equal(t, "ok", d.Title)
	assert.Equal(t, int32(3), atomic.LoadInt32(calls))
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()
	c := NewTMDBClient("key", srv.URL, 20*time.Millisecond, WithRate(0), WithRetries(1))

	_, err := c.Fetch(context.Background(), 3, models.KindMovie)
	assert.ErrorIs(t, err, apperr.ErrMetadataFetch)
}

func TestFetchRejectsBadID(t *testing.T) {
	c := NewTMDBClient("key", "http://unused", time.Second)
	_, err := c.Fetch(context.Background(), 0, models.KindMovie)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

type countingFetcher struct{ calls int }

func (f *countingFetcher) Fetch(ctx context.Context, id int, kind models.Kind) (*models.Descriptor, error) {
	f.calls++
	return &models.Descriptor{Title: "x"}, nil
}

func TestCachedFetcherWithoutRedisPassesThrough(t *testing.T) {
	next := &countingFetcher{}
	f := NewCachedFetcher(next, nil, time.Minute)

	for i := 0; i < 2; i++ {
		d, err := f.Fetch(context.Background(), 5, models.KindMovie)
		require.NoError(t, err)
		assert.Equal(t, "x", d.Title)
	}
	assert.Equal(t, 2, next.calls)
	assert.NoError(t, f.Invalidate(context.Background(), 5, models.KindMovie))
}

func TestFetchMalformedBodyIsNotRetried(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title":`))
	})

	_, err := c.Fetch(context.Background(), 4, models.KindMovie)
	assert.ErrorIs(t, err, apperr.ErrMetadataFetch)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))
}

func TestPopular(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movie/popular", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		page := r.URL.Query().Get("page")
		_, _ = w.Write([]byte(`{"page":` + page + `,"total_pages":500,"total_results":10000,
			"results":[{"id":550,"title":"Fight Club","poster_path":"/f.jpg","original_language":"en"}]}`))
	})

	p, err := c.Popular(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 500, p.TotalPages)
	require.Len(t, p.Results, 1)
	assert.Equal(t, 550, p.Results[0].TMDBID)
	assert.Equal(t, "Fight Club", p.Results[0].Title)
	assert.Equal(t, []string{}, p.Results[0].Genres)

	p, err = c.Popular(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Page)
	p, err = c.Popular(context.Background(), 9000)
	require.NoError(t, err)
	assert.Equal(t, MaxPopularPage, p.Page)
}

func TestCachedPopular(t *testing.T) {
	c, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"page":1,"total_pages":1,"results":[]}`))
	})
	f := NewCachedFetcher(c, nil, time.Minute)
	p, err := f.Popular(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, p.Results)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	_, err = NewCachedFetcher(&countingFetcher{}, nil, time.Minute).Popular(context.Background(), 1)
	assert.ErrorIs(t, err, apperr.ErrMetadataFetch)
}

// Package metadata resolves external (TMDB) ids into descriptors.
package metadata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"golang.org/x/time/rate"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

// Fetcher describes an external id. Failures wrap apperr.ErrMetadataFetch.
type Fetcher interface {
	Fetch(ctx context.Context, tmdbID int, kind models.Kind) (*models.Descriptor, error)
}

// PopularLister pages through TMDB's popular movies.
type PopularLister interface {
	Popular(ctx context.Context, page int) (*PopularPage, error)
}

// MaxPopularPage is the last page TMDB serves for list endpoints.
const MaxPopularPage = 500

type PopularTitle struct {
	TMDBID int `json:"id"`
	models.Descriptor
}

type PopularPage struct {
	Page         int            `json:"page"`
	TotalPages   int            `json:"total_pages"`
	TotalResults int64          `json:"total_results"`
	Results      []PopularTitle `json:"results"`
}

type TMDBClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
	retries uint
}

type TMDBOption func(*TMDBClient)

// WithHTTPClient replaces the default client (10s timeout).
func WithHTTPClient(c *http.Client) TMDBOption {
	return func(t *TMDBClient) { t.client = c }
}

// WithRate caps outgoing requests per second. Zero disables the limiter.
func WithRate(perSec float64) TMDBOption {
	return func(t *TMDBClient) {
		if perSec <= 0 {
			t.limiter = nil
			return
		}
		t.limiter = rate.NewLimiter(rate.Limit(perSec), max(1, int(perSec)))
	}
}

func WithRetries(n uint) TMDBOption {
	return func(t *TMDBClient) { t.retries = max(1, n) }
}

func NewTMDBClient(apiKey, baseURL string, timeout time.Duration, opts ...TMDBOption) *TMDBClient {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	c := &TMDBClient{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		limiter: rate.NewLimiter(rate.Limit(20), 20),
		retries: 3,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type tmdbDetails struct {
	Title            string `json:"title"`
	Name             string `json:"name"`
	Overview         string `json:"overview"`
	PosterPath       string `json:"poster_path"`
	ReleaseDate      string `json:"release_date"`
	FirstAirDate     string `json:"first_air_date"`
	OriginalLanguage string `json:"original_language"`
	Genres           []struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	} `json:"genres"`
}

func (d *tmdbDetails) descriptor() *models.Descriptor {
	out := &models.Descriptor{
		Title:       d.Title,
		Overview:    d.Overview,
		PosterPath:  d.PosterPath,
		ReleaseDate: d.ReleaseDate,
		Language:    d.OriginalLanguage,
		Genres:      make([]string, 0, len(d.Genres)),
	}
	// tv resources use name/first_air_date
	if out.Title == "" {
		out.Title = d.Name
	}
	if out.ReleaseDate == "" {
		out.ReleaseDate = d.FirstAirDate
	}
	for _, g := range d.Genres {
		out.Genres = append(out.Genres, g.Name)
	}
	return out
}

type statusError struct {
	code int
}

func (e *statusError) Error() string { return fmt.Sprintf("tmdb returned %d", e.code) }

type decodeError struct {
	err error
}

func (e *decodeError) Error() string { return "tmdb body: " + e.err.Error() }
func (e *decodeError) Unwrap() error { return e.err }

// retryable: network errors, 429 and 5xx. A 4xx answer or a body that does
// not decode will not change.
func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= 500
	}
	var de *decodeError
	if errors.As(err, &de) {
		return false
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Fetch reads /movie/{id} or /tv/{id} depending on kind.
func (c *TMDBClient) Fetch(ctx context.Context, tmdbID int, kind models.Kind) (*models.Descriptor, error) {
	id := strconv.Itoa(tmdbID)
	if tmdbID <= 0 {
		return nil, apperr.Validation("tmdb.fetch", "invalid tmdb id "+id)
	}
	endpoint := fmt.Sprintf("%s/%s/%d?%s", c.baseURL, kind.TMDBPath(), tmdbID,
		url.Values{"api_key": {c.apiKey}}.Encode())

	var details tmdbDetails
	if err := c.getWithRetry(ctx, endpoint, &details); err != nil {
		return nil, apperr.MetadataFetch("tmdb.fetch", id, err)
	}
	return details.descriptor(), nil
}

// Popular reads /movie/popular. Pages are clamped to 1..MaxPopularPage.
func (c *TMDBClient) Popular(ctx context.Context, page int) (*PopularPage, error) {
	page = min(max(page, 1), MaxPopularPage)
	endpoint := fmt.Sprintf("%s/movie/popular?%s", c.baseURL, url.Values{
		"api_key": {c.apiKey},
		"page":    {strconv.Itoa(page)},
	}.Encode())

	var out PopularPage
	if err := c.getWithRetry(ctx, endpoint, &out); err != nil {
		return nil, apperr.MetadataFetch("tmdb.popular", strconv.Itoa(page), err)
	}
	for i := range out.Results {
		if out.Results[i].Genres == nil {
			out.Results[i].Genres = []string{}
		}
	}
	if out.Results == nil {
		out.Results = []PopularTitle{}
	}
	return &out, nil
}

func (c *TMDBClient) getWithRetry(ctx context.Context, endpoint string, dest any) error {
	return retry.Do(
		func() error { return c.get(ctx, endpoint, dest) },
		retry.Context(ctx),
		retry.Attempts(c.retries),
		retry.Delay(200*time.Millisecond),
		retry.RetryIf(retryable),
		retry.LastErrorOnly(true),
	)
}

func (c *TMDBClient) get(ctx context.Context, endpoint string, dest any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &statusError{code: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &decodeError{err: err}
	}
	return nil
}

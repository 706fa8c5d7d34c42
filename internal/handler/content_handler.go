// internal/handler/content_handler.go
package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madhangowdaa/mak-backend/internal/live"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/seasons"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

// ContentHandler serves one of /api/movies, /api/series or /api/hdtv.
type ContentHandler struct {
	svc    *service.CatalogService
	browse *service.BrowseService
	feed   *live.Hub
}

func NewContentHandler(s *service.CatalogService, b *service.BrowseService, feed *live.Hub) *ContentHandler {
	return &ContentHandler{svc: s, browse: b, feed: feed}
}

// Routes mounts the collection; admin guards the writes.
func (h *ContentHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Get("/recent", h.Recent)
	r.Get("/top", h.Top)
	r.Get("/top/{language}", h.Top)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/click", h.Click)

	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.Create)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		if h.svc.Kind() == models.KindSeries {
			r.Put("/{id}/seasons", h.UpsertSeason)
			r.Delete("/{id}/seasons", h.DeleteSeason)
		}
	})
	return r
}

// @Summary List catalog entries (paginated)
// @Tags catalog
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param q query string false "title contains (case-insensitive)"
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 20, max 100)"
// @Param sort query string false "latest|oldest|pinned"
// @Success 200 {object} models.Page[models.ContentRecord]
// @Router /api/{kind} [get]
func (h *ContentHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.svc.List(r.Context(), service.ListQuery{
		Query:    q.Get("q"),
		Page:     queryInt(r, "page"),
		PageSize: queryInt(r, "limit"),
		Sort:     ordering.ParseSortMode(q.Get("sort")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary Most recently added entries
// @Tags catalog
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param limit query int false "default 10"
// @Success 200 {array} models.ContentRecord
// @Router /api/{kind}/recent [get]
func (h *ContentHandler) Recent(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.Recent(r.Context(), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// @Summary Most clicked entries in one original language
// @Tags catalog
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param language path string true "ISO 639-1 code or name, e.g. kn or kannada"
// @Param limit query int false "default 10"
// @Success 200 {array} models.ContentRecord
// @Failure 400 {object} errorResponse
// @Router /api/{kind}/top/{language} [get]
func (h *ContentHandler) Top(w http.ResponseWriter, r *http.Request) {
	lang := chi.URLParam(r, "language")
	if lang == "" {
		lang = r.URL.Query().Get("language")
	}
	recs, err := h.svc.TopByLanguage(r.Context(), lang, queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// @Summary Get one entry
// @Tags catalog
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param id path string true "tmdb id or custom id"
// @Success 200 {object} models.ContentRecord
// @Failure 404 {object} errorResponse
// @Router /api/{kind}/{id} [get]
func (h *ContentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// @Summary Count a click
// @Tags catalog
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param id path string true "tmdb id or custom id"
// @Success 200 {object} map[string]any
// @Router /api/{kind}/{id}/click [post]
func (h *ContentHandler) Click(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.IncrementClicks(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Changed(live.EventClick, rec, map[string]int64{"clicks": rec.Clicks}))
	writeJSON(w, http.StatusOK, map[string]any{"id": rec.ID, "clicks": rec.Clicks})
}

// ====== ADMIN ======

// @Summary Add an entry from TMDB or custom metadata
// @Tags catalog
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param body body models.ContentCreateRequest true "tmdbID or customData"
// @Success 201 {object} models.ContentRecord
// @Failure 409 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /api/{kind} [post]
func (h *ContentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ContentCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.browse.InvalidateStats(r.Context())
	writeJSON(w, http.StatusCreated, rec)
}

// @Summary Update an entry (partial)
// @Tags catalog
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param id path string true "tmdb id or custom id"
// @Param body body models.ContentUpdateRequest true "fields to change"
// @Success 200 {object} models.ContentRecord
// @Router /api/{kind}/{id} [put]
func (h *ContentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req models.ContentUpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// @Summary Delete an entry
// @Tags catalog
// @Security AdminSecret
// @Produce json
// @Param kind path string true "movies|series|hdtv"
// @Param id path string true "tmdb id or custom id"
// @Success 200 {object} models.ContentRecord
// @Router /api/{kind}/{id} [delete]
func (h *ContentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.browse.InvalidateStats(r.Context())
	writeJSON(w, http.StatusOK, rec)
}

// @Summary Set the file link of one season/language/quality
// @Tags series
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param id path string true "series id"
// @Param body body models.SeasonUpsertRequest true "leaf to upsert"
// @Success 200 {object} models.ContentRecord
// @Router /api/series/{id}/seasons [put]
func (h *ContentHandler) UpsertSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req models.SeasonUpsertRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.svc.UpsertVersion(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// @Summary Delete a season, or one quality of it
// @Tags series
// @Security AdminSecret
// @Produce json
// @Param id path string true "series id"
// @Param season query int true "season number"
// @Param language query string false "language"
// @Param quality query string false "quality"
// @Success 200 {object} models.ContentRecord
// @Failure 400 {object} errorResponse
// @Router /api/series/{id}/seasons [delete]
func (h *ContentHandler) DeleteSeason(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	number, err := requiredIndex(r, "season")
	if err != nil {
		writeError(w, r, err)
		return
	}
	q := r.URL.Query()
	rec, err := h.svc.DeleteSeasonNode(r.Context(), id, seasons.Selector{
		Number:   number,
		Language: q.Get("language"),
		Quality:  q.Get("quality"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

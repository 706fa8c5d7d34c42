package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madhangowdaa/mak-backend/internal/ordering"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

// BrowseHandler serves the read-only cross-collection views.
type BrowseHandler struct {
	svc *service.BrowseService
}

func NewBrowseHandler(s *service.BrowseService) *BrowseHandler {
	return &BrowseHandler{svc: s}
}

// @Summary Search all collections by title
// @Tags browse
// @Produce json
// @Param q query string true "title contains"
// @Param limit query int false "per collection (default 10)"
// @Success 200 {object} models.SearchResult
// @Router /api/search [get]
func (h *BrowseHandler) Search(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Search(r.Context(), r.URL.Query().Get("q"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Catalog totals for the footer
// @Tags browse
// @Produce json
// @Success 200 {object} models.FooterStats
// @Router /api/stats [get]
func (h *BrowseHandler) FooterStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.FooterStats(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// @Summary Movie genres with counts
// @Tags browse
// @Produce json
// @Success 200 {array} models.GenreCount
// @Router /api/genres [get]
func (h *BrowseHandler) Genres(w http.ResponseWriter, r *http.Request) {
	counts, err := h.svc.Genres(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

// @Summary Movies in a genre (paginated)
// @Tags browse
// @Produce json
// @Param genre path string true "genre name (case-insensitive)"
// @Param page query int false "page (default 1)"
// @Param limit query int false "page size (default 20)"
// @Param sort query string false "latest|oldest"
// @Success 200 {object} models.Page[models.ContentRecord]
// @Router /api/genres/{genre} [get]
func (h *BrowseHandler) MoviesByGenre(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.MoviesByGenre(r.Context(), chi.URLParam(r, "genre"),
		queryInt(r, "page"), queryInt(r, "limit"), ordering.ParseSortMode(r.URL.Query().Get("sort")))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

// @Summary A few movies of a genre
// @Tags browse
// @Produce json
// @Param genre path string true "genre name"
// @Param limit query int false "default 10"
// @Success 200 {array} models.ContentRecord
// @Router /api/genres/{genre}/preview [get]
func (h *BrowseHandler) GenrePreview(w http.ResponseWriter, r *http.Request) {
	recs, err := h.svc.GenrePreview(r.Context(), chi.URLParam(r, "genre"), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

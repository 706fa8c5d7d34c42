package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type TMDBHandler struct {
	svc *service.MetadataService
}

func NewTMDBHandler(s *service.MetadataService) *TMDBHandler {
	return &TMDBHandler{svc: s}
}

// @Summary Look up TMDB metadata with catalog state
// @Tags tmdb
// @Produce json
// @Param kind path string true "movie|series|hdtv|tv"
// @Param id path int true "tmdb id"
// @Success 200 {object} service.CatalogLookup
// @Failure 502 {object} errorResponse
// @Router /api/tmdb/{kind}/{id} [get]
func (h *TMDBHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(chi.URLParam(r, "kind"))
	if !ok {
		writeError(w, r, apperr.Validation("tmdb.lookup", "unknown kind"))
		return
	}
	id, err := cast.ToIntE(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, apperr.Validation("tmdb.lookup", "id must be a number"))
		return
	}
	res, err := h.svc.Lookup(r.Context(), kind, id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// @Summary Popular movies on TMDB, marked with catalog state
// @Tags tmdb
// @Produce json
// @Param page query int false "page (default 1, max 500)"
// @Success 200 {object} models.Page[service.CatalogLookup]
// @Failure 502 {object} errorResponse
// @Router /api/tmdb/popular [get]
// @Router /api/popularmovies [get]
func (h *TMDBHandler) Popular(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Popular(r.Context(), queryInt(r, "page"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

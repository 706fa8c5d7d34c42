package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madhangowdaa/mak-backend/internal/flags"
	"github.com/madhangowdaa/mak-backend/internal/live"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

// FlagHandler serves /api/trending and /api/upcoming.
type FlagHandler struct {
	set  *flags.Set
	feed *live.Hub
}

func NewFlagHandler(s *flags.Set, feed *live.Hub) *FlagHandler {
	return &FlagHandler{set: s, feed: feed}
}

func (h *FlagHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.Set)
		r.Delete("/{id}", h.Clear)
	})
	return r
}

// @Summary Flagged movies
// @Tags flags
// @Produce json
// @Param flag path string true "trending|upcoming"
// @Param limit query int false "default 10, max 100"
// @Success 200 {array} models.ContentRecord
// @Router /api/{flag} [get]
func (h *FlagHandler) List(w http.ResponseWriter, r *http.Request) {
	recs, err := h.set.ListActive(r.Context(), queryInt(r, "limit"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// @Summary Raise a flag on a movie
// @Description Upcoming creates a hidden placeholder from TMDB when the movie is not in the catalog.
// @Tags flags
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param flag path string true "trending|upcoming"
// @Param body body models.FlagRequest true "id, order, ott_release"
// @Success 200 {object} models.ContentRecord
// @Failure 404 {object} errorResponse
// @Router /api/{flag} [post]
func (h *FlagHandler) Set(w http.ResponseWriter, r *http.Request) {
	var req models.FlagRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.set.Set(r.Context(), req.TMDBID, req.Order, req.OTTRelease)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Changed(string(h.set.Kind()), rec, rec))
	writeJSON(w, http.StatusOK, rec)
}

// @Summary Clear a flag
// @Tags flags
// @Security AdminSecret
// @Produce json
// @Param flag path string true "trending|upcoming"
// @Param id path string true "tmdb id or custom id"
// @Success 200 {object} models.ContentRecord
// @Router /api/{flag}/{id} [delete]
func (h *FlagHandler) Clear(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := h.set.Clear(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Changed(string(h.set.Kind()), rec, rec))
	writeJSON(w, http.StatusOK, rec)
}

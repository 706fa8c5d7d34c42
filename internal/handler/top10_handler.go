package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madhangowdaa/mak-backend/internal/live"
	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type Top10Handler struct {
	svc  *service.Top10Service
	feed *live.Hub
}

func NewTop10Handler(s *service.Top10Service, feed *live.Hub) *Top10Handler {
	return &Top10Handler{svc: s, feed: feed}
}

func (h *Top10Handler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.Add)
		r.Post("/repair", h.Repair)
		r.Put("/{id}", h.Move)
		r.Delete("/{id}", h.Remove)
	})
	return r
}

// @Summary Top 10 movies
// @Description Entries whose movie was deleted are reported in orphans and left out of results.
// @Tags top10
// @Produce json
// @Success 200 {object} service.Top10View
// @Router /api/top10 [get]
func (h *Top10Handler) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// @Summary Insert a movie at a rank
// @Tags top10
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param body body models.Top10Request true "tmdbID and rank"
// @Success 201 {object} models.Top10Entry
// @Failure 409 {object} errorResponse
// @Router /api/top10 [post]
func (h *Top10Handler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.Top10Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := h.svc.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Event{Type: live.EventTop10, Data: entry})
	writeJSON(w, http.StatusCreated, entry)
}

// @Summary Move an entry to another rank
// @Tags top10
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param id path string true "tmdb id"
// @Param body body models.Top10Request true "rank, optional unpin"
// @Success 200 {object} models.Top10Entry
// @Router /api/top10/{id} [put]
func (h *Top10Handler) Move(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	var req models.Top10Request
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := h.svc.Move(r.Context(), id, req.Rank, req.Unpin)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Event{Type: live.EventTop10, Data: entry})
	writeJSON(w, http.StatusOK, entry)
}

// @Summary Remove an entry
// @Tags top10
// @Security AdminSecret
// @Produce json
// @Param id path string true "tmdb id"
// @Success 200 {object} models.Top10Entry
// @Router /api/top10/{id} [delete]
func (h *Top10Handler) Remove(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	entry, err := h.svc.Remove(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Event{Type: live.EventTop10, Data: entry})
	writeJSON(w, http.StatusOK, entry)
}

// @Summary Drop orphans and renumber ranks
// @Tags top10
// @Security AdminSecret
// @Produce json
// @Success 200 {object} ranking.RepairReport
// @Router /api/top10/repair [post]
func (h *Top10Handler) Repair(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Repair(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.feed.Publish(live.Event{Type: live.EventTop10, Data: report})
	writeJSON(w, http.StatusOK, report)
}

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type CarouselHandler struct {
	svc *service.CarouselService
}

func NewCarouselHandler(s *service.CarouselService) *CarouselHandler {
	return &CarouselHandler{svc: s}
}

func (h *CarouselHandler) Routes(admin func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Active)
	r.Group(func(r chi.Router) {
		r.Use(admin)
		r.Post("/", h.Add)
		r.Delete("/{slideID}", h.Delete)
	})
	return r
}

// @Summary Active carousel slides
// @Tags carousel
// @Produce json
// @Success 200 {array} models.CarouselSlide
// @Router /api/carousel [get]
func (h *CarouselHandler) Active(w http.ResponseWriter, r *http.Request) {
	slides, err := h.svc.Active(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slides)
}

// @Summary Add a slide
// @Tags carousel
// @Security AdminSecret
// @Accept json
// @Produce json
// @Param body body models.CarouselCreateRequest true "slide"
// @Success 201 {object} models.CarouselSlide
// @Router /api/carousel [post]
func (h *CarouselHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req models.CarouselCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	slide, err := h.svc.Add(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, slide)
}

// @Summary Delete a slide
// @Tags carousel
// @Security AdminSecret
// @Produce json
// @Param slideID path string true "slide object id"
// @Success 200 {object} models.CarouselSlide
// @Router /api/carousel/{slideID} [delete]
func (h *CarouselHandler) Delete(w http.ResponseWriter, r *http.Request) {
	slide, err := h.svc.Delete(r.Context(), chi.URLParam(r, "slideID"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, slide)
}

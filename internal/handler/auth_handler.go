package handler

import (
	"net/http"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/models"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(s *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: s}
}

type tokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// @Summary Exchange the admin secret for a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body models.TokenRequest true "admin secret"
// @Success 200 {object} tokenResponse
// @Failure 403 {object} errorResponse
// @Router /auth/token [post]
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	token, exp, err := h.svc.IssueToken(req.Secret)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token, ExpiresAt: exp})
}

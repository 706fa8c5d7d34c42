package handler

import (
	"net/http"

	"github.com/madhangowdaa/mak-backend/internal/service"
)

type BackupHandler struct {
	svc *service.BackupService
}

func NewBackupHandler(s *service.BackupService) *BackupHandler {
	return &BackupHandler{svc: s}
}

// @Summary Dump every collection to JSON files on the server
// @Tags admin
// @Security AdminSecret
// @Produce json
// @Success 200 {object} service.BackupReport
// @Router /api/backup [post]
func (h *BackupHandler) Dump(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Dump(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

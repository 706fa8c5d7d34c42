package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cast"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError traduce err a un status y un body {"error": ...}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := apperr.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[http] %s %s: %v", r.Method, r.URL.Path, err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, dest any) error {
	if err := json.NewDecoder(r.Body).Decode(dest); err != nil {
		return apperr.Validation("decode", "invalid body: "+err.Error())
	}
	return nil
}

func pathID(r *http.Request) (models.ContentID, error) {
	id, err := models.ParseContentID(chi.URLParam(r, "id"))
	if err != nil {
		return id, apperr.Validation("path", err.Error())
	}
	return id, nil
}

func queryInt(r *http.Request, key string) int {
	return cast.ToInt(r.URL.Query().Get(key))
}

// requiredIndex lee un query param entero, obligatorio y no negativo.
func requiredIndex(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, apperr.Validation("query", key+" is required")
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, apperr.Validation("query", key+" must be an integer >= 0")
	}
	return n, nil
}

package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/madhangowdaa/mak-backend/internal/apperr"
	"github.com/madhangowdaa/mak-backend/internal/service"
)

// maxSecretBody limita cuánto del body se lee buscando el campo "secret".
const maxSecretBody = 1 << 20

// AdminOnly deja pasar el request si trae el secreto admin: un JWT Bearer
// emitido por /auth/token, el header X-Admin-Secret o el campo "secret" del
// body JSON.
func AdminOnly(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if authHeader := r.Header.Get("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
				if err := auth.VerifyToken(strings.TrimPrefix(authHeader, "Bearer ")); err != nil {
					writeError(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if secret := r.Header.Get("X-Admin-Secret"); secret != "" {
				if err := auth.CheckSecret(secret); err != nil {
					writeError(w, r, err)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			secret, err := bodySecret(r)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if err := auth.CheckSecret(secret); err != nil {
				writeError(w, r, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bodySecret lee el campo "secret" y deja el body intacto para el handler.
func bodySecret(r *http.Request) (string, error) {
	if r.Body == nil || r.Body == http.NoBody {
		return "", apperr.Unauthorized("auth")
	}
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxSecretBody))
	_ = r.Body.Close()
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(raw))

	var payload struct {
		Secret string `json:"secret"`
	}
	if len(bytes.TrimSpace(raw)) == 0 || json.Unmarshal(raw, &payload) != nil {
		return "", apperr.Unauthorized("auth")
	}
	return payload.Secret, nil
}

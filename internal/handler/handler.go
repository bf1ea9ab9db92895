package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/devfolio/backend/internal/repository"
	"github.com/devfolio/backend/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Handler carries shared dependencies for cross-cutting endpoints (health,
// CORS).
type Handler struct {
	db          *pgxpool.Pool
	frontendURL string
}

// New creates the shared Handler.
func New(db *pgxpool.Pool, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

// CORS restricts cross-origin access to the configured frontend origin and
// answers preflight requests.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a `{"error": code}` body with the given status code.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}

// writeServiceError maps service and repository failures to HTTP responses.
// Unexpected failures become a generic 500 with no internals exposed.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	case errors.Is(err, repository.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, "already_exists")
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid_input")
	default:
		writeError(w, http.StatusInternalServerError, "internal_error")
	}
}
